package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/mtcli/internal/ini"
)

func TestChoiceValue(t *testing.T) {
	t.Parallel()

	v := newChoiceValue("off", ini.Optimizations)
	assert.Equal(t, "off", v.String())
	assert.Equal(t, "string", v.Type())

	require.NoError(t, v.Set("FAST"))
	assert.Equal(t, "fast", v.String())

	err := v.Set("quick")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allsymbols")
	assert.Equal(t, "fast", v.String())
}

func TestOptionalFlagsOnlyWhenChanged(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().Bool("visual", false, "")
	cmd.Flags().Bool("shutdown", false, "")
	cmd.Flags().Int("port", 0, "")
	cmd.Flags().Int("exec-delay-ms", 0, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--visual", "--exec-delay-ms", "-1"}))

	visual := optionalBool(cmd, "visual")
	require.NotNil(t, visual)
	assert.True(t, *visual)
	assert.Nil(t, optionalBool(cmd, "shutdown"))

	delay := optionalInt(cmd, "exec-delay-ms")
	require.NotNil(t, delay)
	assert.Equal(t, -1, *delay)
	assert.Nil(t, optionalInt(cmd, "port"))
}

func TestTesterParamsFromFlags(t *testing.T) {
	t.Parallel()

	cmd := createTesterRunCommand()
	require.NoError(t, cmd.Flags().Parse([]string{
		"--ea", `Examples\MACD\MACD Sample`, "--symbol", "EURUSD", "--period", "m15",
		"--opt", "slow", "--criterion", "complex", "--replace-report", "--report", "/reports/{ts}.htm",
	}))

	params := testerParams(cmd)
	assert.Equal(t, `Examples\MACD\MACD Sample`, params.Expert)
	assert.Equal(t, "everytick", params.Model)
	assert.Equal(t, "slow", params.Optimization)
	assert.Equal(t, "complex", params.Criterion)
	assert.Empty(t, params.Forward)
	require.NotNil(t, params.ReplaceReport)
	assert.True(t, *params.ReplaceReport)
	assert.Nil(t, params.Visual)
	assert.Nil(t, params.Port)

	tester, err := params.Tester()
	require.NoError(t, err)
	assert.Equal(t, "M15", tester.Period)
}

func TestExitStatus(t *testing.T) {
	t.Parallel()

	require.NoError(t, exitStatus(0, nil))

	var exitErr *ExitError
	require.ErrorAs(t, exitStatus(3, nil), &exitErr)
	assert.Equal(t, 3, exitErr.Code)
	assert.Equal(t, "exit status 3", exitErr.Error())

	err := exitStatus(1, assert.AnError)
	assert.ErrorIs(t, err, assert.AnError)
}
