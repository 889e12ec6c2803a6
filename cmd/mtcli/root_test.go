package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRootCommand(t *testing.T) {
	t.Parallel()

	cmd := createNewRootCommand()

	assert.Equal(t, "mtcli", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.True(t, cmd.SilenceErrors)
	assert.True(t, cmd.SilenceUsage)
	for _, name := range []string{"terminal", "metaeditor", "data-dir", "log-level"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestNewRootCommandShowsHelp(t *testing.T) {
	t.Parallel()

	cmd := createNewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "Available Commands")
	assert.Contains(t, output, "mtcli tester run")
}

func TestNewRootCommandHasAllSubcommands(t *testing.T) {
	t.Parallel()

	paths := [][]string{
		{"detect"},
		{"config", "show"}, {"config", "set"}, {"config", "unset"}, {"config", "init"},
		{"bootstrap"},
		{"profile", "create"},
		{"open"},
		{"listener", "install"}, {"listener", "run"},
		{"listener", "send", "apply-template"}, {"listener", "send", "attach-indicator"},
		{"chart", "indicator", "attach"}, {"chart", "indicator", "detach"},
		{"chart", "expert", "attach"}, {"chart", "expert", "detach"},
		{"chart", "send"},
		{"script", "install-aplicar-template"},
		{"tester", "run"}, {"tester", "batch"},
		{"metaeditor", "compile"},
		{"gen4", "service"},
		{"history"},
	}

	root := createNewRootCommand()
	for _, path := range paths {
		found, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], found.Name(), path)
		if !found.HasSubCommands() {
			assert.NotNil(t, found.RunE, path)
		}
	}
}

func TestGen4ServiceRejectsUnknownAction(t *testing.T) {
	t.Parallel()

	cmd := createNewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"gen4", "service", "restart"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start, stop, ensure, status")
}

func TestTesterRunRequiresExpert(t *testing.T) {
	t.Parallel()

	cmd := createNewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"tester", "run", "--symbol", "EURUSD", "--period", "H1"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"ea"`)
}

func TestTesterRunRejectsUnknownModel(t *testing.T) {
	t.Parallel()

	cmd := createNewRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"tester", "run", "--ea", "X", "--symbol", "EURUSD", "--period", "H1", "--model", "fast"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}
