package logs

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/mtcli/internal/ini"
	"github.com/wizzomafizzo/mtcli/internal/platform/wsl"
)

func fixedNow() time.Time {
	return time.Date(2024, 3, 9, 14, 0, 0, 0, time.UTC)
}

func TestTargets(t *testing.T) {
	t.Parallel()

	tailer := NewTailer(afero.NewMemMapFs(), wsl.NewConverter(wsl.Environment{}, nil), fixedNow)
	assert.Equal(t, []Target{
		{Label: "terminal", Path: "/data/MQL5/Logs/20240309.log"},
		{Label: "engine:Gen4Engine", Path: "/data/Gen4Engine/bin/logs/gpu_service.log"},
		{Label: "engine:EngineIV", Path: "/data/EngineIV/bin/logs/gpu_service.log"},
	}, tailer.Targets(context.Background(), "/data"))
	assert.Empty(t, tailer.Targets(context.Background(), ""))
}

func TestTailKeepsLastLines(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	var b strings.Builder
	for i := 1; i <= 30; i++ {
		_, _ = fmt.Fprintf(&b, "line %d\r\n", i)
	}
	require.NoError(t, afero.WriteFile(fs, "/a.log", []byte(b.String()), 0o644))

	lines, err := Tail(fs, "/a.log", 20)
	require.NoError(t, err)
	require.Len(t, lines, 20)
	assert.Equal(t, "line 11", lines[0])
	assert.Equal(t, "line 30", lines[19])
}

func TestTailDecodesUTF16(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	data, err := ini.Encode("first\r\nexpert loaded\r\n")
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fs, "/t.log", append([]byte{0xFF, 0xFE}, data...), 0o644))

	lines, err := Tail(fs, "/t.log", 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "expert loaded"}, lines)
}

func TestTailMissingFile(t *testing.T) {
	t.Parallel()

	lines, err := Tail(afero.NewMemMapFs(), "/nope.log", 5)
	require.NoError(t, err)
	assert.Nil(t, lines)
}

func TestPrint(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/MQL5/Logs/20240309.log", []byte("a\nb\nc\n"), 0o644))
	tailer := NewTailer(fs, wsl.NewConverter(wsl.Environment{}, nil), fixedNow)

	var out bytes.Buffer
	tailer.Print(context.Background(), &out, "chart raw", "/data", 2)

	assert.Equal(t, Separator+"\n"+
		"[logs] last 2 lines after 'chart raw'\n"+
		"--- terminal: /data/MQL5/Logs/20240309.log ---\n"+
		"b\nc\n"+
		Separator+"\n", out.String())
}

func TestPrintWithoutLogs(t *testing.T) {
	t.Parallel()

	tailer := NewTailer(afero.NewMemMapFs(), wsl.NewConverter(wsl.Environment{}, nil), fixedNow)

	var out bytes.Buffer
	tailer.Print(context.Background(), &out, "chart raw", "/data", DefaultLimit)
	assert.Contains(t, out.String(), "No logs available.")
}
