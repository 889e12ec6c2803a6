package wsl

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommander struct {
	outputs map[string]string
	calls   [][]string
}

func (f *fakeCommander) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	key := args[0] + " " + args[1]
	out, ok := f.outputs[key]
	if !ok {
		return nil, errors.New("wslpath: not found")
	}
	return []byte(out + "\n"), nil
}

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		release string
		distro  string
		want    bool
	}{
		{name: "wsl2 kernel", release: "5.15.153.1-microsoft-standard-WSL2", want: true},
		{name: "wsl1 kernel", release: "4.4.0-19041-Microsoft", want: true},
		{name: "distro variable", release: "6.1.0", distro: "Ubuntu-WSL", want: true},
		{name: "plain linux", release: "6.18.44-generic", distro: "Ubuntu", want: false},
		{name: "empty", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Detect(tt.release, tt.distro).WSL)
		})
	}
}

func TestDetectSystemReadsKernelRelease(t *testing.T) {
	t.Setenv("WSL_DISTRO_NAME", "")

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, osReleasePath, []byte("5.15.0-microsoft-standard\n"), 0o644))

	assert.True(t, DetectSystem(fs).WSL)
	assert.False(t, DetectSystem(afero.NewMemMapFs()).WSL)
}

func TestWindowsFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `C:\Users\me\start.ini`, WindowsFallback("/mnt/c/Users/me/start.ini"))
	assert.Equal(t, `D:\x`, WindowsFallback("/mnt/d/x"))
	assert.Equal(t, "/mnt/c", WindowsFallback("/mnt/c"))
	assert.Equal(t, "/home/me/start.ini", WindowsFallback("/home/me/start.ini"))
}

func TestWSLFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/mnt/c/Program Files/MetaTrader 5/terminal64.exe",
		WSLFallback(`C:\Program Files\MetaTrader 5\terminal64.exe`))
	assert.Equal(t, "/mnt/d/data", WSLFallback("D:/data"))
	assert.Equal(t, "relative\\path", WSLFallback("relative\\path"))
	assert.Equal(t, "C:", WSLFallback("C:"))
}

func TestConverterOffWSLIsIdentity(t *testing.T) {
	t.Parallel()

	cmd := &fakeCommander{}
	c := NewConverter(Environment{WSL: false}, cmd)
	ctx := context.Background()

	assert.Equal(t, "/mnt/c/x", c.ToWindows(ctx, "/mnt/c/x"))
	assert.Equal(t, `C:\x`, c.ToLocal(ctx, `C:\x`))
	assert.Equal(t, `C:\x`, c.Localize(ctx, `C:\x`))
	assert.Empty(t, cmd.calls)
}

func TestConverterUsesWslpath(t *testing.T) {
	t.Parallel()

	cmd := &fakeCommander{outputs: map[string]string{
		"-w /home/me/start.ini": `\\wsl.localhost\Ubuntu\home\me\start.ini`,
		`-u C:\Data`:            "/mnt/c/Data",
	}}
	c := NewConverter(Environment{WSL: true}, cmd)
	ctx := context.Background()

	assert.Equal(t, `\\wsl.localhost\Ubuntu\home\me\start.ini`, c.ToWindows(ctx, "/home/me/start.ini"))
	assert.Equal(t, "/mnt/c/Data", c.ToLocal(ctx, `C:\Data`))
	assert.Equal(t, []string{"wslpath", "-w", "/home/me/start.ini"}, cmd.calls[0])
}

func TestConverterFallsBackWhenWslpathFails(t *testing.T) {
	t.Parallel()

	c := NewConverter(Environment{WSL: true}, &fakeCommander{})
	ctx := context.Background()

	assert.Equal(t, `E:\tmp\a.ini`, c.ToWindows(ctx, "/mnt/e/tmp/a.ini"))
	assert.Equal(t, "/mnt/e/tmp", c.ToLocal(ctx, `E:\tmp`))
}

func TestConverterToLocalKeepsPosixPaths(t *testing.T) {
	t.Parallel()

	cmd := &fakeCommander{}
	c := NewConverter(Environment{WSL: true}, cmd)

	assert.Equal(t, "/home/me", c.ToLocal(context.Background(), "/home/me"))
	assert.Empty(t, cmd.calls)
}

func TestConverterLocalizeOnlyWindowsLooking(t *testing.T) {
	t.Parallel()

	c := NewConverter(Environment{WSL: true}, &fakeCommander{})
	ctx := context.Background()

	assert.Equal(t, "relative/dir", c.Localize(ctx, "relative/dir"))
	assert.Equal(t, "/mnt/c/x", c.Localize(ctx, `C:\x`))
}

func TestDisplayWithoutCommanderReturnsInput(t *testing.T) {
	t.Parallel()

	c := NewConverter(Environment{WSL: true}, nil)
	assert.Equal(t, "/a/b", c.Display(context.Background(), "/a/b"))
}

func TestOffWSLOnlyDisplayAsksWslpath(t *testing.T) {
	t.Parallel()

	cmd := &fakeCommander{outputs: map[string]string{"-w /home/me/start.ini": `\\wsl.localhost\Ubuntu\home\me\start.ini`}}
	c := NewConverter(Environment{}, cmd)
	ctx := context.Background()

	assert.Equal(t, "/home/me/start.ini", c.ToWindows(ctx, "/home/me/start.ini"))
	assert.Empty(t, cmd.calls)

	assert.Equal(t, `\\wsl.localhost\Ubuntu\home\me\start.ini`, c.Display(ctx, "/home/me/start.ini"))
	assert.Len(t, cmd.calls, 1)
}
