// Package service starts and stops the engine service that ships next to the
// terminal data folder, using the Windows process tools.
package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/mtcli/internal/constants"
	"github.com/wizzomafizzo/mtcli/internal/platform/wsl"
)

const wslSystem32 = "/mnt/c/Windows/System32"

// ErrNotBuilt is returned when no service executable exists under the data folder.
var ErrNotBuilt = errors.New(constants.ServiceImage + " not found, build the engine first")

// Executor runs the Windows process tools. *launcher.Launcher satisfies it.
type Executor interface {
	Run(ctx context.Context, name string, args []string) (int, error)
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Controller queries and changes the service process state.
type Controller struct {
	fs    afero.Fs
	paths *wsl.Converter
	exec  Executor
}

// NewController creates a controller.
func NewController(fs afero.Fs, paths *wsl.Converter, exec Executor) *Controller {
	return &Controller{fs: fs, paths: paths, exec: exec}
}

func (c *Controller) tool(name string) string {
	if c.paths.Env().WSL {
		return wslSystem32 + "/" + name + ".exe"
	}
	return name
}

func (c *Controller) powershell() string {
	if c.paths.Env().WSL {
		return wslSystem32 + "/WindowsPowerShell/v1.0/powershell.exe"
	}
	return "powershell.exe"
}

// Running reports whether the service process is listed by tasklist. A failing
// tasklist counts as not running.
func (c *Controller) Running(ctx context.Context) bool {
	out, err := c.exec.Output(ctx, c.tool("tasklist"), "/FI", "IMAGENAME eq "+constants.ServiceImage)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("tasklist failed")
		return false
	}
	return strings.Contains(string(out), constants.ServiceImage)
}

// Executable returns the local path of the first service build found under dataDir.
func (c *Controller) Executable(ctx context.Context, dataDir string) (string, error) {
	base := c.paths.ToLocal(ctx, dataDir)
	for _, dir := range constants.EngineDirs {
		candidate := filepath.Join(base, dir, "bin", constants.ServiceImage)
		if ok, err := afero.Exists(c.fs, candidate); err == nil && ok {
			return candidate, nil
		}
	}
	return "", ErrNotBuilt
}

// Start launches exe detached through PowerShell and returns PowerShell's exit code.
func (c *Controller) Start(ctx context.Context, exe string) (int, error) {
	win := strings.ReplaceAll(c.paths.ToWindows(ctx, exe), "'", "''")
	code, err := c.exec.Run(ctx, c.powershell(), []string{
		"-NoProfile", "-Command", fmt.Sprintf("Start-Process -FilePath '%s'", win),
	})
	if err != nil {
		return code, fmt.Errorf("failed to start service: %w", err)
	}
	return code, nil
}

// Stop force-kills the service process and returns taskkill's exit code.
func (c *Controller) Stop(ctx context.Context) (int, error) {
	code, err := c.exec.Run(ctx, c.tool("taskkill"), []string{"/IM", constants.ServiceImage, "/F"})
	if err != nil {
		return code, fmt.Errorf("failed to stop service: %w", err)
	}
	return code, nil
}
