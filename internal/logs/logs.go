// Package logs prints the tail of the terminal and engine logs after a chart command.
package logs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/mtcli/internal/constants"
	"github.com/wizzomafizzo/mtcli/internal/ini"
	"github.com/wizzomafizzo/mtcli/internal/platform/wsl"
)

// DefaultLimit is the number of lines shown per log.
const DefaultLimit = 20

// Separator frames the printed block.
var Separator = strings.Repeat("=", 60)

// Target is a log file worth showing.
type Target struct {
	Label string
	Path  string
}

// Tailer collects and prints log tails.
type Tailer struct {
	fs    afero.Fs
	paths *wsl.Converter
	now   func() time.Time
}

// NewTailer creates a tailer reading through fs.
func NewTailer(fs afero.Fs, paths *wsl.Converter, now func() time.Time) *Tailer {
	if now == nil {
		now = time.Now
	}
	return &Tailer{fs: fs, paths: paths, now: now}
}

// Targets lists today's terminal log and the engine service logs under dataDir.
func (t *Tailer) Targets(ctx context.Context, dataDir string) []Target {
	if dataDir == "" {
		return nil
	}
	base := t.paths.ToLocal(ctx, dataDir)
	targets := []Target{{
		Label: "terminal",
		Path:  filepath.Join(base, constants.MQL5Dir, constants.LogsDir, t.now().Format("20060102")+".log"),
	}}
	for _, dir := range constants.EngineDirs {
		targets = append(targets, Target{
			Label: "engine:" + dir,
			Path:  filepath.Join(base, dir, "bin", "logs", "gpu_service.log"),
		})
	}
	return targets
}

// Tail returns up to limit final lines of path. A missing file yields no lines.
func Tail(fs afero.Fs, path string, limit int) ([]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read log: %w", err)
	}
	text := strings.TrimRight(ini.Decode(data), "\r\n")
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], "\r")
	}
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	return lines, nil
}

// Print writes the tail of every target that has content. Unreadable logs are skipped.
func (t *Tailer) Print(ctx context.Context, w io.Writer, tag, dataDir string, limit int) {
	_, _ = fmt.Fprintln(w, Separator)
	_, _ = fmt.Fprintf(w, "[logs] last %d lines after '%s'\n", limit, tag)
	printed := false
	for _, target := range t.Targets(ctx, dataDir) {
		lines, err := Tail(t.fs, target.Path, limit)
		if err != nil || len(lines) == 0 {
			continue
		}
		printed = true
		_, _ = fmt.Fprintf(w, "--- %s: %s ---\n", target.Label, t.paths.Display(ctx, target.Path))
		for _, line := range lines {
			_, _ = fmt.Fprintln(w, line)
		}
	}
	if !printed {
		_, _ = fmt.Fprintln(w, "No logs available.")
	}
	_, _ = fmt.Fprintln(w, Separator)
}
