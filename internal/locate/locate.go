// Package locate guesses where MetaTrader 5 is installed when no location is configured.
package locate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/mtcli/internal/constants"
	"github.com/wizzomafizzo/mtcli/internal/platform/wsl"
)

var installDirs = []string{
	"C:/Program Files/MetaTrader 5",
	"C:/Program Files (x86)/MetaTrader 5",
}

// wslUsersGlob finds roaming profiles of every Windows user from inside WSL.
const wslUsersGlob = "/mnt/c/Users/*/AppData/Roaming"

// Locator probes the usual installation and data folder locations.
type Locator struct {
	fs      afero.Fs
	paths   *wsl.Converter
	appData string
}

// New creates a locator. appData is the Windows %APPDATA% directory, empty when unknown.
func New(fs afero.Fs, paths *wsl.Converter, appData string) *Locator {
	return &Locator{fs: fs, paths: paths, appData: appData}
}

// NewFromEnv creates a locator reading %APPDATA% from the environment.
func NewFromEnv(fs afero.Fs, paths *wsl.Converter) *Locator {
	return New(fs, paths, os.Getenv("APPDATA"))
}

// Terminal returns the first terminal executable found.
func (l *Locator) Terminal(ctx context.Context) (string, error) {
	return l.firstExisting(ctx, "terminal", []string{"terminal64.exe", "terminal.exe"})
}

// MetaEditor returns the first editor executable found.
func (l *Locator) MetaEditor(ctx context.Context) (string, error) {
	return l.firstExisting(ctx, "metaeditor", []string{"metaeditor64.exe", "metaeditor.exe"})
}

func (l *Locator) firstExisting(ctx context.Context, what string, names []string) (string, error) {
	attempted := make([]string, 0, len(installDirs)*len(names))
	for _, dir := range installDirs {
		for _, name := range names {
			candidate := dir + "/" + name
			attempted = append(attempted, candidate)
			if l.isFile(l.paths.Localize(ctx, candidate)) {
				return candidate, nil
			}
		}
	}
	return "", &NotFoundError{What: what, AttemptedPaths: attempted}
}

// DataDir returns the terminal data folder with the most recently written
// Config/terminal.ini among those holding an MQL5 directory.
func (l *Locator) DataDir(ctx context.Context) (string, error) {
	roots := l.terminalRoots(ctx)
	var (
		best     string
		bestTime time.Time
		found    bool
	)
	for _, root := range roots {
		entries, err := afero.ReadDir(l.fs, root)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			dir := filepath.Join(root, entry.Name())
			if ok, _ := afero.DirExists(l.fs, filepath.Join(dir, constants.MQL5Dir)); !ok {
				continue
			}
			var mtime time.Time
			if info, err := l.fs.Stat(filepath.Join(dir, "Config", "terminal.ini")); err == nil {
				mtime = info.ModTime()
			}
			if !found || mtime.After(bestTime) {
				best, bestTime, found = dir, mtime, true
			}
		}
	}
	if !found {
		return "", &NotFoundError{What: "data folder", AttemptedPaths: roots}
	}
	return best, nil
}

func (l *Locator) terminalRoots(ctx context.Context) []string {
	var roots []string
	if l.appData != "" {
		roots = append(roots, filepath.Join(l.paths.Localize(ctx, l.appData), "MetaQuotes", "Terminal"))
	}
	if l.paths.Env().WSL {
		matches, err := afero.Glob(l.fs, wslUsersGlob)
		if err == nil {
			for _, m := range matches {
				roots = append(roots, filepath.Join(m, "MetaQuotes", "Terminal"))
			}
		}
	}
	return roots
}

func (l *Locator) isFile(path string) bool {
	info, err := l.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// NotFoundError lists every location that was probed.
type NotFoundError struct {
	What           string
	AttemptedPaths []string
}

func (e *NotFoundError) Error() string {
	var msg strings.Builder
	_, _ = fmt.Fprintf(&msg, "%s not found", e.What)
	if len(e.AttemptedPaths) > 0 {
		_, _ = msg.WriteString(". Attempted locations:")
		for _, p := range e.AttemptedPaths {
			_, _ = fmt.Fprintf(&msg, "\n  - %s", p)
		}
	}
	return msg.String()
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
