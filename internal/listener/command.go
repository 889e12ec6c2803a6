// Package listener talks to the CommandListenerEA expert through a one-line command
// file and installs the MQL5 sources that make this possible.
package listener

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/mtcli/internal/constants"
	"github.com/wizzomafizzo/mtcli/internal/ini"
	"github.com/wizzomafizzo/mtcli/internal/platform/wsl"
)

// Command verbs understood by the listener expert.
const (
	VerbApplyTemplate   = "APPLY_TPL"
	VerbAttachIndicator = "ATTACH_IND"
	VerbDetachIndicator = "DETACH_IND"
	VerbAttachExpert    = "ATTACH_EA"
	VerbDetachExpert    = "DETACH_EA"
)

// ErrInvalidPayload is returned for payloads the expert cannot read as a single ASCII line.
var ErrInvalidPayload = errors.New("payload must be a single line of ASCII text")

func join(verb, symbol, period string, rest ...string) (string, error) {
	tf, err := ini.Timeframe(period)
	if err != nil {
		return "", err
	}
	fields := append([]string{verb, symbol, tf}, rest...)
	return strings.Join(fields, ";"), nil
}

// ApplyTemplate builds APPLY_TPL;SYMBOL;TF;TEMPLATE.
func ApplyTemplate(symbol, period, template string) (string, error) {
	return join(VerbApplyTemplate, symbol, period, template)
}

// AttachIndicator builds ATTACH_IND;SYMBOL;TF;INDICATOR;SUBWINDOW.
func AttachIndicator(symbol, period, indicator string, subwindow int) (string, error) {
	return join(VerbAttachIndicator, symbol, period, indicator, strconv.Itoa(subwindow))
}

// DetachIndicator builds DETACH_IND;SYMBOL;TF;INDICATOR;SUBWINDOW.
func DetachIndicator(symbol, period, indicator string, subwindow int) (string, error) {
	return join(VerbDetachIndicator, symbol, period, indicator, strconv.Itoa(subwindow))
}

// AttachExpert builds ATTACH_EA;SYMBOL;TF;EXPERT;TEMPLATE. An empty template names
// the listener's own template.
func AttachExpert(symbol, period, expert, template string) (string, error) {
	if template == "" {
		template = constants.ListenerTemplate
	}
	return join(VerbAttachExpert, symbol, period, expert, template)
}

// DetachExpert builds DETACH_EA;SYMBOL;TF.
func DetachExpert(symbol, period string) (string, error) {
	return join(VerbDetachExpert, symbol, period)
}

// Client writes commands into a terminal data folder.
type Client struct {
	fs    afero.Fs
	paths *wsl.Converter
}

// NewClient creates a client writing through fs.
func NewClient(fs afero.Fs, paths *wsl.Converter) *Client {
	return &Client{fs: fs, paths: paths}
}

// CommandFile returns the local path of MQL5/Files/cmd.txt under dataDir.
func (c *Client) CommandFile(ctx context.Context, dataDir string) string {
	base := c.paths.ToLocal(ctx, dataDir)
	return filepath.Join(base, constants.MQL5Dir, constants.FilesDir, constants.CommandFilename)
}

// Send replaces the command file with payload. The expert polls for the file, runs
// the command and deletes it, so only the latest unread command survives.
func (c *Client) Send(ctx context.Context, dataDir, payload string) (string, error) {
	if err := validatePayload(payload); err != nil {
		return "", err
	}
	path := c.CommandFile(ctx, dataDir)
	if err := c.fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(c.fs, path, []byte(payload), 0o644); err != nil {
		return "", fmt.Errorf("failed to write command file: %w", err)
	}
	zerolog.Ctx(ctx).Debug().Str("path", path).Str("payload", payload).Msg("Sent listener command")
	return path, nil
}

func validatePayload(payload string) error {
	for i := 0; i < len(payload); i++ {
		b := payload[i]
		if b > 0x7f || b == '\n' || b == '\r' {
			return ErrInvalidPayload
		}
	}
	return nil
}
