package wsl

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// wslpathBinary converts paths on WSL hosts.
const wslpathBinary = "wslpath"

// Commander runs a helper binary and returns its standard output.
type Commander interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// Converter translates paths between Windows (C:\...) and WSL (/mnt/c/...) forms.
// Off WSL every conversion is the identity, except Display which still asks wslpath
// and falls back to the input.
type Converter struct {
	cmd Commander
	env Environment
}

// NewConverter creates a converter for env that shells out through cmd.
func NewConverter(env Environment, cmd Commander) *Converter {
	return &Converter{env: env, cmd: cmd}
}

// Env returns the environment the converter was built for.
func (c *Converter) Env() Environment {
	return c.env
}

// ToWindows returns the Windows form of a WSL path. On a non-WSL host the path is
// returned unchanged.
func (c *Converter) ToWindows(ctx context.Context, p string) string {
	if !c.env.WSL {
		return p
	}
	if out, ok := c.wslpath(ctx, "-w", p); ok {
		return out
	}
	return WindowsFallback(p)
}

// ToLocal returns the path usable by local file APIs. Absolute POSIX paths and every
// path on a non-WSL host are returned unchanged.
func (c *Converter) ToLocal(ctx context.Context, p string) string {
	if !c.env.WSL || strings.HasPrefix(p, "/") {
		return p
	}
	if out, ok := c.wslpath(ctx, "-u", p); ok {
		return out
	}
	return WSLFallback(p)
}

// Localize converts only values that look like Windows paths (drive letter or UNC).
func (c *Converter) Localize(ctx context.Context, p string) string {
	if c.env.WSL && (HasDrive(p) || strings.HasPrefix(p, `\\`)) {
		return c.ToLocal(ctx, p)
	}
	return p
}

// Display renders a local path for messages, in Windows form when wslpath can produce one.
func (c *Converter) Display(ctx context.Context, p string) string {
	if out, ok := c.wslpath(ctx, "-w", p); ok {
		return out
	}
	return p
}

func (c *Converter) wslpath(ctx context.Context, flag, p string) (string, bool) {
	if c.cmd == nil {
		return "", false
	}
	out, err := c.cmd.Output(ctx, wslpathBinary, flag, p)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("path", p).Str("flag", flag).Msg("wslpath failed, using fallback")
		return "", false
	}
	converted := strings.TrimSpace(string(out))
	if converted == "" {
		return "", false
	}
	return converted, true
}

// WindowsFallback maps /mnt/<d>/rest to D:\rest without consulting wslpath.
func WindowsFallback(p string) string {
	if strings.HasPrefix(p, "/mnt/") && len(p) > 7 {
		drive := strings.ToUpper(p[5:6])
		rest := strings.ReplaceAll(p[7:], "/", `\`)
		return drive + `:\` + rest
	}
	return p
}

// WSLFallback maps X:\rest (or X:/rest) to /mnt/x/rest without consulting wslpath.
func WSLFallback(p string) string {
	if len(p) >= 3 && p[1] == ':' && (p[2] == '\\' || p[2] == '/') {
		drive := strings.ToLower(p[:1])
		rest := strings.TrimLeft(strings.ReplaceAll(p[2:], `\`, "/"), "/")
		return "/mnt/" + drive + "/" + rest
	}
	return p
}

// HasDrive reports whether p starts with a drive letter and colon.
func HasDrive(p string) bool {
	return len(p) >= 2 && p[1] == ':'
}
