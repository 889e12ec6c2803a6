package launcher

import (
	"path/filepath"
	"strings"
)

// ConfigArg points the terminal at a generated INI file.
func ConfigArg(path string) string {
	return "/config:" + path
}

// ProfileArg selects a chart profile on terminal start.
func ProfileArg(name string) string {
	return "/profile:" + name
}

// PortableArg starts the terminal in portable mode.
const PortableArg = "/portable"

// CompileArgs builds the editor arguments for compiling source. An empty log defaults
// to source with a .log extension.
func CompileArgs(source, log string, syntaxOnly bool) []string {
	if log == "" {
		log = ReplaceExt(source, ".log")
	}
	args := []string{"/compile:" + source, "/log:" + log}
	if syntaxOnly {
		args = append(args, "/s")
	}
	return args
}

// ReplaceExt swaps the extension of path for ext.
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
