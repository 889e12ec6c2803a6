// Package ini builds the key-value configuration documents MetaTrader 5 reads from
// /config: and writes them in the encoding the terminal expects.
package ini

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// section accumulates Key=Value lines under a [Name] header.
type section struct {
	lines []string
}

func newSection(name string) *section {
	return &section{lines: []string{"[" + name + "]"}}
}

func (s *section) set(key, value string) {
	s.lines = append(s.lines, key+"="+value)
}

func (s *section) setString(key, value string) {
	if value != "" {
		s.set(key, value)
	}
}

func (s *section) setInt(key string, value *int) {
	if value != nil {
		s.set(key, strconv.Itoa(*value))
	}
}

func (s *section) setBool(key string, value *bool) {
	if value != nil {
		s.set(key, boolDigit(*value))
	}
}

func (s *section) String() string {
	return strings.Join(s.lines, "\n") + "\n"
}

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Escape doubles every backslash so program paths survive the terminal's INI parser.
func Escape(value string) string {
	return strings.ReplaceAll(value, `\`, `\\`)
}

// NormalizeReport converts a report path to the terminal-relative form (\reports\x.htm).
func NormalizeReport(value string) string {
	if value == "" {
		return value
	}
	value = strings.ReplaceAll(value, "/", `\`)
	if !strings.HasPrefix(value, `\`) {
		value = `\` + value
	}
	return value
}

// Encode converts content to UTF-16LE without a byte order mark.
func Encode(content string) ([]byte, error) {
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().String(content)
	if err != nil {
		return nil, fmt.Errorf("failed to encode as UTF-16LE: %w", err)
	}
	return []byte(encoded), nil
}

// Decode turns file content written by the terminal into a string. UTF-16 is
// recognised by its byte order mark or by NUL bytes in the first line; anything else
// is read as UTF-8.
func Decode(data []byte) string {
	if looksUTF16(data) {
		dec := unicode.BOMOverride(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder())
		if out, _, err := transform.Bytes(dec, data); err == nil {
			return string(out)
		}
	}
	return strings.ToValidUTF8(strings.TrimPrefix(string(data), "\uFEFF"), "\uFFFD")
}

func looksUTF16(data []byte) bool {
	if len(data) >= 2 && ((data[0] == 0xFF && data[1] == 0xFE) || (data[0] == 0xFE && data[1] == 0xFF)) {
		return true
	}
	probe := data
	if len(probe) > 64 {
		probe = probe[:64]
	}
	return len(probe) >= 2 && bytes.IndexByte(probe, 0) >= 0
}

// WriteFile writes content UTF-16LE encoded, creating parent directories.
func WriteFile(fs afero.Fs, path, content string) error {
	data, err := Encode(content)
	if err != nil {
		return err
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
