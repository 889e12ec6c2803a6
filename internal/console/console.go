// Package console formats user-facing output: status lines and tables.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
	infoColor = color.New(color.FgCyan)
)

// Printer writes status lines to a single writer.
type Printer struct {
	w io.Writer
}

// New creates a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}

func (p *Printer) line(prefix, format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}

// Success prints a [+] line.
func (p *Printer) Success(format string, args ...any) { p.line(okColor.Sprint("[+]"), format, args...) }

// Fail prints a [-] line.
func (p *Printer) Fail(format string, args ...any) { p.line(failColor.Sprint("[-]"), format, args...) }

// Warn prints a [!] line.
func (p *Printer) Warn(format string, args ...any) { p.line(warnColor.Sprint("[!]"), format, args...) }

// Info prints an [i] line.
func (p *Printer) Info(format string, args ...any) { p.line(infoColor.Sprint("[i]"), format, args...) }

// Tagged prints a line prefixed with a plain [tag].
func (p *Printer) Tagged(tag, format string, args ...any) { p.line("["+tag+"]", format, args...) }

// Println prints a plain line.
func (p *Printer) Println(a ...any) {
	_, _ = fmt.Fprintln(p.w, a...)
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Table renders rows under headers with a rounded border.
func Table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.Render()
}

// Table prints a table followed by a newline.
func (p *Printer) Table(headers []string, rows [][]string) {
	_, _ = fmt.Fprintln(p.w, Table(headers, rows))
}
