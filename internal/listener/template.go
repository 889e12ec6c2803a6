package listener

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/mtcli/internal/constants"
	"github.com/wizzomafizzo/mtcli/internal/ini"
)

// ExpertTemplate is a chart template that loads a single expert.
type ExpertTemplate struct {
	Symbol string
	Period string
	Expert string
	Inputs ini.Inputs
}

// TemplateName returns the file name generated templates use for expert.
func TemplateName(expert string) string {
	name := expert
	if i := strings.LastIndexAny(name, `\/`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, ".ex5")
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	return "mtcli_" + name + ".tpl"
}

// periodFields maps a timeframe to the chart's period_type and period_size.
func periodFields(tf string) (periodType, size int) {
	n, _ := strconv.Atoi(tf[1:])
	switch tf[0] {
	case 'M':
		if tf == "MN1" {
			return 4, 1
		}
		return 0, n
	case 'H':
		return 1, n
	case 'D':
		return 2, 1
	default:
		return 3, 1
	}
}

// Render produces the template text.
func (t ExpertTemplate) Render() (string, error) {
	tf, err := ini.Timeframe(t.Period)
	if err != nil {
		return "", err
	}
	periodType, size := periodFields(tf)
	expert := strings.TrimSuffix(strings.ReplaceAll(t.Expert, "/", `\`), ".ex5")

	var b strings.Builder
	lines := []string{
		"<chart>",
		"symbol=" + t.Symbol,
		"period_type=" + strconv.Itoa(periodType),
		"period_size=" + strconv.Itoa(size),
		"<expert>",
		"name=" + expert[strings.LastIndex(expert, `\`)+1:],
		`path=Experts\` + expert + ".ex5",
		"expertmode=1",
		"<inputs>",
	}
	for _, in := range t.Inputs {
		lines = append(lines, in.Name+"="+ini.FormatValue(in.Value))
	}
	lines = append(lines, "</inputs>", "</expert>", "</chart>")
	for _, l := range lines {
		_, _ = b.WriteString(l)
		_, _ = b.WriteString("\r\n")
	}
	return b.String(), nil
}

// WriteExpertTemplate renders t into MQL5/Profiles/Templates and returns the template
// file name to pass to ATTACH_EA.
func (in *Installer) WriteExpertTemplate(ctx context.Context, dataDir string, t ExpertTemplate) (string, error) {
	content, err := t.Render()
	if err != nil {
		return "", err
	}
	name := TemplateName(t.Expert)
	base := in.paths.ToLocal(ctx, dataDir)
	path := filepath.Join(base, constants.MQL5Dir, constants.ProfilesDir, constants.TemplatesDir, name)
	if err := ini.WriteFile(in.fs, path, content); err != nil {
		return "", fmt.Errorf("failed to write template: %w", err)
	}
	return name, nil
}

// ReadPreset loads expert inputs from a .set file. Optimisation ranges in the file are
// reduced to their current value.
func ReadPreset(fs afero.Fs, path string) (ini.Inputs, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset: %w", err)
	}
	var inputs ini.Inputs
	for _, line := range strings.Split(ini.Decode(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		name, value, found := strings.Cut(line, "=")
		if !found || name == "" {
			continue
		}
		value, _, _ = strings.Cut(value, "||")
		inputs = inputs.Set(strings.TrimSpace(name), value)
	}
	return inputs, nil
}
