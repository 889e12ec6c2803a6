// Package tester turns run options and batch plans into Strategy Tester configurations.
package tester

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wizzomafizzo/mtcli/internal/ini"
)

// TimestampLayout is the {ts} expansion in report names and generated file names.
const TimestampLayout = "20060102-150405"

// Params describe one tester run. The yaml names are those of a batch plan's base.
type Params struct {
	Visual           *bool      `yaml:"visual"`
	ReplaceReport    *bool      `yaml:"replace_report"`
	Shutdown         *bool      `yaml:"shutdown"`
	UseLocal         *bool      `yaml:"use_local"`
	UseRemote        *bool      `yaml:"use_remote"`
	UseCloud         *bool      `yaml:"use_cloud"`
	ExecDelayMs      *int       `yaml:"exec_delay_ms"`
	Port             *int       `yaml:"port"`
	Expert           string     `yaml:"ea"`
	ExpertParameters string     `yaml:"ea_parameters"`
	Symbol           string     `yaml:"symbol"`
	Period           string     `yaml:"period"`
	Model            string     `yaml:"model"`
	Optimization     string     `yaml:"opt"`
	Criterion        string     `yaml:"criterion"`
	FromDate         string     `yaml:"date_from"`
	ToDate           string     `yaml:"date_to"`
	Forward          string     `yaml:"forward"`
	ForwardDate      string     `yaml:"forward_date"`
	Deposit          string     `yaml:"deposit"`
	Currency         string     `yaml:"currency"`
	Leverage         string     `yaml:"leverage"`
	Login            string     `yaml:"login"`
	Report           string     `yaml:"report"`
	Inputs           ini.Inputs `yaml:"inputs"`
}

// ErrMissingField is wrapped when a required parameter is empty.
var ErrMissingField = errors.New("missing required field")

// Tester validates the parameters and builds the [Tester] section.
func (p Params) Tester() (ini.Tester, error) {
	required := []struct{ name, value string }{
		{"ea", p.Expert}, {"symbol", p.Symbol}, {"period", p.Period},
	}
	for _, r := range required {
		if r.value == "" {
			return ini.Tester{}, fmt.Errorf("%w: %s", ErrMissingField, r.name)
		}
	}
	tf, err := ini.Timeframe(p.Period)
	if err != nil {
		return ini.Tester{}, err
	}
	model, err := ini.Models.Code(orDefault(p.Model, "everytick"))
	if err != nil {
		return ini.Tester{}, fmt.Errorf("model: %w", err)
	}
	opt, err := ini.Optimizations.Code(orDefault(p.Optimization, "off"))
	if err != nil {
		return ini.Tester{}, fmt.Errorf("opt: %w", err)
	}
	criterion, err := ini.Criteria.Lookup(p.Criterion)
	if err != nil {
		return ini.Tester{}, fmt.Errorf("criterion: %w", err)
	}
	forward, err := ini.ForwardModes.Lookup(p.Forward)
	if err != nil {
		return ini.Tester{}, fmt.Errorf("forward: %w", err)
	}

	return ini.Tester{
		Expert:           p.Expert,
		ExpertParameters: p.ExpertParameters,
		Symbol:           p.Symbol,
		Period:           tf,
		Login:            p.Login,
		Model:            model,
		ExecutionMode:    p.ExecDelayMs,
		Optimization:     opt,
		Criterion:        criterion,
		FromDate:         p.FromDate,
		ToDate:           p.ToDate,
		ForwardMode:      forward,
		ForwardDate:      p.ForwardDate,
		Report:           p.Report,
		ReplaceReport:    p.ReplaceReport,
		Deposit:          p.Deposit,
		Currency:         p.Currency,
		Leverage:         p.Leverage,
		UseLocal:         p.UseLocal,
		UseRemote:        p.UseRemote,
		UseCloud:         p.UseCloud,
		Visual:           p.Visual,
		Port:             p.Port,
		Shutdown:         p.Shutdown,
	}, nil
}

// Document renders the [Tester] section followed by [TesterInputs].
func Document(t ini.Tester, inputs ini.Inputs) string {
	return t.String() + "\n" + inputs.String()
}

// ExpandReport substitutes {ts} and {label} in a report name.
func ExpandReport(report string, now time.Time, label string) string {
	report = strings.ReplaceAll(report, "{ts}", now.Format(TimestampLayout))
	return strings.ReplaceAll(report, "{label}", label)
}

// RunFileName is the default INI name for a single run.
func RunFileName(now time.Time) string {
	return "tester-" + now.Format(TimestampLayout) + ".ini"
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
