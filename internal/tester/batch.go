package tester

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/wizzomafizzo/mtcli/internal/ini"
	"gopkg.in/yaml.v3"
)

// DefaultBatchReport is the report name used when a plan's base has none.
const DefaultBatchReport = `\reports\batch_{ts}.htm`

// Plan is a batch of runs: base parameters plus a grid of input values.
type Plan struct {
	Grid map[string][]any `yaml:"grid"`
	Base Params           `yaml:"base"`
}

// Job is one validated grid combination. Its document is rendered just before the
// run so {ts} in the report name reflects the run's own start.
type Job struct {
	tester   ini.Tester
	Label    string
	FileName string
	inputs   ini.Inputs
	Index    int
}

// Config renders the job's INI document, expanding {ts} with now.
func (j Job) Config(now time.Time) string {
	t := j.tester
	t.Report = ExpandReport(t.Report, now, j.Label)
	return Document(t, j.inputs)
}

// ParsePlan decodes a JSON or YAML plan.
func ParsePlan(data []byte) (Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("failed to parse plan: %w", err)
	}
	return p, nil
}

// Keys returns the grid keys in the order combinations are built.
func (p Plan) Keys() []string {
	keys := make([]string, 0, len(p.Grid))
	for k := range p.Grid {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Combinations returns the cartesian product of the grid values over Keys, the last
// key varying fastest. An empty grid yields a single empty combination.
func (p Plan) Combinations() [][]any {
	combos := [][]any{{}}
	for _, k := range p.Keys() {
		next := make([][]any, 0, len(combos)*len(p.Grid[k]))
		for _, c := range combos {
			for _, v := range p.Grid[k] {
				combo := make([]any, len(c), len(c)+1)
				copy(combo, c)
				next = append(next, append(combo, v))
			}
		}
		combos = next
	}
	return combos
}

// Label names a combination as key-value pairs joined by underscores.
func Label(keys []string, combo []any) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "-" + strings.ReplaceAll(ini.FormatValue(combo[i]), ":", "")
	}
	return strings.Join(parts, "_")
}

// Jobs expands and validates the plan. Shutdown defaults to true so runs finish
// unattended.
func (p Plan) Jobs() ([]Job, error) {
	base := p.Base
	if base.Shutdown == nil {
		shutdown := true
		base.Shutdown = &shutdown
	}
	report := base.Report
	if report == "" {
		report = DefaultBatchReport
	}

	keys := p.Keys()
	combos := p.Combinations()
	jobs := make([]Job, 0, len(combos))
	for i, combo := range combos {
		label := Label(keys, combo)
		inputs := base.Inputs.Clone()
		for j, k := range keys {
			inputs = inputs.Set(k, combo[j])
		}

		params := base
		params.Report = report
		t, err := params.Tester()
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, Job{
			Index:    i + 1,
			Label:    label,
			FileName: fmt.Sprintf("batch_%03d_%s.ini", i+1, label),
			tester:   t,
			inputs:   inputs,
		})
	}
	return jobs, nil
}
