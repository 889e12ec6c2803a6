package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/mtcli/internal/ini"
	"github.com/wizzomafizzo/mtcli/internal/launcher"
	"github.com/wizzomafizzo/mtcli/internal/tester"
)

// TesterRun writes a tester configuration and runs it. inputsPath optionally names a
// JSON or YAML file with the [TesterInputs] values.
func (a *App) TesterRun(ctx context.Context, params tester.Params, inputsPath, iniPath string) (int, error) {
	terminal, err := a.terminal(ctx)
	if err != nil {
		return 1, err
	}
	now := a.now()
	params.Report = tester.ExpandReport(params.Report, now, "")
	t, err := params.Tester()
	if err != nil {
		return 1, err
	}

	content := t.String()
	if inputsPath != "" {
		data, err := afero.ReadFile(a.fs, a.absPath(inputsPath))
		if err != nil {
			return 1, fmt.Errorf("failed to read inputs: %w", err)
		}
		inputs, err := ini.ParseInputs(data)
		if err != nil {
			return 1, err
		}
		content = tester.Document(t, inputs)
	}

	path := a.absPath(orDefault(iniPath, tester.RunFileName(now)))
	if err := ini.WriteFile(a.fs, path, content); err != nil {
		return 1, err
	}
	a.out.Info("tester INI at: %s", path)
	return a.launcher.RunWindows(ctx, terminal, []string{launcher.ConfigArg(path)})
}

// TesterBatch runs every combination of a plan one after another. The result is the
// first non-zero exit code, or 0 when all runs succeeded.
func (a *App) TesterBatch(ctx context.Context, planPath, iniDir string) (int, error) {
	terminal, err := a.terminal(ctx)
	if err != nil {
		return 1, err
	}
	data, err := afero.ReadFile(a.fs, a.absPath(planPath))
	if err != nil {
		return 1, fmt.Errorf("failed to read plan: %w", err)
	}
	plan, err := tester.ParsePlan(data)
	if err != nil {
		return 1, err
	}
	jobs, err := plan.Jobs()
	if err != nil {
		return 1, err
	}

	dir := a.absPath(orDefault(iniDir, "."))
	a.out.Info("running %d combinations...", len(jobs))
	result := 0
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return 1, err
		}
		path := filepath.Join(dir, job.FileName)
		if err := ini.WriteFile(a.fs, path, job.Config(a.now())); err != nil {
			return 1, err
		}
		a.out.Println(fmt.Sprintf("[%d/%d] %s -> %s", job.Index, len(jobs), job.Label, path))
		code, err := a.launcher.RunWindows(ctx, terminal, []string{launcher.ConfigArg(path)})
		if err != nil {
			return 1, err
		}
		if code != 0 {
			zerolog.Ctx(ctx).Warn().Int("exit_code", code).Str("label", job.Label).Msg("Batch run failed")
			a.out.Warn("exit code %d for this combination.", code)
			if result == 0 {
				result = code
			}
		}
	}
	return result, nil
}
