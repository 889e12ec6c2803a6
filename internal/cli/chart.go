package cli

import (
	"context"
	"time"

	"github.com/wizzomafizzo/mtcli/internal/ini"
	"github.com/wizzomafizzo/mtcli/internal/listener"
	"github.com/wizzomafizzo/mtcli/internal/logs"
)

// ListenerSend writes a command for the listener expert without waiting for it.
func (a *App) ListenerSend(ctx context.Context, payload string) error {
	dataDir, err := a.dataDir(ctx)
	if err != nil {
		return err
	}
	path, err := a.client.Send(ctx, dataDir, payload)
	if err != nil {
		return err
	}
	a.out.Tagged(">", "command sent: %s", payload)
	a.out.Info("the expert reads and deletes %s", a.display(ctx, path))
	return nil
}

// ChartSend writes payload, waits for the expert to act on it and prints the log tails
// labelled with tag.
func (a *App) ChartSend(ctx context.Context, tag, payload string) error {
	return a.chartSend(ctx, tag, payload, settleDelay)
}

func (a *App) chartSend(ctx context.Context, tag, payload string, settle time.Duration) error {
	dataDir, err := a.dataDir(ctx)
	if err != nil {
		return err
	}
	path, err := a.client.Send(ctx, dataDir, payload)
	if err != nil {
		return err
	}
	a.out.Tagged("cmd", "%s", payload)
	a.out.Tagged("cmd", "written to %s", a.display(ctx, path))
	a.sleep(ctx, settle)
	a.tailer.Print(ctx, a.out.Writer(), tag, dataDir, logs.DefaultLimit)
	return nil
}

// ExpertAttachOptions describe an expert to put on a chart.
type ExpertAttachOptions struct {
	Symbol string
	Period string
	Expert string
	// Template is applied as is when set; otherwise one is generated for Expert.
	Template string
	// Preset is a .set file whose values seed the generated template's inputs.
	Preset string
}

// ChartExpertAttach attaches an expert through a chart template.
func (a *App) ChartExpertAttach(ctx context.Context, opts ExpertAttachOptions) error {
	tpl := opts.Template
	if tpl == "" {
		dataDir, err := a.dataDir(ctx)
		if err != nil {
			return err
		}
		var inputs ini.Inputs
		if opts.Preset != "" {
			if inputs, err = listener.ReadPreset(a.fs, a.paths.Localize(ctx, a.absPath(opts.Preset))); err != nil {
				return err
			}
		}
		tpl, err = a.installer.WriteExpertTemplate(ctx, dataDir, listener.ExpertTemplate{
			Symbol: opts.Symbol,
			Period: opts.Period,
			Expert: opts.Expert,
			Inputs: inputs,
		})
		if err != nil {
			return err
		}
		a.out.Info("generated template %s", tpl)
	}
	payload, err := listener.AttachExpert(opts.Symbol, opts.Period, opts.Expert, tpl)
	if err != nil {
		return err
	}
	return a.chartSend(ctx, "chart expert attach", payload, expertSettleDelay)
}
