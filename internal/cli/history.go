package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrNoHistory is returned when the history database could not be opened.
var ErrNoHistory = errors.New("run history is unavailable")

// History prints the most recent external program runs.
func (a *App) History(ctx context.Context, limit int) error {
	if a.history == nil {
		return ErrNoHistory
	}
	entries, err := a.history.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		a.out.Info("no runs recorded yet.")
		return nil
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.StartedAt.Local().Format(time.DateTime),
			strconv.Itoa(e.ExitCode),
			e.Duration.Round(time.Millisecond).String(),
			e.Executable + " " + strings.Join(e.Args, " "),
		})
	}
	a.out.Table([]string{"Started", "Exit", "Duration", "Command"}, rows)
	return nil
}
