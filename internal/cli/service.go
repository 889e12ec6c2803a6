package cli

import (
	"context"
	"fmt"
)

// Service actions.
const (
	ServiceStart  = "start"
	ServiceStop   = "stop"
	ServiceEnsure = "ensure"
	ServiceStatus = "status"
)

// ServiceActions lists the accepted actions.
var ServiceActions = []string{ServiceStart, ServiceStop, ServiceEnsure, ServiceStatus}

// Service manages the engine service process. status exits 0 when running and 1 when
// stopped; the other actions return the exit code of the tool they ran.
func (a *App) Service(ctx context.Context, action string) (int, error) {
	running := a.service.Running(ctx)
	switch action {
	case ServiceStatus:
		if running {
			a.out.Tagged("Gen4Service", "running")
			return 0, nil
		}
		a.out.Tagged("Gen4Service", "stopped")
		return 1, nil
	case ServiceStop:
		if !running {
			a.out.Tagged("Gen4Service", "already stopped.")
			return 0, nil
		}
		return a.service.Stop(ctx)
	case ServiceStart, ServiceEnsure:
		dataDir, err := a.dataDir(ctx)
		if err != nil {
			return 1, err
		}
		exe, err := a.service.Executable(ctx, dataDir)
		if err != nil {
			return 1, err
		}
		if running {
			a.out.Tagged("Gen4Service", "already running.")
			return 0, nil
		}
		return a.service.Start(ctx, exe)
	default:
		return 1, fmt.Errorf("unknown service action %q", action)
	}
}
