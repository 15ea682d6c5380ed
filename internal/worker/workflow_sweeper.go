package worker

import (
	"context"
	"time"

	"github.com/jwalitptl/clinic-booking-api/internal/service/workflow"
	"github.com/jwalitptl/clinic-booking-api/pkg/logger"
)

// WorkflowSweeper reclaims abandoned symptom-checker sessions. A user
// who navigates away mid-flow leaves state behind; the sweeper is what
// eventually drops it.
type WorkflowSweeper struct {
	workflows *workflow.Service
	interval  time.Duration
	log       *logger.Logger
}

func NewWorkflowSweeper(workflows *workflow.Service, interval time.Duration, log *logger.Logger) *WorkflowSweeper {
	return &WorkflowSweeper{
		workflows: workflows,
		interval:  interval,
		log:       log,
	}
}

func (w *WorkflowSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := w.workflows.SweepExpired(); n > 0 {
				w.log.Info("reclaimed expired workflow sessions", "count", n)
			}
		}
	}
}
