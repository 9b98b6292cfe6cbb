package worker

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/vestalumina/vls-api/internal/repository"
	"github.com/vestalumina/vls-api/pkg/logger"
)

// ActionLogRetentionJob prunes action log entries past the retention window.
// It is the only writer that ever deletes entries.
type ActionLogRetentionJob struct {
	actionLogs repository.ActionLogRepository
	retention  time.Duration
	clock      clock.Clock
	logger     *logger.Logger
}

func NewActionLogRetentionJob(actionLogs repository.ActionLogRepository, retention time.Duration, clk clock.Clock, logger *logger.Logger) *ActionLogRetentionJob {
	return &ActionLogRetentionJob{
		actionLogs: actionLogs,
		retention:  retention,
		clock:      clk,
		logger:     logger,
	}
}

func (j *ActionLogRetentionJob) Name() string {
	return "action_log_retention"
}

func (j *ActionLogRetentionJob) Run(ctx context.Context) error {
	cutoff := j.clock.Now().UTC().Add(-j.retention)

	deleted, err := j.actionLogs.DeleteBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	j.logger.Info("Action log entries pruned", zap.Int64("deleted", deleted), zap.Time("cutoff", cutoff))
	return nil
}
