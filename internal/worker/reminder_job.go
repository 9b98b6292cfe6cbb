package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/repository"
	"github.com/vestalumina/vls-api/internal/service"
	"github.com/vestalumina/vls-api/pkg/logger"
)

// ReminderJob emails tenants that are still pending after the reminder age,
// at most once per reminder window and at most batchSize emails per run.
type ReminderJob struct {
	repo      repository.PostgresRepository
	notifier  service.TenantNotifier
	after     time.Duration
	interval  time.Duration
	batchSize int
	clock     clock.Clock
	logger    *logger.Logger
}

func NewReminderJob(
	repo repository.PostgresRepository,
	notifier service.TenantNotifier,
	after time.Duration,
	sendInterval time.Duration,
	batchSize int,
	clk clock.Clock,
	logger *logger.Logger,
) *ReminderJob {
	return &ReminderJob{
		repo:      repo,
		notifier:  notifier,
		after:     after,
		interval:  sendInterval,
		batchSize: batchSize,
		clock:     clk,
		logger:    logger,
	}
}

func (j *ReminderJob) Name() string {
	return "reminder"
}

func (j *ReminderJob) Run(ctx context.Context) error {
	threshold := j.clock.Now().UTC().Add(-j.after)

	tenants, err := j.repo.Tenant().List(ctx, domain.TenantFilter{
		Status:        domain.TenantStatusPending,
		CreatedBefore: threshold,
	})
	if err != nil {
		return fmt.Errorf("failed to list pending tenants: %w", err)
	}

	var errs error
	sent, failed, skipped := 0, 0, 0
	for i := range tenants {
		tenant := &tenants[i]
		if err := ctx.Err(); err != nil {
			return multierr.Append(errs, err)
		}

		already, err := j.repo.Notification().SentSince(ctx, tenant.ID, domain.NotificationReminder, threshold)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("tenant %s: %w", tenant.ID, err))
			continue
		}
		if already {
			skipped++
			continue
		}
		if j.batchSize > 0 && sent+failed >= j.batchSize {
			j.logger.Info("Reminder batch limit reached", zap.Int("limit", j.batchSize))
			break
		}

		if sent+failed > 0 && j.interval > 0 {
			j.clock.Sleep(j.interval)
		}
		if j.notifier.SendReminder(ctx, tenant) {
			sent++
		} else {
			failed++
		}
	}

	j.logger.Info("Reminder scan finished",
		zap.Int("pending", len(tenants)),
		zap.Int("sent", sent),
		zap.Int("failed", failed),
		zap.Int("skipped", skipped),
	)
	return errs
}
