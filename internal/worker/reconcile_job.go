package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/identity"
	"github.com/vestalumina/vls-api/internal/repository"
	"github.com/vestalumina/vls-api/pkg/logger"
)

// ReconcileJob removes identities left behind by multi-step writes that did
// not complete, and reports tenants whose identity has disappeared.
type ReconcileJob struct {
	repo       repository.PostgresRepository
	identities identity.Provider
	grace      time.Duration
	clock      clock.Clock
	logger     *logger.Logger
}

func NewReconcileJob(repo repository.PostgresRepository, identities identity.Provider, grace time.Duration, clk clock.Clock, logger *logger.Logger) *ReconcileJob {
	return &ReconcileJob{
		repo:       repo,
		identities: identities,
		grace:      grace,
		clock:      clk,
		logger:     logger,
	}
}

func (j *ReconcileJob) Name() string {
	return "reconcile"
}

func (j *ReconcileJob) Run(ctx context.Context) error {
	cutoff := j.clock.Now().UTC().Add(-j.grace)

	orphans, err := j.repo.Identity().ListUnreferenced(ctx,
		[]string{domain.IdentityOriginTenant, domain.IdentityOriginDevice}, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list unreferenced identities: %w", err)
	}

	var errs error
	removed := 0
	for _, orphan := range orphans {
		if err := j.identities.Delete(ctx, orphan.UID); err != nil {
			if errors.Is(err, identity.ErrIdentityNotFound) {
				continue
			}
			errs = multierr.Append(errs, fmt.Errorf("identity %s: %w", orphan.UID, err))
			continue
		}
		removed++
		j.logger.Info("Orphan identity removed",
			zap.String("uid", orphan.UID),
			zap.String("origin", orphan.Origin),
			zap.Time("created_at", orphan.CreatedAt),
		)
	}

	dangling, err := j.repo.Tenant().ListMissingIdentity(ctx)
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("failed to list tenants without identity: %w", err))
	}
	for _, tenant := range dangling {
		j.logger.Warn("Tenant references a missing identity",
			zap.String("tenant_id", tenant.ID),
			zap.String("identity_ref", tenant.IdentityRef),
		)
	}

	j.logger.Info("Reconciliation finished",
		zap.Int("orphans", len(orphans)),
		zap.Int("removed", removed),
		zap.Int("dangling_tenants", len(dangling)),
	)
	return errs
}
