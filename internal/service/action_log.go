package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vestalumina/vls-api/internal/api/dto"
	"github.com/vestalumina/vls-api/internal/config"
	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/repository"
	"github.com/vestalumina/vls-api/pkg/logger"
)

//go:generate mockery --name LivePublisher --output ../mocks
type LivePublisher interface {
	Publish(ctx context.Context, entry *dto.ActionLogResponse) error
}

//go:generate mockery --name SQSService --output ../mocks
type SQSService interface {
	SendIndexMessage(ctx context.Context, entry *domain.ActionLogEntry) error
	SendBrandStatsMessage(ctx context.Context, brandID string) error
}

// ActionRecorder appends an entry after the caller's mutation has committed.
// Failures are logged by the recorder and never surface to the caller.
//
//go:generate mockery --name ActionRecorder --output ../mocks
type ActionRecorder interface {
	Record(ctx context.Context, entry *domain.ActionLogEntry)
}

type ActionLogService struct {
	repo         repository.Repository
	sqsSvc       SQSService
	publisher    LivePublisher
	resolver     PrincipalResolver
	defaultLimit int
	maxLimit     int
	logger       *logger.Logger
	now          func() time.Time
}

func NewActionLogService(repo repository.Repository, sqsSvc SQSService, resolver PrincipalResolver, cfg *config.Config, logger *logger.Logger) *ActionLogService {
	return &ActionLogService{
		repo:         repo,
		sqsSvc:       sqsSvc,
		resolver:     resolver,
		defaultLimit: cfg.ActionLogDefaultLimit,
		maxLimit:     cfg.ActionLogMaxLimit,
		logger:       logger,
		now:          time.Now,
	}
}

// SetLivePublisher sets the publisher feeding the live stream
func (s *ActionLogService) SetLivePublisher(publisher LivePublisher) {
	s.publisher = publisher
}

func (s *ActionLogService) Record(ctx context.Context, entry *domain.ActionLogEntry) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now().UTC()
	}

	fields := []zap.Field{
		zap.String("action_type", string(entry.ActionType)),
		zap.String("actor", entry.ActorEmail),
		zap.String("target_id", entry.TargetID),
	}

	if err := s.repo.ActionLog().Create(ctx, entry); err != nil {
		s.logger.Error("Failed to append action log entry", err, fields...)
		return
	}

	if err := s.sqsSvc.SendIndexMessage(ctx, entry); err != nil {
		s.logger.Warn("Failed to enqueue action log entry for indexing", append(fields, zap.Error(err))...)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, dto.FromActionLogEntry(entry)); err != nil {
			s.logger.Warn("Failed to publish action log entry", append(fields, zap.Error(err))...)
		}
	}
}

// List returns entries newest first. Brand admins only see their brand's entries.
func (s *ActionLogService) List(ctx context.Context, caller domain.Caller, query dto.ActionLogQuery) ([]dto.ActionLogResponse, error) {
	principal, err := requireAdmin(ctx, s.resolver, caller)
	if err != nil {
		return nil, err
	}

	filter := domain.ActionLogFilter{
		BrandID:    principal.ScopeBrand(),
		ActorEmail: domain.NormalizeEmail(query.ActorEmail),
		ActionType: domain.ActionType(query.ActionType),
		Since:      query.Since,
		Limit:      s.clampLimit(query.Limit),
	}

	// Use OpenSearch for filtered queries; fall back to PostgreSQL if the index is unavailable
	if filter.HasSearchCriteria() {
		entries, err := s.repo.OpenSearch().Search(ctx, filter)
		if err == nil {
			return dto.FromActionLogEntries(entries), nil
		}
		s.logger.Warn("Action log search failed, falling back to database", zap.Error(err))
	}

	entries, err := s.repo.ActionLog().List(ctx, filter)
	if err != nil {
		return nil, storeError(err, "action log not found")
	}
	return dto.FromActionLogEntries(entries), nil
}

// AuthorizeStream resolves the principal a live-stream subscriber acts as.
func (s *ActionLogService) AuthorizeStream(ctx context.Context, caller domain.Caller) (domain.Principal, error) {
	return requireAdmin(ctx, s.resolver, caller)
}

func (s *ActionLogService) clampLimit(limit int) int {
	if limit <= 0 {
		return s.defaultLimit
	}
	if limit > s.maxLimit {
		return s.maxLimit
	}
	return limit
}

// CanView reports whether the principal may see the entry on the live stream.
func CanView(principal domain.Principal, entry *dto.ActionLogResponse) bool {
	if !principal.IsAdmin {
		return false
	}
	if principal.IsGlobalAdmin() {
		return true
	}
	return entry.BrandID != "" && entry.BrandID == principal.BrandID
}
