package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/repository"
	"github.com/vestalumina/vls-api/pkg/logger"
)

//go:generate mockery --name Notifier --output ../mocks
type Notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

//go:generate mockery --name TenantNotifier --output ../mocks
type TenantNotifier interface {
	SendWelcome(ctx context.Context, tenant *domain.Tenant) bool
	SendReminder(ctx context.Context, tenant *domain.Tenant) bool
}

const (
	welcomeSubject  = "Welcome to Vesta Lumina"
	reminderSubject = "Your Vesta Lumina account is waiting"
)

// NotificationService sends tenant emails and records every attempt.
type NotificationService struct {
	repo     repository.Repository
	notifier Notifier
	logger   *logger.Logger
	now      func() time.Time
}

func NewNotificationService(repo repository.Repository, notifier Notifier, logger *logger.Logger) *NotificationService {
	return &NotificationService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// SendWelcome announces the tenant id. The temporary password is never emailed.
func (s *NotificationService) SendWelcome(ctx context.Context, tenant *domain.Tenant) bool {
	body := fmt.Sprintf(
		"Hello %s,\n\nAn owner account has been created for you.\n\nTenant ID: %s\n\n"+
			"Your administrator will share your temporary password separately. "+
			"Sign in to the Vesta Lumina app and enter your Tenant ID to activate the account.\n",
		tenant.DisplayName, tenant.ID,
	)
	return s.deliver(ctx, domain.NotificationWelcome, tenant, welcomeSubject, body)
}

func (s *NotificationService) SendReminder(ctx context.Context, tenant *domain.Tenant) bool {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour Vesta Lumina account (Tenant ID: %s) has not been activated yet.\n\n"+
			"Sign in to the app and enter your Tenant ID to finish setup.\n",
		tenant.DisplayName, tenant.ID,
	)
	return s.deliver(ctx, domain.NotificationReminder, tenant, reminderSubject, body)
}

func (s *NotificationService) deliver(ctx context.Context, kind domain.NotificationKind, tenant *domain.Tenant, subject, body string) bool {
	record := &domain.Notification{
		ID:        uuid.New().String(),
		Kind:      kind,
		TenantID:  tenant.ID,
		Recipient: tenant.Email,
		Subject:   subject,
		Status:    domain.NotificationSent,
		CreatedAt: s.now().UTC(),
	}

	if err := s.notifier.Send(ctx, tenant.Email, subject, body); err != nil {
		record.Status = domain.NotificationFailed
		record.Error = err.Error()
		s.logger.Warn("Failed to send notification",
			zap.String("kind", string(kind)),
			zap.String("tenant_id", tenant.ID),
			zap.Error(err),
		)
	}

	if err := s.repo.Notification().Create(ctx, record); err != nil {
		s.logger.Error("Failed to record notification", err,
			zap.String("kind", string(kind)),
			zap.String("tenant_id", tenant.ID),
		)
	}

	return record.Status == domain.NotificationSent
}
