package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/identity"
	"github.com/vestalumina/vls-api/internal/mocks"
	"github.com/vestalumina/vls-api/pkg/logger"
)

var jobNow = time.Date(2025, 7, 18, 6, 0, 0, 0, time.UTC)

func mockClockAt(t time.Time) *clock.Mock {
	c := clock.NewMock()
	c.Set(t)
	return c
}

func TestActionLogRetentionJob_PrunesBeforeCutoff(t *testing.T) {
	// Arrange
	actionLogs := new(mocks.ActionLogRepository)
	actionLogs.On("DeleteBefore", mock.Anything, jobNow.Add(-90*24*time.Hour)).Return(int64(12), nil)
	job := NewActionLogRetentionJob(actionLogs, 90*24*time.Hour, mockClockAt(jobNow), logger.NewNop())

	// Act
	err := job.Run(context.Background())

	// Assert
	require.NoError(t, err)
	actionLogs.AssertExpectations(t)
}

func TestBrandStatsJob_RecomputesAll(t *testing.T) {
	stats := new(mocks.BrandStatsRecomputer)
	stats.On("RecomputeAll", mock.Anything).Return(nil)

	require.NoError(t, NewBrandStatsJob(stats).Run(context.Background()))
	stats.AssertExpectations(t)
}

type reminderFixture struct {
	repo          *mocks.PostgresRepository
	tenants       *mocks.TenantRepository
	notifications *mocks.NotificationRepository
	notifier      *mocks.TenantNotifier
}

func newReminderFixture() *reminderFixture {
	f := &reminderFixture{
		repo:          new(mocks.PostgresRepository),
		tenants:       new(mocks.TenantRepository),
		notifications: new(mocks.NotificationRepository),
		notifier:      new(mocks.TenantNotifier),
	}
	f.repo.On("Tenant").Return(f.tenants)
	f.repo.On("Notification").Return(f.notifications)
	return f
}

func TestReminderJob_SkipsRecentlyRemindedAndRespectsBatch(t *testing.T) {
	// Arrange
	f := newReminderFixture()
	after := 3 * 24 * time.Hour
	threshold := jobNow.Add(-after)
	f.tenants.On("List", mock.Anything, domain.TenantFilter{
		Status:        domain.TenantStatusPending,
		CreatedBefore: threshold,
	}).Return([]domain.Tenant{{ID: "AAAAAAAA"}, {ID: "BBBBBBBB"}, {ID: "CCCCCCCC"}, {ID: "DDDDDDDD"}}, nil)
	f.notifications.On("SentSince", mock.Anything, "AAAAAAAA", domain.NotificationReminder, threshold).Return(true, nil)
	f.notifications.On("SentSince", mock.Anything, mock.Anything, domain.NotificationReminder, threshold).Return(false, nil)
	f.notifier.On("SendReminder", mock.Anything, mock.MatchedBy(func(t *domain.Tenant) bool { return t.ID == "BBBBBBBB" })).Return(true)
	f.notifier.On("SendReminder", mock.Anything, mock.MatchedBy(func(t *domain.Tenant) bool { return t.ID == "CCCCCCCC" })).Return(false)

	job := NewReminderJob(f.repo, f.notifier, after, 0, 2, mockClockAt(jobNow), logger.NewNop())

	// Act
	err := job.Run(context.Background())

	// Assert
	require.NoError(t, err)
	f.notifier.AssertNumberOfCalls(t, "SendReminder", 2)
}

func TestReminderJob_LookupFailureIsReportedButScanContinues(t *testing.T) {
	// Arrange
	f := newReminderFixture()
	f.tenants.On("List", mock.Anything, mock.Anything).Return([]domain.Tenant{{ID: "AAAAAAAA"}, {ID: "BBBBBBBB"}}, nil)
	f.notifications.On("SentSince", mock.Anything, "AAAAAAAA", mock.Anything, mock.Anything).Return(false, errors.New("timeout"))
	f.notifications.On("SentSince", mock.Anything, "BBBBBBBB", mock.Anything, mock.Anything).Return(false, nil)
	f.notifier.On("SendReminder", mock.Anything, mock.Anything).Return(true)

	job := NewReminderJob(f.repo, f.notifier, time.Hour, 0, 0, mockClockAt(jobNow), logger.NewNop())

	// Act
	err := job.Run(context.Background())

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tenant AAAAAAAA")
	f.notifier.AssertNumberOfCalls(t, "SendReminder", 1)
}

func TestReconcileJob_RemovesOrphansAndReportsDangling(t *testing.T) {
	// Arrange
	repo := new(mocks.PostgresRepository)
	identities := new(mocks.IdentityRepository)
	tenants := new(mocks.TenantRepository)
	provider := new(mocks.IdentityProvider)
	repo.On("Identity").Return(identities)
	repo.On("Tenant").Return(tenants)

	grace := time.Hour
	identities.On("ListUnreferenced", mock.Anything,
		[]string{domain.IdentityOriginTenant, domain.IdentityOriginDevice}, jobNow.Add(-grace)).
		Return([]domain.Identity{{UID: "orphan-1"}, {UID: "orphan-2"}, {UID: "orphan-3"}}, nil)
	provider.On("Delete", mock.Anything, "orphan-1").Return(nil)
	provider.On("Delete", mock.Anything, "orphan-2").Return(identity.ErrIdentityNotFound)
	provider.On("Delete", mock.Anything, "orphan-3").Return(errors.New("connection reset"))
	tenants.On("ListMissingIdentity", mock.Anything).Return([]domain.Tenant{{ID: "K7M3PQ2X", IdentityRef: "gone"}}, nil)

	job := NewReconcileJob(repo, provider, grace, mockClockAt(jobNow), logger.NewNop())

	// Act
	err := job.Run(context.Background())

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orphan-3")
	assert.NotContains(t, err.Error(), "orphan-2")
	provider.AssertExpectations(t)
	tenants.AssertExpectations(t)
}
