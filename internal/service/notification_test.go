package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/mocks"
	"github.com/vestalumina/vls-api/pkg/logger"
)

type NotificationServiceTestSuite struct {
	suite.Suite
	mockRepo         *mocks.Repository
	mockNotification *mocks.NotificationRepository
	mockNotifier     *mocks.Notifier
	service          *NotificationService
	tenant           *domain.Tenant
}

func (s *NotificationServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockNotification = new(mocks.NotificationRepository)
	s.mockNotifier = new(mocks.Notifier)
	s.mockRepo.On("Notification").Return(s.mockNotification)

	s.service = NewNotificationService(s.mockRepo, s.mockNotifier, logger.NewNop())
	s.tenant = &domain.Tenant{ID: "K7M3PQ2X", Email: "owner@example.com", DisplayName: "Villa Owner"}
}

func TestNotificationService(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}

func (s *NotificationServiceTestSuite) TestSendWelcome_NeverContainsPassword() {
	// Arrange
	ctx := context.Background()
	s.mockNotifier.On("Send", ctx, "owner@example.com", welcomeSubject, mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "K7M3PQ2X") && !strings.Contains(strings.ToLower(body), "password:")
	})).Return(nil)
	s.mockNotification.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Kind == domain.NotificationWelcome && n.Status == domain.NotificationSent
	})).Return(nil)

	// Act
	sent := s.service.SendWelcome(ctx, s.tenant)

	// Assert
	s.True(sent)
	s.mockNotifier.AssertExpectations(s.T())
	s.mockNotification.AssertExpectations(s.T())
}

func (s *NotificationServiceTestSuite) TestSendReminder_FailureIsRecorded() {
	// Arrange
	ctx := context.Background()
	s.mockNotifier.On("Send", ctx, "owner@example.com", reminderSubject, mock.Anything).Return(errors.New("smtp 421"))
	s.mockNotification.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Kind == domain.NotificationReminder && n.Status == domain.NotificationFailed && n.Error == "smtp 421"
	})).Return(nil)

	// Act
	sent := s.service.SendReminder(ctx, s.tenant)

	// Assert
	s.False(sent)
	s.mockNotification.AssertExpectations(s.T())
}

func (s *NotificationServiceTestSuite) TestSend_RecordFailureDoesNotChangeOutcome() {
	// Arrange
	ctx := context.Background()
	s.mockNotifier.On("Send", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	s.mockNotification.On("Create", ctx, mock.Anything).Return(errors.New("db down"))

	// Act
	sent := s.service.SendWelcome(ctx, s.tenant)

	// Assert
	s.True(sent)
}
