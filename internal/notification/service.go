package notification

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Curadi/SPNotification/internal/broadcast"
)

// Common errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrEmptyMessage         = errors.New("message must not be empty")
)

// Service handles notification business logic
type Service struct {
	repo        Repository
	broadcaster *broadcast.Broadcaster
	logger      *logrus.Logger
}

// NewService creates a new notification service with its dependencies injected.
// The broadcaster may be nil, in which case created notifications are not
// pushed to live subscribers.
func NewService(repo Repository, broadcaster *broadcast.Broadcaster, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{repo: repo, broadcaster: broadcaster, logger: logger}
}

// Create builds a new unread notification, persists it, and pushes it to live
// subscribers. The push is fire-and-forget: a broadcast failure is logged but
// never fails the create.
func (s *Service) Create(ctx context.Context, req *CreateNotificationRequest) (*Notification, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, ErrEmptyMessage
	}

	n := NewNotification(req.User, req.Message, req.Type)
	if err := s.repo.Add(ctx, n); err != nil {
		return nil, err
	}

	s.publish(n)

	return n, nil
}

// publish hands the notification to the broadcaster on a separate goroutine so
// a misbehaving subscriber path cannot block or fail the HTTP response
func (s *Service) publish(n *Notification) {
	if s.broadcaster == nil {
		return
	}

	ev := broadcast.Event{
		ID:        n.ID,
		User:      n.User,
		Message:   n.Message,
		Type:      n.Type,
		CreatedAt: n.CreatedAt,
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.WithField("notification_id", ev.ID).
					Errorf("notification broadcast panicked: %v", r)
			}
		}()
		s.broadcaster.Broadcast(ev)
	}()
}

// List retrieves one page of notifications matching the query, mapped to
// response DTOs, together with the total count of matching rows
func (s *Service) List(ctx context.Context, query Query) ([]*NotificationResponse, int, error) {
	notifications, total, err := s.repo.GetPaged(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	items := make([]*NotificationResponse, len(notifications))
	for i, n := range notifications {
		items[i] = n.ToResponse()
	}

	return items, total, nil
}

// MarkAsRead transitions a notification to read and persists it. Marking an
// already-read notification succeeds without changing anything, so concurrent
// calls for the same id are safe even without a version token.
func (s *Service) MarkAsRead(ctx context.Context, id string) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return ErrNotificationNotFound
	}

	n.MarkAsRead()

	return s.repo.Update(ctx, n)
}
