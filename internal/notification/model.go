package notification

import (
	"time"

	"github.com/google/uuid"
)

// TypeDefault is assigned when a notification is created without a category
const TypeDefault = "info"

// Notification represents a notification in the system. Instances are built
// with NewNotification and mutated only through MarkAsRead, which keeps the
// read state monotonic.
type Notification struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNotification constructs an unread notification with a fresh ID and the
// current UTC timestamp. An empty type falls back to TypeDefault.
func NewNotification(user, message, ntype string) *Notification {
	if ntype == "" {
		ntype = TypeDefault
	}
	return &Notification{
		ID:        uuid.New().String(),
		User:      user,
		Message:   message,
		Type:      ntype,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}
}

// MarkAsRead transitions the notification to read. Calling it on an
// already-read notification is a no-op.
func (n *Notification) MarkAsRead() {
	n.Read = true
}
