package notification

import "time"

// CreateNotificationRequest represents the request body for creating a notification
type CreateNotificationRequest struct {
	User    string `json:"user" validate:"max=100"`
	Message string `json:"message" validate:"required,min=1,max=2000"`
	Type    string `json:"type" validate:"max=50"`
}

// NotificationResponse represents the response for a single notification
type NotificationResponse struct {
	ID        string `json:"id"`
	User      string `json:"user"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts a Notification model to a NotificationResponse DTO
func (n *Notification) ToResponse() *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		User:      n.User,
		Message:   n.Message,
		Type:      n.Type,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
}
