package model

// NotificationType tells the client where a notification's link points.
type NotificationType string

const (
	NotificationMessage  NotificationType = "message"
	NotificationDeadline NotificationType = "deadline"
	NotificationProposal NotificationType = "proposal"
)

// Notification represents an alert surfaced to the user about activity on
// one of their jobs or contracts.
type Notification struct {
	// ID is the unique identifier for this notification.
	ID string `json:"id"`

	// UserID is the recipient.
	UserID string `json:"user_id"`

	Title   string `json:"title"`
	Message string `json:"message"`

	// Type and Link together describe the navigation target, if any.
	Type NotificationType `json:"type"`
	Link string           `json:"link,omitempty"`

	// Read indicates whether the user has seen this notification.
	Read bool `json:"read"`

	// CreatedAt is when this notification was generated.
	CreatedAt Timestamp `json:"created_at"`
}
