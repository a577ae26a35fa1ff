package live

import (
	"context"
	"strings"

	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/sync"
)

// NotificationsKey is the poller key of the session's notification feed.
const NotificationsKey = "notifications"

// jobLinkPrefix marks proposal links that point at a job rather than a contract.
const jobLinkPrefix = "job_"

// NotificationSource fetches a user's notifications.
type NotificationSource interface {
	Notifications(ctx context.Context, userID string) ([]model.Notification, error)
}

// NotificationBatch is one fetched notification list, in server order.
type NotificationBatch struct {
	UserID string
	Items  []model.Notification
}

// NotificationsFetcher returns the poll function for a user's notifications.
func NotificationsFetcher(src NotificationSource, userID string) sync.FetchFunc {
	return func(ctx context.Context) (any, error) {
		items, err := src.Notifications(ctx, userID)
		if err != nil {
			return nil, err
		}
		return NotificationBatch{UserID: userID, Items: items}, nil
	}
}

// Tray is the rendered notification list and unread badge.
type Tray struct {
	userID string
	items  []model.Notification
	unread int
}

func NewTray(userID string) *Tray {
	return &Tray{userID: userID}
}

func (t *Tray) UserID() string {
	return t.userID
}

// Apply replaces the list with the batch, newest first. Batches for
// another user are ignored.
func (t *Tray) Apply(b NotificationBatch) {
	if b.UserID != t.userID {
		return
	}

	items := make([]model.Notification, len(b.Items))
	unread := 0
	for i, n := range b.Items {
		items[len(b.Items)-1-i] = n
		if !n.Read {
			unread++
		}
	}
	t.items = items
	t.unread = unread
}

// Items returns the notifications, newest first.
func (t *Tray) Items() []model.Notification {
	return t.items
}

// Unread returns the number of unread notifications.
func (t *Tray) Unread() int {
	return t.unread
}

// BadgeVisible reports whether the unread badge is shown.
func (t *Tray) BadgeVisible() bool {
	return t.unread > 0
}

// MarkRead flips the read flag locally until the next fetch confirms it.
func (t *Tray) MarkRead(id string) {
	for i := range t.items {
		if t.items[i].ID == id && !t.items[i].Read {
			t.items[i].Read = true
			t.unread--
			return
		}
	}
}

// DestinationKind is the screen a notification navigates to.
type DestinationKind int

const (
	DestinationNone DestinationKind = iota
	DestinationContract
	DestinationJob
)

// Destination is a notification's navigation target.
type Destination struct {
	Kind DestinationKind
	ID   string
}

// Target maps a notification to where clicking it should navigate.
// Message and deadline notifications open the linked contract. Proposal
// notifications open a job when the link is job-shaped, else a contract.
func Target(n model.Notification) Destination {
	if n.Link == "" {
		return Destination{}
	}

	switch n.Type {
	case model.NotificationMessage, model.NotificationDeadline:
		return Destination{Kind: DestinationContract, ID: n.Link}
	case model.NotificationProposal:
		if strings.HasPrefix(n.Link, jobLinkPrefix) {
			return Destination{Kind: DestinationJob, ID: strings.TrimPrefix(n.Link, jobLinkPrefix)}
		}
		return Destination{Kind: DestinationContract, ID: n.Link}
	default:
		return Destination{}
	}
}
