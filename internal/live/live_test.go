package live

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/worklance/internal/model"
)

func messages(senders ...string) []model.ChatMessage {
	out := make([]model.ChatMessage, 0, len(senders))
	for _, s := range senders {
		out = append(out, model.ChatMessage{ContractID: "c1", SenderID: s, Text: "hi from " + s})
	}
	return out
}

func TestChatRenderSkipSameCount(t *testing.T) {
	c := NewChat("c1", "u1")

	require.True(t, c.Apply(ChatBatch{ContractID: "c1", Messages: messages("u1", "u2")}))
	assert.Equal(t, 1, c.Renders())

	// Same length, different content: skipped.
	changed := messages("u2", "u2")
	assert.False(t, c.Apply(ChatBatch{ContractID: "c1", Messages: changed}))
	assert.Equal(t, 1, c.Renders())
	assert.True(t, c.Lines()[0].Mine)

	assert.True(t, c.Apply(ChatBatch{ContractID: "c1", Messages: messages("u1", "u2", "u1")}))
	assert.Equal(t, 2, c.Renders())
	assert.Equal(t, 3, c.Rendered())
}

func TestChatClassifiesMineAndTheirs(t *testing.T) {
	c := NewChat("c1", "u1")
	c.Apply(ChatBatch{ContractID: "c1", Messages: messages("u1", "u2")})

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.True(t, lines[0].Mine)
	assert.False(t, lines[1].Mine)
	assert.Equal(t, "hi from u2", lines[1].Text)
}

func TestChatIgnoresOtherContract(t *testing.T) {
	c := NewChat("c1", "u1")
	assert.False(t, c.Apply(ChatBatch{ContractID: "c2", Messages: messages("u1")}))
	assert.Equal(t, 0, c.Rendered())
}

func TestChatEmptyHistoryIsNotARender(t *testing.T) {
	c := NewChat("c1", "u1")
	assert.False(t, c.Apply(ChatBatch{ContractID: "c1"}))
	assert.Equal(t, 0, c.Renders())
}

func TestOutgoing(t *testing.T) {
	_, ok := Outgoing("   \n\t")
	assert.False(t, ok)

	msg, ok := Outgoing("  done, please review  ")
	assert.True(t, ok)
	assert.Equal(t, "done, please review", msg)
}

type fakeChat struct {
	msgs []model.ChatMessage
	err  error
}

func (f fakeChat) Messages(_ context.Context, contractID string) ([]model.ChatMessage, error) {
	return f.msgs, f.err
}

func TestChatFetcher(t *testing.T) {
	v, err := ChatFetcher(fakeChat{msgs: messages("u1")}, "c1")(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ChatBatch{ContractID: "c1", Messages: messages("u1")}, v)

	_, err = ChatFetcher(fakeChat{err: errors.New("down")}, "c1")(context.Background())
	assert.Error(t, err)
}

func TestTrayUnreadAndOrder(t *testing.T) {
	tray := NewTray("u1")
	tray.Apply(NotificationBatch{UserID: "u1", Items: []model.Notification{
		{ID: "n1", Read: true},
		{ID: "n2"},
		{ID: "n3"},
	}})

	assert.Equal(t, 2, tray.Unread())
	assert.True(t, tray.BadgeVisible())

	items := tray.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "n3", items[0].ID)
	assert.Equal(t, "n1", items[2].ID)

	tray.MarkRead("n3")
	tray.MarkRead("n3")
	assert.Equal(t, 1, tray.Unread())
}

func TestTrayBadgeHiddenAtZero(t *testing.T) {
	tray := NewTray("u1")
	assert.False(t, tray.BadgeVisible())

	tray.Apply(NotificationBatch{UserID: "u1", Items: []model.Notification{{ID: "n1", Read: true}}})
	assert.Equal(t, 0, tray.Unread())
	assert.False(t, tray.BadgeVisible())

	tray.Apply(NotificationBatch{UserID: "u2", Items: []model.Notification{{ID: "x"}}})
	assert.Equal(t, 0, tray.Unread())
}

func TestTarget(t *testing.T) {
	tests := []struct {
		name string
		n    model.Notification
		want Destination
	}{
		{"message", model.Notification{Type: model.NotificationMessage, Link: "c1"}, Destination{DestinationContract, "c1"}},
		{"deadline", model.Notification{Type: model.NotificationDeadline, Link: "c2"}, Destination{DestinationContract, "c2"}},
		{"proposal job", model.Notification{Type: model.NotificationProposal, Link: "job_42"}, Destination{DestinationJob, "42"}},
		{"proposal job prefix once", model.Notification{Type: model.NotificationProposal, Link: "job_job_7"}, Destination{DestinationJob, "job_7"}},
		{"proposal contract", model.Notification{Type: model.NotificationProposal, Link: "c3"}, Destination{DestinationContract, "c3"}},
		{"no link", model.Notification{Type: model.NotificationMessage}, Destination{}},
		{"unknown type", model.Notification{Type: "system", Link: "c1"}, Destination{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Target(tt.n))
		})
	}
}
