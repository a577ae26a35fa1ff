// Package live holds the render state of the polled views: the contract
// chat and the notification tray. Fetchers run on poller goroutines;
// Apply runs on the UI goroutine.
package live

import (
	"context"
	"strings"
	"time"

	"github.com/nhle/worklance/internal/model"
	"github.com/nhle/worklance/internal/sync"
)

// ChatKey is the poller key of the open contract's chat.
const ChatKey = "chat"

// ChatSource fetches a contract's message history.
type ChatSource interface {
	Messages(ctx context.Context, contractID string) ([]model.ChatMessage, error)
}

// ChatBatch is one fetched chat history.
type ChatBatch struct {
	ContractID string
	Messages   []model.ChatMessage
}

// ChatFetcher returns the poll function for one contract's chat.
func ChatFetcher(src ChatSource, contractID string) sync.FetchFunc {
	return func(ctx context.Context) (any, error) {
		msgs, err := src.Messages(ctx, contractID)
		if err != nil {
			return nil, err
		}
		return ChatBatch{ContractID: contractID, Messages: msgs}, nil
	}
}

// ChatLine is a rendered message.
type ChatLine struct {
	Mine   bool
	Sender string
	Text   string
	At     time.Time
}

// Chat is the rendered chat of one contract.
//
// Re-rendering is skipped when a fetch returns as many messages as are
// already shown. An edited message with an unchanged count is therefore
// not picked up until the next message arrives.
type Chat struct {
	contractID string
	selfID     string
	lines      []ChatLine
	renders    int
}

func NewChat(contractID, selfID string) *Chat {
	return &Chat{contractID: contractID, selfID: selfID}
}

func (c *Chat) ContractID() string {
	return c.contractID
}

// Apply renders the batch and reports whether the lines changed. Batches
// for another contract are ignored.
func (c *Chat) Apply(b ChatBatch) bool {
	if b.ContractID != c.contractID {
		return false
	}
	if len(b.Messages) == len(c.lines) {
		return false
	}

	lines := make([]ChatLine, 0, len(b.Messages))
	for _, m := range b.Messages {
		lines = append(lines, ChatLine{
			Mine:   m.SenderID == c.selfID,
			Sender: m.SenderID,
			Text:   m.Text,
			At:     m.Timestamp.Time,
		})
	}
	c.lines = lines
	c.renders++
	return true
}

// Lines returns the rendered messages, oldest first.
func (c *Chat) Lines() []ChatLine {
	return c.lines
}

// Rendered returns the number of messages currently shown.
func (c *Chat) Rendered() int {
	return len(c.lines)
}

// Renders counts how many times Apply re-rendered.
func (c *Chat) Renders() int {
	return c.renders
}

// Outgoing trims a message typed by the user. ok is false for blank input,
// which must not be sent.
func Outgoing(text string) (msg string, ok bool) {
	msg = strings.TrimSpace(text)
	return msg, msg != ""
}
