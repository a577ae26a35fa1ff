// Package deadline computes the contract countdown shown on the detail
// screen. The tick itself runs on the poller under Key.
package deadline

import (
	"context"
	"fmt"
	"time"

	"github.com/nhle/worklance/internal/sync"
)

// Key is the poller key of the countdown tick.
const Key = "deadline"

// Display is one rendered countdown.
type Display struct {
	Text    string
	Overdue bool
}

// Compute renders the countdown for deadline as seen at now. A deadline
// that is exactly now counts as overdue.
func Compute(deadline, now time.Time) Display {
	remaining := deadline.Sub(now)
	if remaining > 0 {
		days := int(remaining / (24 * time.Hour))
		hours := int(remaining % (24 * time.Hour) / time.Hour)
		mins := int(remaining % time.Hour / time.Minute)
		return Display{Text: fmt.Sprintf("%dd %dh %dm remaining", days, hours, mins)}
	}

	days := int(-remaining / (24 * time.Hour))
	return Display{
		Text:    fmt.Sprintf("OVERDUE: %d days late (Trust Score Impact!)", days),
		Overdue: true,
	}
}

// Tick is the value delivered by the poller on each tick.
type Tick struct {
	ContractID string
	At         time.Time
}

// Timer is the countdown bound to one contract.
type Timer struct {
	contractID string
	deadline   time.Time
	current    Display
}

// NewTimer captures the deadline of the contract being opened.
func NewTimer(contractID string, deadline time.Time) *Timer {
	return &Timer{contractID: contractID, deadline: deadline}
}

func (t *Timer) ContractID() string {
	return t.contractID
}

func (t *Timer) Deadline() time.Time {
	return t.deadline
}

// Apply recomputes the display for a tick. Ticks for another contract are
// ignored.
func (t *Timer) Apply(tick Tick) bool {
	if tick.ContractID != t.contractID {
		return false
	}
	t.current = Compute(t.deadline, tick.At)
	return true
}

// Display returns the last computed countdown.
func (t *Timer) Display() Display {
	return t.current
}

// Fetcher returns the poll function that reads the clock for contractID.
func Fetcher(contractID string, now func() time.Time) sync.FetchFunc {
	if now == nil {
		now = time.Now
	}
	return func(context.Context) (any, error) {
		return Tick{ContractID: contractID, At: now()}, nil
	}
}
