// Package sync runs keyed background polls and feeds their results into
// the Bubble Tea runtime.
package sync

import (
	"context"
	gosync "sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/worklance/internal/logging"
)

// PollState represents the current state of a keyed poll.
type PollState int

const (
	PollIdle PollState = iota
	PollRunning
	PollError
)

// PollStatus holds the poll state for a single key.
type PollStatus struct {
	Key        string
	Generation uint64
	State      PollState
	LastPoll   time.Time
	Error      error
}

// FetchFunc performs one fetch. Its value is delivered in a ResultMsg.
type FetchFunc func(ctx context.Context) (any, error)

// ResultMsg is a tea.Msg sent when a fetch succeeds. Generation identifies
// the handle that produced it; use Poller.IsCurrent before applying it.
type ResultMsg struct {
	Key        string
	Generation uint64
	Value      any
}

// defaultInterval is used when Start is given a non-positive interval.
const defaultInterval = 10 * time.Second

// handle is one live repeating fetch.
type handle struct {
	gen       uint64
	interval  time.Duration
	fetch     FetchFunc
	stopCh    chan struct{}
	triggerCh chan struct{}
}

func (h *handle) stopped() bool {
	select {
	case <-h.stopCh:
		return true
	default:
		return false
	}
}

// Poller owns at most one live handle per key. Starting a key that is
// already live stops the previous handle first.
type Poller struct {
	ctx      context.Context
	cancel   context.CancelFunc
	log      logging.Logger
	handles  map[string]*handle
	statuses map[string]*PollStatus
	resultCh chan ResultMsg
	nextGen  uint64
	mu       gosync.Mutex
}

// New creates an idle Poller.
func New(log logging.Logger) *Poller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Poller{
		ctx:      ctx,
		cancel:   cancel,
		log:      log.With("component", "poller"),
		handles:  make(map[string]*handle),
		statuses: make(map[string]*PollStatus),
		resultCh: make(chan ResultMsg, 16),
	}
}

// Start fetches immediately and then every interval until Stop(key).
// It returns the generation of the new handle.
func (p *Poller) Start(key string, interval time.Duration, fetch FetchFunc) uint64 {
	if interval <= 0 {
		interval = defaultInterval
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked(key)

	p.nextGen++
	h := &handle{
		gen:       p.nextGen,
		interval:  interval,
		fetch:     fetch,
		stopCh:    make(chan struct{}),
		triggerCh: make(chan struct{}, 1),
	}
	p.handles[key] = h
	p.statuses[key] = &PollStatus{Key: key, Generation: h.gen, State: PollIdle}

	go p.run(key, h)

	p.log.Debug(p.ctx, "poll started", "key", key, "generation", h.gen, "interval", interval)
	return h.gen
}

// Stop cancels the schedule for key. Unknown keys are ignored. A fetch
// already in flight is not interrupted; its result is dropped.
func (p *Poller) Stop(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked(key)
}

func (p *Poller) stopLocked(key string) {
	h, ok := p.handles[key]
	if !ok {
		return
	}
	close(h.stopCh)
	delete(p.handles, key)
	delete(p.statuses, key)
	p.log.Debug(p.ctx, "poll stopped", "key", key, "generation", h.gen)
}

// StopAll stops every live handle.
func (p *Poller) StopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for key := range p.handles {
		p.stopLocked(key)
	}
}

// Close stops every handle and cancels the context passed to fetches.
func (p *Poller) Close() {
	p.StopAll()
	p.cancel()
}

// Refresh triggers an immediate fetch on the live handle for key.
// It is a no-op when key has no live handle.
func (p *Poller) Refresh(key string) {
	p.mu.Lock()
	h, ok := p.handles[key]
	p.mu.Unlock()
	if !ok {
		return
	}

	select {
	case h.triggerCh <- struct{}{}:
	default:
		// A refresh is already pending.
	}
}

// IsCurrent reports whether gen is the live handle for key.
func (p *Poller) IsCurrent(key string, gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	h, ok := p.handles[key]
	return ok && h.gen == gen
}

// Live reports whether key has a live handle.
func (p *Poller) Live(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	_, ok := p.handles[key]
	return ok
}

// Len returns the number of live handles.
func (p *Poller) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.handles)
}

// Status returns the poll status for key.
func (p *Poller) Status(key string) (PollStatus, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.statuses[key]
	if !ok {
		return PollStatus{}, false
	}
	return *s, true
}

// run is the polling loop for a single handle.
func (p *Poller) run(key string, h *handle) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	// Do an initial fetch immediately
	p.fetchAndSend(key, h)

	for {
		select {
		case <-h.stopCh:
			return
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.fetchAndSend(key, h)
		case <-h.triggerCh:
			p.fetchAndSend(key, h)
		}
	}
}

// fetchAndSend performs one fetch and delivers its value. Failures are
// logged and recorded in the status; they never end the loop.
func (p *Poller) fetchAndSend(key string, h *handle) {
	p.setStatus(key, h.gen, PollRunning, nil)

	value, err := h.fetch(p.ctx)
	if err != nil {
		p.setStatus(key, h.gen, PollError, err)
		if p.ctx.Err() == nil && !h.stopped() {
			p.log.Warn(p.ctx, "poll fetch failed", "key", key, "generation", h.gen, "error", err)
		}
		return
	}

	p.setStatus(key, h.gen, PollIdle, nil)

	if h.stopped() {
		p.log.Debug(p.ctx, "dropping result of stopped poll", "key", key, "generation", h.gen)
		return
	}

	select {
	case p.resultCh <- ResultMsg{Key: key, Generation: h.gen, Value: value}:
	case <-h.stopCh:
	case <-p.ctx.Done():
	}
}

// setStatus updates the status for key if gen is still its live handle.
func (p *Poller) setStatus(key string, gen uint64, state PollState, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	status, ok := p.statuses[key]
	if !ok || status.Generation != gen {
		return
	}

	status.State = state
	status.Error = err
	if state == PollIdle && err == nil {
		status.LastPoll = time.Now()
	}
}

// Results exposes the result channel for callers outside Bubble Tea.
func (p *Poller) Results() <-chan ResultMsg {
	return p.resultCh
}

// WaitForResult returns a tea.Cmd that waits for the next result from
// the result channel. Issue it again after handling each ResultMsg to
// keep listening.
func (p *Poller) WaitForResult() tea.Cmd {
	return func() tea.Msg {
		select {
		case result := <-p.resultCh:
			return result
		case <-p.ctx.Done():
			return nil
		}
	}
}
