package sync

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/worklance/internal/logging"
)

func newTestPoller(t *testing.T) *Poller {
	t.Helper()
	p := New(logging.Nop())
	t.Cleanup(p.Close)
	return p
}

func nextResult(t *testing.T, p *Poller) ResultMsg {
	t.Helper()
	select {
	case r := <-p.Results():
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for poll result")
		return ResultMsg{}
	}
}

func constant(v any) FetchFunc {
	return func(context.Context) (any, error) { return v, nil }
}

func TestStartFetchesImmediately(t *testing.T) {
	p := newTestPoller(t)

	gen := p.Start("chat", time.Hour, constant("hello"))

	r := nextResult(t, p)
	assert.Equal(t, "chat", r.Key)
	assert.Equal(t, gen, r.Generation)
	assert.Equal(t, "hello", r.Value)
	assert.True(t, p.IsCurrent("chat", gen))
}

func TestStartTwiceLeavesOneHandle(t *testing.T) {
	p := newTestPoller(t)

	first := p.Start("chat", time.Hour, constant(1))
	second := p.Start("chat", time.Hour, constant(2))

	assert.Equal(t, 1, p.Len())
	assert.NotEqual(t, first, second)
	assert.False(t, p.IsCurrent("chat", first))
	assert.True(t, p.IsCurrent("chat", second))
}

func TestStopUnknownKeyIsNoop(t *testing.T) {
	p := newTestPoller(t)

	assert.NotPanics(t, func() {
		p.Stop("chat")
		p.Stop("chat")
		p.Refresh("chat")
	})
	assert.Equal(t, 0, p.Len())
}

func TestStopIsIdempotent(t *testing.T) {
	p := newTestPoller(t)
	gen := p.Start("deadline", time.Hour, constant(nil))

	p.Stop("deadline")
	p.Stop("deadline")

	assert.False(t, p.Live("deadline"))
	assert.False(t, p.IsCurrent("deadline", gen))
}

func TestRefreshFetchesAgain(t *testing.T) {
	p := newTestPoller(t)
	var calls atomic.Int32
	p.Start("chat", time.Hour, func(context.Context) (any, error) {
		return calls.Add(1), nil
	})

	assert.Equal(t, int32(1), nextResult(t, p).Value)
	p.Refresh("chat")
	assert.Equal(t, int32(2), nextResult(t, p).Value)
}

func TestFetchErrorKeepsSchedule(t *testing.T) {
	p := newTestPoller(t)
	var calls atomic.Int32
	p.Start("notifications", 10*time.Millisecond, func(context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("connection refused")
		}
		return "ok", nil
	})

	r := nextResult(t, p)
	assert.Equal(t, "ok", r.Value)
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestStoppedHandleResultIsDropped(t *testing.T) {
	p := newTestPoller(t)
	release := make(chan struct{})
	started := make(chan struct{})

	p.Start("chat", time.Hour, func(context.Context) (any, error) {
		close(started)
		<-release
		return "stale", nil
	})
	<-started

	p.Stop("chat")
	gen := p.Start("chat", time.Hour, constant("fresh"))
	close(release)

	r := nextResult(t, p)
	assert.Equal(t, "fresh", r.Value)
	assert.Equal(t, gen, r.Generation)

	select {
	case extra := <-p.Results():
		t.Fatalf("unexpected result from stopped handle: %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestStatusTracksErrors(t *testing.T) {
	p := newTestPoller(t)
	boom := errors.New("boom")
	done := make(chan struct{})
	p.Start("chat", time.Hour, func(context.Context) (any, error) {
		defer close(done)
		return nil, boom
	})
	<-done

	require.Eventually(t, func() bool {
		s, ok := p.Status("chat")
		return ok && s.State == PollError
	}, time.Second, 5*time.Millisecond)

	s, _ := p.Status("chat")
	assert.ErrorIs(t, s.Error, boom)
}

func TestStopAll(t *testing.T) {
	p := newTestPoller(t)
	p.Start("chat", time.Hour, constant(nil))
	p.Start("deadline", time.Hour, constant(nil))
	p.Start("notifications", time.Hour, constant(nil))

	p.StopAll()
	assert.Equal(t, 0, p.Len())
}

func TestWaitForResultCmd(t *testing.T) {
	p := newTestPoller(t)
	gen := p.Start("deadline", time.Hour, constant(42))

	msg := p.WaitForResult()()
	r, ok := msg.(ResultMsg)
	require.True(t, ok)
	assert.Equal(t, gen, r.Generation)
	assert.Equal(t, 42, r.Value)
}
