package sched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type countingBackend struct {
	polled  int
	slept   []time.Duration
	pollHit bool
}

func (b *countingBackend) Poll() bool {
	b.polled++
	return b.pollHit
}
func (b *countingBackend) Sleep(d time.Duration) {
	b.slept = append(b.slept, d)
}

func TestWorkRunsInPriorityOrder(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	q := New(&countingBackend{pollHit: true}, clock.now)

	var order []string
	q.AddWork(Layout, func(interface{}) bool { order = append(order, "layout"); return true }, nil)
	q.AddWork(Redisplay, func(interface{}) bool { order = append(order, "redisplay"); return true }, nil)
	q.AddWork(Paint, func(interface{}) bool { order = append(order, "paint"); return true }, nil)

	q.Dispatch()
	assert.Equal(t, []string{"redisplay", "paint", "layout"}, order)
}

func TestWorkReturningFalseIsRemoved(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	q := New(&countingBackend{pollHit: true}, clock.now)

	calls := 0
	q.AddWork(Paint, func(interface{}) bool {
		calls++
		return false
	}, nil)

	q.Dispatch()
	q.Dispatch()
	assert.Equal(t, 1, calls)
}

func TestRemoveWorkDuringIterationIsSafe(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	q := New(&countingBackend{pollHit: true}, clock.now)

	var second *Work
	q.AddWork(Paint, func(interface{}) bool {
		q.RemoveWork(second)
		return true
	}, nil)
	ran := false
	second = q.AddWork(Paint, func(interface{}) bool {
		ran = true
		return true
	}, nil)

	assert.NotPanics(t, func() { q.Dispatch() })
	assert.False(t, ran, "node removed earlier in the same pass does not run in that pass")

	ran = false
	q.Dispatch()
	assert.False(t, ran, "removed node does not run on the next tick")
}

func TestTimeoutFiresAfterDeadline(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	q := New(&countingBackend{pollHit: true}, clock.now)

	fired := 0
	q.AddTimeout(10*time.Millisecond, At, func(interface{}) time.Duration {
		fired++
		return -1
	}, nil)

	q.Dispatch()
	assert.Equal(t, 0, fired, "not yet due")

	clock.advance(10 * time.Millisecond)
	q.Dispatch()
	assert.Equal(t, 1, fired)
}

func TestTimeoutReschedulesOnNonNegativeDelay(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	q := New(&countingBackend{pollHit: true}, clock.now)

	fired := 0
	q.AddTimeout(5*time.Millisecond, At, func(interface{}) time.Duration {
		fired++
		if fired < 3 {
			return 5 * time.Millisecond
		}
		return -1
	}, nil)

	for i := 0; i < 3; i++ {
		clock.advance(5 * time.Millisecond)
		q.Dispatch()
	}
	assert.Equal(t, 3, fired)

	clock.advance(5 * time.Millisecond)
	q.Dispatch()
	assert.Equal(t, 3, fired, "timeout removed itself after the third fire")
}

func TestCancelTimeoutPreventsFiring(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	q := New(&countingBackend{pollHit: true}, clock.now)

	fired := false
	to := q.AddTimeout(5*time.Millisecond, At, func(interface{}) time.Duration {
		fired = true
		return -1
	}, nil)
	q.CancelTimeout(to)

	clock.advance(10 * time.Millisecond)
	q.Dispatch()
	assert.False(t, fired)
}

// S5 — a backend that finds no host work to do gets told to sleep for
// exactly the delay until the next timeout.
func TestDispatchSleepsForNextTimeoutWhenPollIdle(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	backend := &countingBackend{pollHit: false}
	q := New(backend, clock.now)

	q.AddTimeout(25*time.Millisecond, At, func(interface{}) time.Duration { return -1 }, nil)
	q.Dispatch()

	assert.Len(t, backend.slept, 1)
	assert.Equal(t, 25*time.Millisecond, backend.slept[0])
}

func TestOrderBeforeRunsAheadOfSameDeadlineTimeout(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	q := New(&countingBackend{pollHit: true}, clock.now)

	var order []string
	q.AddTimeout(5*time.Millisecond, At, func(interface{}) time.Duration {
		order = append(order, "first")
		return -1
	}, nil)
	q.AddTimeout(5*time.Millisecond, Before, func(interface{}) time.Duration {
		order = append(order, "second-but-before")
		return -1
	}, nil)

	clock.advance(5 * time.Millisecond)
	q.Dispatch()
	assert.Equal(t, []string{"second-but-before", "first"}, order)
}
