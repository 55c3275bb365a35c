package sched

import "time"

// Backend lets a host integrate its own I/O wait with the scheduler.
// Poll should perform one non-blocking check for host events (and
// dispatch any it finds) and report whether it did any work; Sleep is
// called with the wall-clock duration until the next timeout when Poll
// reports nothing to do.
type Backend interface {
	Poll() bool
	Sleep(d time.Duration)
}

// Queue is the scheduler: a work queue plus a timeout heap, driven by
// Dispatch in a single-threaded cooperative loop (spec §4.8). There is
// no preemption; suspension happens only inside Backend.Sleep.
type Queue struct {
	work     workQueue
	timeouts timeoutQueue
	backend  Backend
	now      func() time.Time
}

// New creates a Queue driven by backend. now defaults to time.Now if
// nil, overridable for deterministic tests.
func New(backend Backend, now func() time.Time) *Queue {
	if now == nil {
		now = time.Now
	}
	return &Queue{backend: backend, now: now}
}

// AddWork enqueues proc at priority, to run on every Dispatch tick
// until it returns false or is removed via RemoveWork.
func (q *Queue) AddWork(priority Priority, proc WorkProc, closure interface{}) *Work {
	return q.work.add(priority, proc, closure)
}

// RemoveWork cancels a previously queued work proc.
func (q *Queue) RemoveWork(n *Work) {
	q.work.remove(n)
}

// AddTimeout schedules proc to run after delay, at the given insertion
// Order among ties.
func (q *Queue) AddTimeout(delay time.Duration, order Order, proc TimeoutProc, closure interface{}) *Timeout {
	return q.timeouts.add(q.now(), delay, order, proc, closure)
}

// CancelTimeout removes a previously scheduled timeout.
func (q *Queue) CancelTimeout(t *Timeout) {
	q.timeouts.cancel(t)
}

// Dispatch runs one tick of the scheduler: due timeouts, then work
// procs in priority order, then polls the backend and sleeps until the
// next timeout if the backend found nothing to do.
func (q *Queue) Dispatch() {
	now := q.now()
	q.timeouts.runDue(now)
	q.work.runAll()

	if q.backend == nil {
		return
	}
	if q.backend.Poll() {
		return
	}
	if deadline, ok := q.timeouts.nextDeadline(); ok {
		d := deadline.Sub(q.now())
		if d < 0 {
			d = 0
		}
		q.backend.Sleep(d)
	}
}
