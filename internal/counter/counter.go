// Package counter implements the small tick-counting primitives the line
// state machine uses for dispatch cadence: a one-shot threshold counter and
// a cyclic variant that re-arms itself once it fires.
package counter

// Counter fires once its target tick count is reached, then stays fired
// until Reset is called.
type Counter struct {
	target  int
	current int
}

// New returns a Counter that fires after target calls to Step.
func New(target int) Counter {
	return Counter{target: target}
}

// Step reports whether the counter had already reached its target before
// this call; if not, it advances the counter by one tick. The first true
// therefore comes on call target+1, and subsequent calls keep returning true
// until Reset.
func (c *Counter) Step() bool {
	if c.IsDone() {
		return true
	}
	c.current++
	return false
}

// IsDone reports whether the counter has reached its target, without
// mutating it.
func (c Counter) IsDone() bool {
	return c.current >= c.target
}

// Current reports how many ticks the counter has recorded so far.
func (c Counter) Current() int {
	return c.current
}

// Reset returns the counter to its initial state.
func (c *Counter) Reset() {
	c.current = 0
}

// CyclicCounter fires once every target+1 ticks (target silent ticks, then
// the firing one), then immediately rearms.
type CyclicCounter struct {
	inner Counter
}

// NewCyclic returns a CyclicCounter that fires on every (target+1)-th call to
// Count.
func NewCyclic(target int) CyclicCounter {
	return CyclicCounter{inner: New(target)}
}

// Count advances the cycle by one tick, reporting true exactly on the tick
// that completes the cycle, and rearming immediately after.
func (c *CyclicCounter) Count() bool {
	fired := c.inner.Step()
	if fired {
		c.inner.Reset()
	}
	return fired
}

// IsDone reports whether the current cycle has completed, without mutating
// the counter.
func (c CyclicCounter) IsDone() bool {
	return c.inner.IsDone()
}
