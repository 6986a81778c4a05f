package stream

// SharedExclusiveChecker detects concurrent shared+exclusive access on a
// single stream instance, e.g. ReadAt racing a sequential Read. It is a
// debug aid compiled to a no-op unless the "iodebug" build tag is set;
// the mutexes held by stream implementations remain the primary
// concurrency mechanism.
type SharedExclusiveChecker struct {
	state guardState
}

// LockShared records the start of a shared (positioned) operation.
func (c *SharedExclusiveChecker) LockShared() { c.state.lockShared() }

// UnlockShared records the end of a shared operation.
func (c *SharedExclusiveChecker) UnlockShared() { c.state.unlockShared() }

// LockExclusive records the start of an exclusive (cursor-mutating)
// operation.
func (c *SharedExclusiveChecker) LockExclusive() { c.state.lockExclusive() }

// UnlockExclusive records the end of an exclusive operation.
func (c *SharedExclusiveChecker) UnlockExclusive() { c.state.unlockExclusive() }
