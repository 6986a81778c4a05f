//go:build !iodebug

package stream

// DebugChecks reports whether debug-mode safety checks are compiled in.
const DebugChecks = false

type guardState struct{}

func (guardState) lockShared()      {}
func (guardState) unlockShared()    {}
func (guardState) lockExclusive()   {}
func (guardState) unlockExclusive() {}
