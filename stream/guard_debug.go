//go:build iodebug

package stream

import (
	"fmt"
	"sync"
)

// DebugChecks reports whether debug-mode safety checks are compiled in.
const DebugChecks = true

type guardState struct {
	mu        sync.Mutex
	shared    int64
	exclusive int64
}

func (g *guardState) lockShared() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.exclusive != 0 {
		panic("stream: shared access attempted during exclusive operation")
	}
	g.shared++
}

func (g *guardState) unlockShared() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.shared <= 0 {
		panic("stream: unbalanced shared unlock")
	}
	g.shared--
}

func (g *guardState) lockExclusive() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.shared != 0 {
		panic(fmt.Sprintf("stream: exclusive access attempted during %d shared operations", g.shared))
	}
	if g.exclusive != 0 {
		panic("stream: exclusive access attempted during exclusive operation")
	}
	g.exclusive++
}

func (g *guardState) unlockExclusive() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.exclusive != 1 {
		panic("stream: unbalanced exclusive unlock")
	}
	g.exclusive--
}
