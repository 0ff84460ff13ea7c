package sprig

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugOut receives debug-mode output.
var debugOut io.Writer = os.Stderr

// globalDebug mirrors the most recently set Stage debug flag so that element
// operations (which lack a Stage pointer) can check it cheaply. Only valid
// with a single Stage.
var globalDebug bool

// debugStats holds per-frame timing and dispatch metrics.
// Only populated when Stage.debug is true.
type debugStats struct {
	processTime time.Duration
	settleTime  time.Duration
	eventCount  int
	redraw      bool
}

// debugLogUpdate prints the stats of one Update call.
func (s *Stage) debugLogUpdate(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut,
		"[sprig] process: %v | settle: %v | events: %d | redraw: %t\n",
		stats.processTime, stats.settleTime, stats.eventCount, stats.redraw)
}

// debugLogDraw prints the time one Draw call took.
func (s *Stage) debugLogDraw(d time.Duration, roots int) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[sprig] draw: %v | roots: %d\n", d, roots)
}

// debugCheckDisposed panics with a descriptive message when a disposed element
// is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(e *Element, op string) {
	if e.disposed {
		panic(fmt.Sprintf("sprig debug: %s on disposed element %q", op, e.Name))
	}
}

// debugMaxTreeDepth is the depth past which debugCheckTreeDepth warns.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(e *Element) {
	depth := 0
	for p := e; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(debugOut, "[sprig] warning: tree depth %d exceeds %d (element %q)\n",
			depth, debugMaxTreeDepth, e.Name)
	}
}

// debugMaxChildCount is the child count past which debugCheckChildCount warns.
const debugMaxChildCount = 1000

func debugCheckChildCount(e *Element) {
	if len(e.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(debugOut, "[sprig] warning: element %q has %d children (threshold %d)\n",
			e.Name, len(e.children), debugMaxChildCount)
	}
}
