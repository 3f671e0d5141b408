package willow

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/phanxgames/willow-actions/action"
)

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugLog receives the debug-mode warnings of node and action operations.
var debugLog = zerolog.Nop()

// newDebugLogger returns a console logger on stderr at debug level.
func newDebugLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Str("component", "willow").Logger().
		Level(zerolog.DebugLevel)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. In release mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("willow debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLog.Warn().Int("depth", depth).Int("max", debugMaxTreeDepth).Str("node", n.Name).
			Msg("tree depth exceeds threshold")
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		debugLog.Warn().Int("children", len(n.children)).Int("max", debugMaxChildCount).Str("node", n.Name).
			Msg("child count exceeds threshold")
	}
}

// debugCheckActionCount warns if a target has more than 64 scheduled actions.
const debugMaxActionCount = 64

func debugCheckActionCount(target action.Target, count int) {
	if count > debugMaxActionCount {
		debugLog.Warn().Int("actions", count).Int("max", debugMaxActionCount).Str("target", targetName(target)).
			Msg("action count exceeds threshold")
	}
}
