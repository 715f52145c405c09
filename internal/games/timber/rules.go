package timber

import (
	"time"

	"github.com/vovakirdan/timber/internal/core"
)

// ResolveChop reports whether chopping with the given action survives the
// nearest obstacle. A bare trunk is always safe; a branch is only cleared
// by chopping its own side.
func ResolveChop(action core.Action, nearest Obstacle) bool {
	switch nearest {
	case None:
		return true
	case LeftBranch:
		return action == core.ActionLeft
	case RightBranch:
		return action == core.ActionRight
	default:
		return false
	}
}

// TimedOut reports whether the current tree's budget is used up.
// A non-positive budget is always timed out.
func TimedOut(elapsed, total time.Duration) bool {
	return elapsed >= total
}
