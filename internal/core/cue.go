package core

// Cue identifies one of the fixed sound effects a frame can trigger.
type Cue int

const (
	CueNone Cue = iota
	CueWood     // a branch-free or matching chop that leaves wood on the tree
	CueTree     // the last segment of a tree was cleared
	CueGameOver // the run ended
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueNone:
		return "none"
	case CueWood:
		return "wood"
	case CueTree:
		return "tree"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
