package core

import "bytes"

// Action represents a semantic game action, abstracted from physical key presses.
// It is the only vocabulary for both player intent and loop control.
type Action int

const (
	ActionNothing Action = iota
	ActionLeft           // Left arrow - chop the left side
	ActionRight          // Right arrow - chop the right side
	ActionRestart        // R key - start a fresh run
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNothing:
		return "Nothing"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsChop reports whether the action is a directional chop.
func (a Action) IsChop() bool {
	return a == ActionLeft || a == ActionRight
}

// Raw terminal sequences recognized by DecodeInput.
var (
	SeqLeft  = []byte{0x1b, '[', 'D'}
	SeqRight = []byte{0x1b, '[', 'C'}
)

const etx = 0x03 // Ctrl+C in raw mode

// DecodeInput maps the bytes drained from the terminal during one frame to
// an action. Only the first recognized pattern counts; anything else,
// including empty input, is ActionNothing.
func DecodeInput(raw []byte) Action {
	for i := 0; i < len(raw); i++ {
		rest := raw[i:]
		switch {
		case bytes.HasPrefix(rest, SeqLeft):
			return ActionLeft
		case bytes.HasPrefix(rest, SeqRight):
			return ActionRight
		case rest[0] == 'r':
			return ActionRestart
		case rest[0] == 'q', rest[0] == etx:
			return ActionQuit
		}
	}
	return ActionNothing
}

// InputQueue buffers raw input between frames.
// It is owned by the loop goroutine and is not safe for concurrent use.
type InputQueue struct {
	buf []byte
}

// NewInputQueue creates an empty input queue.
func NewInputQueue() *InputQueue {
	return &InputQueue{buf: make([]byte, 0, 16)}
}

// Push appends raw bytes to the queue.
func (q *InputQueue) Push(b []byte) {
	q.buf = append(q.buf, b...)
}

// Drain returns everything buffered since the last call and empties the queue.
// It never blocks and returns nil when nothing is pending.
func (q *InputQueue) Drain() []byte {
	if len(q.buf) == 0 {
		return nil
	}
	out := make([]byte, len(q.buf))
	copy(out, q.buf)
	q.buf = q.buf[:0]
	return out
}

// Len returns the number of buffered bytes.
func (q *InputQueue) Len() int {
	return len(q.buf)
}
