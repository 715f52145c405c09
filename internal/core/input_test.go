package core

import "testing"

func TestDecodeInput(t *testing.T) {
	tests := []struct {
		name     string
		raw      []byte
		expected Action
	}{
		{"empty", nil, ActionNothing},
		{"left arrow", []byte{27, 91, 68}, ActionLeft},
		{"right arrow", []byte{27, 91, 67}, ActionRight},
		{"restart", []byte("r"), ActionRestart},
		{"quit", []byte("q"), ActionQuit},
		{"ctrl+c", []byte{3}, ActionQuit},
		{"up arrow", []byte{27, 91, 65}, ActionNothing},
		{"bare escape", []byte{27}, ActionNothing},
		{"unknown letter", []byte("x"), ActionNothing},
		{"uppercase R is not restart", []byte("R"), ActionNothing},
		{"first pattern wins", []byte{27, 91, 68, 27, 91, 67}, ActionLeft},
		{"junk before pattern", []byte{'x', 27, 91, 67}, ActionRight},
		{"quit after chop", []byte{27, 91, 67, 'q'}, ActionRight},
		{"truncated sequence then restart", []byte{27, 91, 'r'}, ActionRestart},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DecodeInput(tc.raw); got != tc.expected {
				t.Errorf("DecodeInput(%v) = %v, expected %v", tc.raw, got, tc.expected)
			}
		})
	}
}

func TestActionIsChop(t *testing.T) {
	chops := map[Action]bool{
		ActionNothing: false,
		ActionLeft:    true,
		ActionRight:   true,
		ActionRestart: false,
		ActionQuit:    false,
	}
	for a, want := range chops {
		if a.IsChop() != want {
			t.Errorf("%v.IsChop() = %v, expected %v", a, a.IsChop(), want)
		}
	}
}

func TestInputQueueDrain(t *testing.T) {
	q := NewInputQueue()

	if got := q.Drain(); got != nil {
		t.Errorf("Drain on empty queue = %v, expected nil", got)
	}

	q.Push(SeqLeft)
	q.Push([]byte("q"))
	if q.Len() != 4 {
		t.Errorf("Len() = %d, expected 4", q.Len())
	}

	got := q.Drain()
	if DecodeInput(got) != ActionLeft {
		t.Errorf("drained %v should decode to Left", got)
	}
	if q.Len() != 0 {
		t.Errorf("queue should be empty after Drain, Len() = %d", q.Len())
	}

	// Drained slice must not alias the queue's storage
	q.Push([]byte("r"))
	if got[0] != 27 {
		t.Errorf("previously drained bytes were overwritten: %v", got)
	}
}
