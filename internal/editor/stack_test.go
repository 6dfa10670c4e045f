package editor

import (
	"errors"
	"testing"
)

func TestStackDescendAscend(t *testing.T) {
	var s Stack

	if s.Depth() != 0 {
		t.Fatalf("expected empty stack, got depth %d", s.Depth())
	}
	if _, err := s.Ascend(); !errors.Is(err, ErrAtRoot) {
		t.Fatalf("expected ErrAtRoot, got %v", err)
	}

	s.Descend(2, 4)
	s.Descend(0, 1)
	if s.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", s.Depth())
	}
	got := s.Indices()
	if len(got) != 2 || got[0] != 2 || got[1] != 0 {
		t.Fatalf("expected indices [2 0], got %v", got)
	}

	cursor, err := s.Ascend()
	if err != nil {
		t.Fatalf("Ascend returned error: %v", err)
	}
	if cursor != 1 {
		t.Fatalf("expected restored cursor 1, got %d", cursor)
	}
	cursor, _ = s.Ascend()
	if cursor != 4 {
		t.Fatalf("expected restored cursor 4, got %d", cursor)
	}
	if s.Depth() != 0 {
		t.Fatalf("expected empty stack after ascending out, got depth %d", s.Depth())
	}
}

func TestStackTruncate(t *testing.T) {
	var s Stack
	s.Descend(1, 0)
	s.Descend(2, 0)
	s.Descend(3, 0)

	s.Truncate(1)
	if s.Depth() != 1 {
		t.Fatalf("expected depth 1 after truncate, got %d", s.Depth())
	}
	if got := s.Indices(); got[0] != 1 {
		t.Fatalf("expected surviving frame 1, got %v", got)
	}

	// truncating past the end is a no-op
	s.Truncate(5)
	if s.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", s.Depth())
	}

	s.Reset()
	if s.Depth() != 0 {
		t.Fatalf("expected empty stack after reset, got depth %d", s.Depth())
	}
}
