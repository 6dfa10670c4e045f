package editor

import "github.com/robbiew/menucfg/internal/menu"

// Session is the transient text edit bound to one leaf field: either
// inactive, or active with a rune buffer and a cursor. Closing it without a
// commit never touches the field it was opened for.
type Session struct {
	active bool
	field  int
	prim   menu.PrimitiveType
	buffer []rune
	cursor int
}

// Start begins editing a field. The buffer is seeded with the leaf's
// current display text and the cursor sits at the end.
func (s *Session) Start(field int, prim menu.PrimitiveType, seed string) {
	s.active = true
	s.field = field
	s.prim = prim
	s.buffer = []rune(seed)
	s.cursor = len(s.buffer)
}

// Active reports whether an edit is in progress.
func (s *Session) Active() bool { return s.active }

// Field returns the field index the session is bound to.
func (s *Session) Field() int { return s.field }

// Prim returns the primitive type being edited.
func (s *Session) Prim() menu.PrimitiveType { return s.prim }

// Buffer returns the in-progress text.
func (s *Session) Buffer() string { return string(s.buffer) }

// Cursor returns the cursor position in runes, 0 through len(buffer).
func (s *Session) Cursor() int { return s.cursor }

// Cancel discards the buffer and deactivates the session.
func (s *Session) Cancel() { *s = Session{} }

// InsertRune inserts r at the cursor and advances past it.
func (s *Session) InsertRune(r rune) error {
	if !s.active {
		return ErrNoActiveSession
	}
	tail := append([]rune{r}, s.buffer[s.cursor:]...)
	s.buffer = append(s.buffer[:s.cursor], tail...)
	s.cursor++
	return nil
}

// Backspace removes the rune before the cursor; no-op at the start.
func (s *Session) Backspace() error {
	if !s.active {
		return ErrNoActiveSession
	}
	if s.cursor == 0 {
		return nil
	}
	s.buffer = append(s.buffer[:s.cursor-1], s.buffer[s.cursor:]...)
	s.cursor--
	return nil
}

// Delete removes the rune at the cursor; no-op at the end.
func (s *Session) Delete() error {
	if !s.active {
		return ErrNoActiveSession
	}
	if s.cursor >= len(s.buffer) {
		return nil
	}
	s.buffer = append(s.buffer[:s.cursor], s.buffer[s.cursor+1:]...)
	return nil
}

// MoveLeft steps the cursor back, clamped at the start.
func (s *Session) MoveLeft() error {
	if !s.active {
		return ErrNoActiveSession
	}
	if s.cursor > 0 {
		s.cursor--
	}
	return nil
}

// MoveRight steps the cursor forward, clamped at the end.
func (s *Session) MoveRight() error {
	if !s.active {
		return ErrNoActiveSession
	}
	if s.cursor < len(s.buffer) {
		s.cursor++
	}
	return nil
}
