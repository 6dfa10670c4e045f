package editor

// frame is one level of descent: the submenu field that was entered, plus
// the selection the parent view had at that moment so ascending can put the
// cursor back where the user left it.
type frame struct {
	index  int
	cursor int
}

// Stack tracks the path of submenu indices from the root to the current
// view. An empty stack is the root view.
type Stack struct {
	frames []frame
}

// Depth returns how many levels below the root the stack points.
func (s *Stack) Depth() int { return len(s.frames) }

// Indices returns the index path, root to current.
func (s *Stack) Indices() []int {
	out := make([]int, len(s.frames))
	for i, fr := range s.frames {
		out[i] = fr.index
	}
	return out
}

// Descend pushes one level: the entered field index and the parent's
// selection at the time.
func (s *Stack) Descend(index, cursor int) {
	s.frames = append(s.frames, frame{index: index, cursor: cursor})
}

// Ascend pops the innermost level and returns the parent selection saved on
// the way down. Fails with ErrAtRoot on the root view.
func (s *Stack) Ascend() (int, error) {
	if len(s.frames) == 0 {
		return 0, ErrAtRoot
	}
	fr := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return fr.cursor, nil
}

// Truncate drops every frame at and below depth.
func (s *Stack) Truncate(depth int) {
	if depth < len(s.frames) {
		s.frames = s.frames[:depth]
	}
}

// Reset clears the stack back to the root view.
func (s *Stack) Reset() { s.frames = nil }
