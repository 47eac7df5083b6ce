package bbcode

// DefaultMaxDepth is the nesting limit used when none is configured.
const DefaultMaxDepth = 256

// TagStack maps nesting depth to the name of the tag open at that depth.
// It is heap backed and capped, so hostile nesting costs at most max
// entries and never native stack frames.
type TagStack struct {
	names []string
	max   int
}

// NewTagStack returns an empty stack holding at most max names. A max of
// zero or less falls back to DefaultMaxDepth.
func NewTagStack(max int) *TagStack {
	if max <= 0 {
		max = DefaultMaxDepth
	}
	return &TagStack{max: max}
}

// Depth returns the number of open tags.
func (s *TagStack) Depth() int {
	return len(s.names)
}

// Max returns the configured depth limit.
func (s *TagStack) Max() int {
	return s.max
}

// Full reports whether another Push would exceed the limit.
func (s *TagStack) Full() bool {
	return len(s.names) >= s.max
}

// Push records name as open. It returns false, leaving the stack unchanged,
// when the stack is full.
func (s *TagStack) Push(name string) bool {
	if s.Full() {
		return false
	}
	s.names = append(s.names, name)
	return true
}

// Top returns the innermost open name.
func (s *TagStack) Top() (string, bool) {
	if len(s.names) == 0 {
		return "", false
	}
	return s.names[len(s.names)-1], true
}

// Pop removes and returns the innermost open name.
func (s *TagStack) Pop() (string, bool) {
	if len(s.names) == 0 {
		return "", false
	}
	last := len(s.names) - 1
	name := s.names[last]
	s.names[last] = ""
	s.names = s.names[:last]
	return name, true
}

// PopIf pops the innermost name only when it equals name.
func (s *TagStack) PopIf(name string) bool {
	if top, ok := s.Top(); !ok || top != name {
		return false
	}
	s.Pop()
	return true
}

// Names returns a copy of the open names, outermost first.
func (s *TagStack) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}
