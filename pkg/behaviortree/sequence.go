package behaviortree

// Sequence runs its children in order until one of them does not succeed.
//
// Run returns Fail or Running from the first child that reports either,
// without evaluating the children after it. When every child succeeds, or
// there are none, Run returns Success.
type Sequence struct {
	composite
}

// NewSequence creates a Sequence with the given children in order.
// Panics under the same rules as AddChild.
func NewSequence(children ...Node) *Sequence {
	s := &Sequence{}
	for _, child := range children {
		s.AddChild(child)
	}
	return s
}

// AddChild appends child as the last step.
// Returns the sequence for method chaining.
//
// Panics if child is nil or if s is reachable from child.
func (s *Sequence) AddChild(child Node) *Sequence {
	s.add(s, child)
	return s
}

// InsertChild places child at index, shifting later children back.
// Returns the sequence for method chaining.
//
// Panics with *IndexError if index is outside [0, Len()], and under the
// same rules as AddChild.
func (s *Sequence) InsertChild(index int, child Node) *Sequence {
	s.insert(s, index, child)
	return s
}

// Run implements Node.
func (s *Sequence) Run() Status {
	for _, child := range s.children {
		switch status := child.Run(); status {
		case Fail, Running:
			return status
		}
	}
	return Success
}
