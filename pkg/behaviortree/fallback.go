package behaviortree

// Fallback tries its children in priority order.
//
// Run returns Success or Running from the first child that reports either,
// without evaluating the children after it. Children that report Fail are
// skipped. When every child fails, or there are none, Run returns Fail.
//
// Example:
//
//	fb := behaviortree.NewFallback().
//	    AddChild(behaviortree.NewCondition(doorOpen)).
//	    AddChild(behaviortree.NewAction(openDoor))
type Fallback struct {
	composite
}

// NewFallback creates a Fallback with the given children in order.
// Panics under the same rules as AddChild.
func NewFallback(children ...Node) *Fallback {
	f := &Fallback{}
	for _, child := range children {
		f.AddChild(child)
	}
	return f
}

// AddChild appends child as the lowest priority alternative.
// Returns the fallback for method chaining.
//
// Panics if child is nil or if f is reachable from child.
func (f *Fallback) AddChild(child Node) *Fallback {
	f.add(f, child)
	return f
}

// InsertChild places child at index, shifting later children back.
// Returns the fallback for method chaining.
//
// Panics with *IndexError if index is outside [0, Len()], and under the
// same rules as AddChild.
func (f *Fallback) InsertChild(index int, child Node) *Fallback {
	f.insert(f, index, child)
	return f
}

// Run implements Node.
func (f *Fallback) Run() Status {
	for _, child := range f.children {
		switch status := child.Run(); status {
		case Success, Running:
			return status
		}
	}
	return Fail
}
