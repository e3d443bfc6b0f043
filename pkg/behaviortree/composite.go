package behaviortree

import "slices"

// composite holds the ordered children shared by Fallback and Sequence.
//
// Children are owned by the composite and evaluated in slice order.
// Mutation is meant for the setup phase; it is not synchronized with Run.
type composite struct {
	children []Node
}

// branch is implemented by nodes that have children.
type branch interface {
	childNodes() []Node
}

func (c *composite) childNodes() []Node {
	return c.children
}

// Children returns a copy of the children in evaluation order.
func (c *composite) Children() []Node {
	return slices.Clone(c.children)
}

// Len returns the number of children.
func (c *composite) Len() int {
	return len(c.children)
}

// add appends child after validating it against owner.
func (c *composite) add(owner, child Node) {
	validateChild(owner, child)
	c.children = append(c.children, child)
}

// insert places child at index, shifting later children back.
//
// Panics with *IndexError if index is outside [0, len]. The children are
// left untouched in that case.
func (c *composite) insert(owner Node, index int, child Node) {
	if index < 0 || index > len(c.children) {
		panic(&IndexError{Index: index, Len: len(c.children)})
	}
	validateChild(owner, child)
	c.children = slices.Insert(c.children, index, child)
}

// validateChild panics if child is nil or would create a cycle.
func validateChild(owner, child Node) {
	if child == nil {
		panic("behaviortree: child cannot be nil")
	}
	if reachable(child, owner) {
		panic(ErrCycle)
	}
}

// reachable reports whether target is from or a descendant of from.
func reachable(from, target Node) bool {
	if from == target {
		return true
	}
	b, ok := from.(branch)
	if !ok {
		return false
	}
	for _, child := range b.childNodes() {
		if reachable(child, target) {
			return true
		}
	}
	return false
}
