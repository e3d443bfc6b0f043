package behaviortree

// Node is anything that can be evaluated in a behaviour tree.
//
// Run performs one complete evaluation of the subtree rooted at the node
// and returns its Status. Running is a reported status, not a suspension:
// the call always returns, and the caller decides when to evaluate again.
//
// Run must not change the shape of the tree. Panics raised by wrapped
// callables are not recovered and reach the caller unchanged.
type Node interface {
	Run() Status
}

// ConditionFunc is a predicate checked by a Condition.
// It should be safe to call on every tick.
type ConditionFunc func() bool

// ActionFunc performs work for an Action and reports how it went.
// Long-running work reports Running until it finishes.
type ActionFunc func() Status
