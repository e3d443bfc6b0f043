package behaviortree

// Condition is a leaf that checks a predicate.
// It never reports Running and keeps no state between ticks.
type Condition struct {
	check ConditionFunc
}

// NewCondition wraps check in a Condition.
// Panics if check is nil.
func NewCondition(check ConditionFunc) *Condition {
	if check == nil {
		panic("behaviortree: condition function cannot be nil")
	}
	return &Condition{check: check}
}

// Run returns Success if the predicate holds and Fail otherwise.
func (c *Condition) Run() Status {
	if c.check() {
		return Success
	}
	return Fail
}
