package behaviortree

// Action is a leaf that performs work and reports its own status.
//
// The status returned by the wrapped function is passed through as is.
// The most recent one is kept and can be read with LastStatus.
type Action struct {
	perform ActionFunc
	status  Status
}

// NewAction wraps perform in an Action.
// The last status starts out as Running.
// Panics if perform is nil.
func NewAction(perform ActionFunc) *Action {
	if perform == nil {
		panic("behaviortree: action function cannot be nil")
	}
	return &Action{perform: perform, status: Running}
}

// Run calls the wrapped function, stores its status and returns it.
func (a *Action) Run() Status {
	a.status = a.perform()
	return a.status
}

// LastStatus returns the status reported by the latest Run,
// or Running if the action has not run yet.
func (a *Action) LastStatus() Status {
	return a.status
}
