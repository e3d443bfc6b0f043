package behaviortree

import "context"

// Helpers shared across tests.

// counter records how many times a leaf was evaluated.
type counter struct {
	calls int
}

// action returns an Action that counts its calls and reports status.
func (c *counter) action(status Status) *Action {
	return NewAction(func() Status {
		c.calls++
		return status
	})
}

// condition returns a Condition that counts its calls and reports ok.
func (c *counter) condition(ok bool) *Condition {
	return NewCondition(func() bool {
		c.calls++
		return ok
	})
}

// scripted returns an ActionFunc that reports statuses in order,
// repeating the last one once the script runs out.
func scripted(statuses ...Status) ActionFunc {
	i := 0
	return func() Status {
		s := statuses[i]
		if i < len(statuses)-1 {
			i++
		}
		return s
	}
}

// recorder appends name to a shared trace every time it runs.
func recorder(name string, trace *[]string, status Status) *Action {
	return NewAction(func() Status {
		*trace = append(*trace, name)
		return status
	})
}

// stub is a leaf used only for identity checks.
type stub struct {
	name string
}

func (s *stub) Run() Status { return Success }

// testCtx creates a simple test context.
func testCtx() context.Context {
	return context.Background()
}
