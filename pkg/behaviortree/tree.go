package behaviortree

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/randalmurphal/behaviortree/pkg/behaviortree/history"
	"github.com/randalmurphal/behaviortree/pkg/behaviortree/observability"
)

// Tree names a root node and ticks it with logging, metrics, tracing and
// history around each evaluation.
//
// A tick is exactly one call to the root's Run. Tree does not schedule
// ticks; callers decide when to tick again, typically while the last
// status was Running.
//
// Tree is NOT safe for concurrent use.
type Tree struct {
	name  string
	root  Node
	cfg   treeConfig
	ticks int
}

// NewTree creates a tree named name around root.
// Panics if name is empty or root is nil.
func NewTree(name string, root Node, opts ...TreeOption) *Tree {
	if name == "" {
		panic("behaviortree: tree name cannot be empty")
	}
	if root == nil {
		panic("behaviortree: root node cannot be nil")
	}

	cfg := defaultTreeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Tree{name: name, root: root, cfg: cfg}
}

// Name returns the tree name.
func (t *Tree) Name() string {
	return t.name
}

// Root returns the root node.
func (t *Tree) Root() Node {
	return t.root
}

// Ticks returns the number of times the root has been evaluated.
func (t *Tree) Ticks() int {
	return t.ticks
}

// Tick evaluates the root once and returns its status.
//
// Errors:
//   - ErrNilContext if ctx is nil
//   - *CancellationError if ctx is already done; the root is not evaluated
//   - *PanicError if a node panicked; the status is Fail
//   - *InvalidStatusError if the root reported an undefined status
//   - *HistoryError if the tick could not be recorded; the status is valid
//
// Example:
//
//	for {
//	    status, err := tree.Tick(ctx)
//	    if err != nil || status != behaviortree.Running {
//	        break
//	    }
//	    time.Sleep(100 * time.Millisecond)
//	}
func (t *Tree) Tick(ctx context.Context) (status Status, tickErr error) {
	if ctx == nil {
		return Fail, ErrNilContext
	}
	if err := ctx.Err(); err != nil {
		return Fail, &CancellationError{Tree: t.name, Cause: err}
	}

	tickID := t.cfg.newID()
	elapsed := observability.TimedOperation()

	observability.LogTickStart(t.cfg.logger, t.name, tickID)

	spanCtx, span := t.cfg.spans.StartTickSpan(ctx, t.name, tickID)

	status, tickErr = t.evaluate(tickID)
	t.ticks++

	duration := elapsed()
	statusName := ""
	if tickErr == nil {
		statusName = status.String()
	}

	t.cfg.metrics.RecordTick(spanCtx, t.name, statusName, duration, tickErr)

	if tickErr != nil {
		observability.LogTickError(t.cfg.logger, t.name, tickID, tickErr, observability.Milliseconds(duration))
	} else {
		observability.LogTickComplete(t.cfg.logger, t.name, tickID, statusName, observability.Milliseconds(duration))
	}

	if t.cfg.history != nil {
		rec := history.New(t.name, tickID, statusName, duration).WithError(tickErr)
		_, err := t.cfg.history.Append(rec)
		t.cfg.metrics.RecordHistoryWrite(spanCtx, t.name, err)
		if err != nil {
			observability.LogHistoryError(t.cfg.logger, t.name, tickID, err)
			if tickErr == nil {
				tickErr = &HistoryError{Tree: t.name, TickID: tickID, Status: status, Err: err}
			}
		}
	}

	t.cfg.spans.EndSpanWithStatus(span, statusName, tickErr)

	return status, tickErr
}

// evaluate runs the root, converting a panic into *PanicError.
func (t *Tree) evaluate(tickID string) (status Status, err error) {
	defer func() {
		if r := recover(); r != nil {
			status = Fail
			err = &PanicError{
				Tree:   t.name,
				TickID: tickID,
				Value:  r,
				Stack:  string(debug.Stack()),
			}
		}
	}()

	status = t.root.Run()
	if !status.Valid() {
		return status, &InvalidStatusError{Status: status}
	}
	return status, nil
}

// String returns the tree name and tick count.
func (t *Tree) String() string {
	return fmt.Sprintf("tree %s (%d ticks)", t.name, t.ticks)
}
