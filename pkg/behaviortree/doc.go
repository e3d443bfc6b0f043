/*
Package behaviortree provides a small behaviour tree evaluator for
reactive, prioritized agent logic.

# Overview

A behaviour tree is built from four kinds of Node:

  - Condition: a leaf that checks a predicate (Success or Fail)
  - Action: a leaf that does work and reports its own Status
  - Fallback: tries children in order until one succeeds or is running
  - Sequence: runs children in order until one fails or is running

Every node has a single operation, Run, which evaluates the subtree rooted
at that node and returns Success, Running or Fail. Fail is an ordinary
result; errors are not part of evaluation.

# Basic Usage

	doorOpen := func() bool { return door.Open }
	openDoor := func() behaviortree.Status {
	    if door.Locked {
	        return behaviortree.Fail
	    }
	    door.Open = true
	    return behaviortree.Success
	}
	walk := func() behaviortree.Status {
	    if robot.Step() {
	        return behaviortree.Success
	    }
	    return behaviortree.Running
	}

	root := behaviortree.NewSequence().
	    AddChild(behaviortree.NewFallback().
	        AddChild(behaviortree.NewCondition(doorOpen)).
	        AddChild(behaviortree.NewAction(openDoor))).
	    AddChild(behaviortree.NewAction(walk))

	status := root.Run()

# Ticks

Running means "evaluate me again later". Nodes do not remember which
child was running: every Run re-evaluates the subtree from its first
child. Only Action keeps state, the status of its latest run, readable
through LastStatus.

Tree wraps a root node for callers that want structured logs, metrics,
tracing and a tick history around each evaluation:

	tree := behaviortree.NewTree("patrol", root,
	    behaviortree.WithLogger(logger),
	    behaviortree.WithMetrics(true),
	    behaviortree.WithHistory(history.NewMemoryStore()))

	status, err := tree.Tick(ctx)

Tree recovers panics raised by wrapped functions into *PanicError. Calling
Run directly does not: panics reach the caller unchanged.

# Construction Errors

Building a tree the wrong way is a programming error and panics:

  - nil children, conditions or actions
  - InsertChild with an index outside [0, Len()] panics with *IndexError,
    which unwraps to ErrIndexOutOfRange; the children are left unchanged
  - adding a composite below itself panics with ErrCycle

# Thread Safety

Nodes and Tree are NOT safe for concurrent use. Build a tree in one
goroutine before evaluating it, and evaluate it from one goroutine at a
time. history.Store implementations are safe for concurrent use.

# Subpackages

  - config: settings loading (YAML, JSON)
  - history: tick outcome storage (memory, SQLite)
  - observability: logging, metrics, and tracing helpers
*/
package behaviortree
