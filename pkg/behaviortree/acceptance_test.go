package behaviortree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScenario_FallbackToAction(t *testing.T) {
	op := &counter{}
	root := NewFallback(
		NewCondition(func() bool { return false }),
		op.action(Success),
	)

	assert.Equal(t, Success, root.Run())
	assert.Equal(t, 1, op.calls)
}

func TestScenario_SequenceAbortsOnFailedCondition(t *testing.T) {
	op := &counter{}
	root := NewSequence(
		NewCondition(func() bool { return true }),
		NewCondition(func() bool { return false }),
		op.action(Success),
	)

	assert.Equal(t, Fail, root.Run())
	assert.Equal(t, 0, op.calls)
}

func TestScenario_SequencePausesOnRunningAction(t *testing.T) {
	first := &counter{}
	second := &counter{}
	root := NewSequence(
		first.action(Running),
		second.action(Success),
	)

	assert.Equal(t, Running, root.Run())
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

// TestScenario_Patrol models a guard that opens a door if needed and then
// walks through it over several ticks.
func TestScenario_Patrol(t *testing.T) {
	doorOpen := false
	locked := true
	steps := 0

	openDoor := NewAction(func() Status {
		if locked {
			return Fail
		}
		doorOpen = true
		return Success
	})
	unlock := NewAction(func() Status {
		locked = false
		return Running
	})
	walk := NewAction(func() Status {
		steps++
		if steps < 2 {
			return Running
		}
		return Success
	})

	root := NewSequence(
		NewFallback(
			NewCondition(func() bool { return doorOpen }),
			openDoor,
			unlock,
		),
		walk,
	)

	assert.Equal(t, Running, root.Run(), "door locked: unlocking")
	assert.Equal(t, Fail, openDoor.LastStatus())
	assert.Equal(t, 0, steps)

	assert.Equal(t, Running, root.Run(), "door opened: first step")
	assert.True(t, doorOpen)
	assert.Equal(t, 1, steps)

	assert.Equal(t, Success, root.Run(), "arrived")
	assert.Equal(t, 2, steps)
	assert.Equal(t, Success, walk.LastStatus())
}
