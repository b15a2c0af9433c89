package mode

import (
	"errors"
	"testing"
	"time"

	"github.com/tallow-engine/tallow/core"
)

func threeSubmodes(journal *[]string) (*Multi, *testMode, *testMode, *testMode) {
	x := newTestMode("x", journal)
	y := newTestMode("y", journal)
	z := newTestMode("z", journal)
	return NewMulti(x, y, z), x, y, z
}

func TestActivateNextSequence(t *testing.T) {
	var journal []string
	multi, x, y, z := threeSubmodes(&journal)

	// From the initial inactive state, next walks x, y, z in order
	if got := multi.ActivateNext(true); got != Mode(x) {
		t.Errorf("Expected x first, got %v", got)
	}
	if got := multi.ActivateNext(true); got != Mode(y) {
		t.Errorf("Expected y second, got %v", got)
	}
	if got := multi.ActivateNext(true); got != Mode(z) {
		t.Errorf("Expected z third, got %v", got)
	}

	// With loop, a fourth call wraps to x
	if got := multi.ActivateNext(true); got != Mode(x) {
		t.Errorf("Expected wraparound to x, got %v", got)
	}
}

func TestActivateNextNoLoopRemovesMulti(t *testing.T) {
	var journal []string
	multi, _, _, z := threeSubmodes(&journal)
	stack := NewStack()
	stack.Push(multi)

	multi.ActivateNext(true) // y (x was activated by the push)
	multi.ActivateNext(true) // z
	if multi.ActiveSubmode() != Mode(z) {
		t.Fatalf("Expected z active")
	}

	if got := multi.ActivateNext(false); got != nil {
		t.Errorf("Expected nil when no next mode without loop, got %v", got)
	}
	if z.Active() {
		t.Errorf("Expected z deactivated")
	}
	if stack.Len() != 0 {
		t.Errorf("Expected the Multi removed from its manager")
	}
	if multi.Active() {
		t.Errorf("Expected the Multi deactivated after removal")
	}
}

func TestActivatePreviousSequence(t *testing.T) {
	var journal []string
	multi, x, _, z := threeSubmodes(&journal)

	// With no active submode, previous starts at the last
	if got := multi.ActivatePrevious(true); got != Mode(z) {
		t.Errorf("Expected z first, got %v", got)
	}

	multi.activateSubmode(x)
	// At the first submode, loop wraps backward to the last
	if got := multi.ActivatePrevious(true); got != Mode(z) {
		t.Errorf("Expected wrap to z, got %v", got)
	}
}

func TestActivatePreviousNoLoopRemovesMulti(t *testing.T) {
	var journal []string
	multi, x, _, _ := threeSubmodes(&journal)
	stack := NewStack()
	stack.Push(multi)

	if multi.ActiveSubmode() != Mode(x) {
		t.Fatalf("Expected x active after push")
	}
	if got := multi.ActivatePrevious(false); got != nil {
		t.Errorf("Expected nil moving before the first without loop, got %v", got)
	}
	if stack.Len() != 0 {
		t.Errorf("Expected the Multi removed from its manager")
	}
}

func TestMultiActivationOnPush(t *testing.T) {
	var journal []string
	multi, x, _, _ := threeSubmodes(&journal)
	stack := NewStack()
	stack.Push(multi)

	if !multi.Active() {
		t.Errorf("Expected the Multi active")
	}
	if multi.ActiveSubmode() != Mode(x) || !x.Active() {
		t.Errorf("Expected the first submode active by default")
	}
}

func TestStickySubmodeMemory(t *testing.T) {
	var journal []string
	multi, _, y, _ := threeSubmodes(&journal)
	stack := NewStack()
	stack.Push(multi)
	multi.ActivateNext(true)
	if multi.ActiveSubmode() != Mode(y) {
		t.Fatalf("Expected y active")
	}

	// Covering the Multi deactivates y but remembers it
	overlay := newTestMode("overlay", &journal)
	stack.Push(overlay)
	if y.Active() {
		t.Errorf("Expected y deactivated while the Multi is covered")
	}
	if multi.ActiveSubmode() != Mode(y) {
		t.Errorf("Expected y remembered while deactivated")
	}

	// Popping the overlay resumes y, not the first submode
	if _, err := stack.Pop(); err != nil {
		t.Fatalf("Pop failed: %v", err)
	}
	if multi.ActiveSubmode() != Mode(y) || !y.Active() {
		t.Errorf("Expected y to resume on reactivation")
	}
}

func TestRemoveOnlySubmode(t *testing.T) {
	var journal []string
	x := newTestMode("x", &journal)
	multi := NewMulti(x)
	stack := NewStack()
	stack.Push(multi)

	multi.RemoveSubmode(nil)
	if len(multi.Submodes()) != 0 {
		t.Errorf("Expected x removed from the submode list")
	}
	if stack.Len() != 0 {
		t.Errorf("Expected the Multi removed from its manager with its last submode")
	}
	if multi.ActiveSubmode() != nil {
		t.Errorf("Expected the active submode slot cleared")
	}
	if x.Active() {
		t.Errorf("Expected x deactivated")
	}
}

func TestRemoveActiveSubmodeActivatesNext(t *testing.T) {
	var journal []string
	multi, x, y, _ := threeSubmodes(&journal)
	stack := NewStack()
	stack.Push(multi)

	multi.RemoveSubmode(x)
	if multi.ActiveSubmode() != Mode(y) || !y.Active() {
		t.Errorf("Expected the next submode active after removing the active one")
	}
	if len(multi.Submodes()) != 2 {
		t.Errorf("Expected 2 submodes left, got %d", len(multi.Submodes()))
	}
	if stack.Len() != 1 {
		t.Errorf("Expected the Multi still on its manager")
	}
}

func TestRemoveSubmodeNotMember(t *testing.T) {
	var journal []string
	multi, _, _, _ := threeSubmodes(&journal)
	stranger := newTestMode("stranger", &journal)

	multi.RemoveSubmode(stranger)
	if len(multi.Submodes()) != 3 {
		t.Errorf("Expected submodes untouched removing a non-member")
	}

	// No active submode and nil target: nothing to do
	multi.RemoveSubmode(nil)
	if len(multi.Submodes()) != 3 {
		t.Errorf("Expected submodes untouched with no active submode")
	}
}

func TestActivateSubmodeAddsWhenAbsent(t *testing.T) {
	var journal []string
	multi, _, _, _ := threeSubmodes(&journal)
	stack := NewStack()
	stack.Push(multi)

	extra := newTestMode("extra", &journal)
	multi.ActivateSubmode(extra)
	if len(multi.Submodes()) != 4 {
		t.Errorf("Expected extra appended as a submode")
	}
	if multi.ActiveSubmode() != Mode(extra) || !extra.Active() {
		t.Errorf("Expected extra active")
	}

	// Activating the already active submode does nothing
	before := len(journal)
	multi.ActivateSubmode(extra)
	if len(journal) != before {
		t.Errorf("Expected no lifecycle churn, journal %v", journal[before:])
	}
}

func TestInsertSubmode(t *testing.T) {
	var journal []string
	multi, x, _, _ := threeSubmodes(&journal)

	head := newTestMode("head", &journal)
	multi.InsertSubmode(head, 0)
	if multi.Submodes()[0] != Mode(head) {
		t.Errorf("Expected head inserted at index 0")
	}

	mid := newTestMode("mid", &journal)
	if err := multi.InsertSubmodeBefore(mid, x); err != nil {
		t.Fatalf("InsertSubmodeBefore failed: %v", err)
	}
	if multi.Submodes()[1] != Mode(mid) {
		t.Errorf("Expected mid inserted before x, got %v", multi.Submodes())
	}

	stranger := newTestMode("stranger", &journal)
	err := multi.InsertSubmodeBefore(newTestMode("other", &journal), stranger)
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Expected ErrNotFound inserting before a non-member, got %v", err)
	}
}

func TestInsertSubmodeBadIndexPanics(t *testing.T) {
	var journal []string
	multi, _, _, _ := threeSubmodes(&journal)

	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic inserting past the end of the submode list")
		}
		if len(multi.Submodes()) != 3 {
			t.Errorf("Expected submode list untouched, got %d entries", len(multi.Submodes()))
		}
	}()
	multi.InsertSubmode(newTestMode("late", &journal), 4)
}

func TestActivateEmptyMultiPanics(t *testing.T) {
	multi := NewMulti()
	stack := NewStack()

	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic activating a Multi with no submodes")
		}
	}()
	multi.Activate(stack)
}

func TestActivateNextEmptyMultiPanics(t *testing.T) {
	multi := NewMulti()

	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic on ActivateNext with no submodes")
		}
	}()
	multi.ActivateNext(true)
}

func TestMultiStepDelegates(t *testing.T) {
	var journal []string
	multi, x, _, _ := threeSubmodes(&journal)
	stack := NewStack()
	stack.Push(multi)

	stack.Step(16 * time.Millisecond)
	if x.steps != 1 {
		t.Errorf("Expected the active submode stepped through the Multi, got %d", x.steps)
	}
}
