package mode

import (
	"errors"
	"testing"
	"time"

	"github.com/tallow-engine/tallow/core"
)

// testMode journals its lifecycle and counts steps.
type testMode struct {
	Base
	name    string
	journal *[]string
	steps   int
}

func newTestMode(name string, journal *[]string) *testMode {
	m := &testMode{name: name, journal: journal}
	m.Enter = func() { *journal = append(*journal, "+"+name) }
	m.Exit = func() { *journal = append(*journal, "-"+name) }
	return m
}

func (m *testMode) Step(dt time.Duration) {
	m.steps++
}

func TestModeStackLIFO(t *testing.T) {
	var journal []string
	stack := NewStack()
	a := newTestMode("a", &journal)
	b := newTestMode("b", &journal)

	stack.Push(a)
	stack.Push(b)

	if stack.Current() != Mode(b) {
		t.Errorf("Expected b on top")
	}
	if a.Active() || !b.Active() {
		t.Errorf("Expected only the top mode active: a=%v b=%v", a.Active(), b.Active())
	}

	popped, err := stack.Pop()
	if err != nil {
		t.Fatalf("Pop failed: %v", err)
	}
	if popped != Mode(b) {
		t.Errorf("Expected Pop to return b")
	}
	if b.Active() {
		t.Errorf("Expected b deactivated after pop")
	}
	if !a.Active() || stack.Current() != Mode(a) {
		t.Errorf("Expected a reactivated on top")
	}
}

func TestPushDeactivatesCurrent(t *testing.T) {
	var journal []string
	stack := NewStack()
	stack.Push(newTestMode("a", &journal))
	stack.Push(newTestMode("b", &journal))

	want := []string{"+a", "-a", "+b"}
	if len(journal) != len(want) {
		t.Fatalf("Expected journal %v, got %v", want, journal)
	}
	for i := range want {
		if journal[i] != want[i] {
			t.Errorf("Expected journal %v, got %v", want, journal)
			break
		}
	}
}

func TestSwapSemantics(t *testing.T) {
	var journal []string
	stack := NewStack()
	var lastPopped Mode
	stack.OnLastModePop = func(m Mode) { lastPopped = m }

	a := newTestMode("a", &journal)
	b := newTestMode("b", &journal)
	stack.Push(a)

	old, err := stack.Swap(b)
	if err != nil {
		t.Fatalf("Swap failed: %v", err)
	}
	if old != Mode(a) {
		t.Errorf("Expected Swap to return a")
	}
	if a.Active() {
		t.Errorf("Expected a deactivated, not reactivated later")
	}
	if stack.Current() != Mode(b) || !b.Active() {
		t.Errorf("Expected b active on top")
	}
	// Swap never fires the last-pop hook, even though the stack was
	// momentarily empty
	if lastPopped != nil {
		t.Errorf("Expected no OnLastModePop during swap")
	}
}

func TestPopEmptyStack(t *testing.T) {
	stack := NewStack()
	if _, err := stack.Pop(); !errors.Is(err, core.ErrEmptyStack) {
		t.Errorf("Expected ErrEmptyStack, got %v", err)
	}
	if _, err := stack.Swap(newTestMode("x", new([]string))); !errors.Is(err, core.ErrEmptyStack) {
		t.Errorf("Expected ErrEmptyStack on swap, got %v", err)
	}
}

func TestOnLastModePop(t *testing.T) {
	var journal []string
	stack := NewStack()
	var lastPopped Mode
	stack.OnLastModePop = func(m Mode) { lastPopped = m }

	a := newTestMode("a", &journal)
	stack.Push(a)
	popped, err := stack.Pop()
	if err != nil {
		t.Fatalf("Pop failed: %v", err)
	}
	if lastPopped != popped {
		t.Errorf("Expected OnLastModePop to receive the popped mode")
	}
	if stack.Current() != nil {
		t.Errorf("Expected empty stack to have no current mode")
	}
}

func TestRemoveTopBehavesAsPop(t *testing.T) {
	var journal []string
	stack := NewStack()
	a := newTestMode("a", &journal)
	b := newTestMode("b", &journal)
	stack.Push(a)
	stack.Push(b)

	stack.Remove(b)
	if !a.Active() || stack.Current() != Mode(a) {
		t.Errorf("Expected removing the top to reactivate the mode beneath")
	}
}

func TestRemoveBuried(t *testing.T) {
	var journal []string
	stack := NewStack()
	a := newTestMode("a", &journal)
	b := newTestMode("b", &journal)
	stack.Push(a)
	stack.Push(b)

	stack.Remove(a)
	if stack.Len() != 1 || stack.Current() != Mode(b) {
		t.Errorf("Expected only b left on top")
	}
	if !b.Active() {
		t.Errorf("Expected no activation side effects removing a buried mode")
	}

	// Removing a mode that is not on the stack is a silent no-op
	stack.Remove(a)
	if stack.Len() != 1 {
		t.Errorf("Expected stack unchanged after removing absent mode")
	}
}

func TestStepPumpsOnlyCurrent(t *testing.T) {
	var journal []string
	stack := NewStack()
	a := newTestMode("a", &journal)
	b := newTestMode("b", &journal)
	stack.Push(a)
	stack.Push(b)

	stack.Step(16 * time.Millisecond)
	if a.steps != 0 {
		t.Errorf("Expected buried mode not stepped")
	}
	if b.steps != 1 {
		t.Errorf("Expected top mode stepped once, got %d", b.steps)
	}

	// Empty stack pump is a no-op
	empty := NewStack()
	empty.Step(time.Millisecond)
}

func TestActivateIdempotent(t *testing.T) {
	var journal []string
	stack := NewStack()
	a := newTestMode("a", &journal)

	a.Activate(stack)
	a.Activate(stack)
	if len(journal) != 1 {
		t.Errorf("Expected Enter hook once, journal %v", journal)
	}

	a.Deactivate(stack)
	a.Deactivate(stack)
	if len(journal) != 2 {
		t.Errorf("Expected Exit hook once, journal %v", journal)
	}
	if a.Manager() != stack {
		t.Errorf("Expected manager recorded from activation")
	}
}
