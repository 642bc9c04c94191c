package state

import "testing"

func TestStateLifecycle(t *testing.T) {
	m := NewMemoryManager()

	if m.InProgress(1) {
		t.Fatal("fresh chat should be idle")
	}
	if got := m.GetState(1); got != StateIdle {
		t.Fatalf("GetState = %q, want idle", got)
	}

	m.SetState(1, State("add_name"))
	if !m.InProgress(1) {
		t.Fatal("chat should be in progress")
	}
	if got := m.GetState(1); got != State("add_name") {
		t.Fatalf("GetState = %q", got)
	}

	m.Clear(1)
	if m.InProgress(1) {
		t.Fatal("cleared chat should be idle")
	}
}

func TestChatsAreIndependent(t *testing.T) {
	m := NewMemoryManager()
	m.SetState(1, State("add_name"))
	if m.InProgress(2) {
		t.Fatal("state in chat 1 must not leak into chat 2")
	}
}

func TestTempData(t *testing.T) {
	m := NewMemoryManager()

	if _, ok := m.GetTemp(1, "missing"); ok {
		t.Fatal("unexpected temp value")
	}

	m.SetTemp(1, "field", "name")
	v, ok := m.GetTemp(1, "field")
	if !ok || v.(string) != "name" {
		t.Fatalf("GetTemp = %v, %t", v, ok)
	}

	m.ClearTemp(1, "field")
	if _, ok := m.GetTemp(1, "field"); ok {
		t.Fatal("temp value should be cleared")
	}

	m.SetTemp(1, "field", "info")
	m.Clear(1)
	if _, ok := m.GetTemp(1, "field"); ok {
		t.Fatal("Clear should drop temp data")
	}
}
