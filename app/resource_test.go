package app

import (
	"testing"

	"pgregory.net/rapid"
)

type testHandle struct {
	name string
}

func TestRegistry_InsertAndGet(t *testing.T) {
	a := New()
	a.InsertNonSend(&testHandle{name: "one"})

	if !HasNonSend[*testHandle](a) {
		t.Fatal("Expected non-send handle to be registered")
	}
	if HasNonSend[*App](a) {
		t.Fatal("Unexpected resource of unrelated type")
	}

	var got *testHandle
	a.AddSystems(func(f *Frame) error {
		got, _ = NonSend[*testHandle](f)
		return nil
	})
	if err := a.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if got == nil || got.name != "one" {
		t.Fatalf("Expected handle 'one', got %v", got)
	}
}

func TestRegistry_OverwriteSameType(t *testing.T) {
	a := New()
	a.InsertNonSend(&testHandle{name: "one"})
	a.InsertNonSend(&testHandle{name: "two"})

	if a.nonSend.len() != 1 {
		t.Fatalf("Expected 1 registered value, got %d", a.nonSend.len())
	}

	a.AddSystems(func(f *Frame) error {
		h, ok := NonSend[*testHandle](f)
		if !ok || h.name != "two" {
			t.Fatalf("Expected replacement handle 'two', got %v", h)
		}
		return nil
	})
	if err := a.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
}

func TestRegistry_AbsenceIsNotAnError(t *testing.T) {
	a := New()
	a.AddSystems(func(f *Frame) error {
		if _, ok := NonSend[*testHandle](f); ok {
			t.Fatal("Expected absence")
		}
		if _, ok := Res[int](f); ok {
			t.Fatal("Expected absence")
		}
		return nil
	})
	if err := a.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
}

func TestRegistry_SharedAndNonSendAreSeparate(t *testing.T) {
	a := New()
	a.InsertResource(&testHandle{name: "shared"})

	if HasNonSend[*testHandle](a) {
		t.Fatal("Shared insert leaked into non-send registry")
	}
	if !HasRes[*testHandle](a) {
		t.Fatal("Shared resource missing")
	}
}

func TestFrame_InsertDuringSystem(t *testing.T) {
	a := New()
	a.AddStartupSystems(func(f *Frame) error {
		f.InsertNonSend(&testHandle{name: "late"})
		return nil
	})

	if err := a.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if !HasNonSend[*testHandle](a) {
		t.Fatal("Expected handle inserted from system")
	}
}

// Property: N steps run every per-frame system exactly N times, never more,
// never less.
func TestApp_StepCountProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 200).Draw(t, "steps")
		systems := rapid.IntRange(1, 5).Draw(t, "systems")

		counts := make([]int, systems)
		a := New()
		for i := 0; i < systems; i++ {
			i := i
			a.AddSystems(func(f *Frame) error {
				counts[i]++
				return nil
			})
		}

		for s := 0; s < n; s++ {
			if err := a.Step(); err != nil {
				t.Fatalf("Step failed: %v", err)
			}
		}

		for i, c := range counts {
			if c != n {
				t.Fatalf("System %d ran %d times, expected %d", i, c, n)
			}
		}
	})
}
