package app

import (
	"context"
	"fmt"
	"testing"
	"time"
)

type countingPlugin struct {
	builds int
}

func (p *countingPlugin) Build(a *App) {
	p.builds++
	a.InsertResource("built")
}

func TestApp_PluginBuildRunsOnce(t *testing.T) {
	p := &countingPlugin{}
	a := New().AddPlugins(p)

	for i := 0; i < 3; i++ {
		if err := a.Step(); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}

	if p.builds != 1 {
		t.Fatalf("Expected 1 build, got %d", p.builds)
	}
	if !HasRes[string](a) {
		t.Fatal("Plugin resource missing")
	}
}

func TestApp_SystemsRunInRegistrationOrder(t *testing.T) {
	var order []string
	a := New().AddSystems(
		func(f *Frame) error { order = append(order, "first"); return nil },
		func(f *Frame) error { order = append(order, "second"); return nil },
		func(f *Frame) error { order = append(order, "third"); return nil },
	)

	if err := a.Step(); err != nil {
		t.Fatalf("Step failed: %v", err)
	}

	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Fatalf("Unexpected order: %v", order)
	}
}

func TestApp_StartupRunsOnceBeforeUpdate(t *testing.T) {
	var startups, updates int
	a := New().
		AddStartupSystems(func(f *Frame) error {
			startups++
			if updates != 0 {
				t.Fatal("Startup ran after an update system")
			}
			return nil
		}).
		AddSystems(func(f *Frame) error { updates++; return nil })

	for i := 0; i < 5; i++ {
		if err := a.Step(); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}

	if startups != 1 {
		t.Fatalf("Expected 1 startup run, got %d", startups)
	}
	if updates != 5 {
		t.Fatalf("Expected 5 update runs, got %d", updates)
	}
}

func TestApp_TickCounter(t *testing.T) {
	var ticks []uint64
	a := New().AddSystems(func(f *Frame) error {
		ticks = append(ticks, f.Tick())
		return nil
	})

	for i := 0; i < 3; i++ {
		if err := a.Step(); err != nil {
			t.Fatalf("Step failed: %v", err)
		}
	}

	if len(ticks) != 3 || ticks[0] != 1 || ticks[1] != 2 || ticks[2] != 3 {
		t.Fatalf("Unexpected ticks: %v", ticks)
	}
}

func TestApp_SystemErrorAbortsRun(t *testing.T) {
	boom := fmt.Errorf("boom")
	a := New(WithFrameRate(240)).AddSystems(func(f *Frame) error {
		return boom
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.Run(ctx); err != boom {
		t.Fatalf("Expected system error from Run, got %v", err)
	}
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	var ticks int
	a := New(WithFrameRate(240)).AddSystems(func(f *Frame) error {
		ticks++
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Expected nil on cancel, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop on cancel")
	}

	if ticks == 0 {
		t.Fatal("Expected at least one tick before cancel")
	}
}

func TestApp_StartupErrorAbortsSetup(t *testing.T) {
	boom := fmt.Errorf("startup boom")
	var updates int
	a := New().
		AddStartupSystems(func(f *Frame) error { return boom }).
		AddSystems(func(f *Frame) error { updates++; return nil })

	if err := a.Step(); err != boom {
		t.Fatalf("Expected startup error, got %v", err)
	}
	if updates != 0 {
		t.Fatal("Update system ran after startup failure")
	}
}
