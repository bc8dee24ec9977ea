//go:build linux

package main

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stagekit/discord-frame/app"
)

// Every frame the TUI drives must stay on the OS thread that created the
// native client, same as App.Run.
func TestRunTUI_FramesStayOnOneThread(t *testing.T) {
	tids := make(map[int]struct{})
	var frames int
	a := app.New(app.WithFrameRate(240)).AddSystems(func(f *app.Frame) error {
		tids[syscall.Gettid()] = struct{}{}
		frames++
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	if err := runTUI(ctx, a, 240, headlessOpts()...); err != nil {
		t.Fatalf("runTUI failed: %v", err)
	}

	if frames == 0 {
		t.Fatal("Expected at least one frame")
	}
	if len(tids) != 1 {
		t.Fatalf("Frames ran on %d OS threads, expected 1", len(tids))
	}
}
