package app

import (
	"time"
)

// Frame is the per-tick view handed to systems. It is valid only for the
// duration of the system call and must not be retained or sent to another
// goroutine: it is the sole path to non-send resources.
type Frame struct {
	app   *App
	tick  uint64
	delta time.Duration
}

// Tick returns the frame counter, starting at 1 for the first frame.
func (f *Frame) Tick() uint64 {
	return f.tick
}

// Delta returns the time elapsed since the previous frame.
func (f *Frame) Delta() time.Duration {
	return f.delta
}

// InsertResource registers a shared resource from within a system.
func (f *Frame) InsertResource(v any) {
	f.app.resources.insert(v)
}

// InsertNonSend registers a loop-thread-confined resource from within a
// system.
func (f *Frame) InsertNonSend(v any) {
	f.app.nonSend.insert(v)
}
