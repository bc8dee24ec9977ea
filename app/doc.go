// Package app is a small frame-driven application shell: a builder that
// collects plugins, resources and systems, and a loop that runs the systems
// once per frame.
//
// # Quick Start
//
//	a := app.New(app.WithFrameRate(60)).
//	    AddPlugins(myPlugin{}).
//	    AddSystems(func(f *app.Frame) error {
//	        // runs once per frame
//	        return nil
//	    })
//
//	if err := a.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Resources
//
// Resources are singletons keyed by their dynamic type; inserting a second
// value of the same type replaces the first. Shared resources are readable
// from anywhere via Res. Non-send resources hold values that must never
// leave the loop thread (native handles, GL contexts); they are reachable
// only through the *Frame handed to systems, or during plugin Build, both of
// which execute solely on the loop goroutine.
//
// # Thread Safety
//
// Run pins its goroutine to an OS thread and executes plugin Builds, startup
// systems and per-frame systems there, one after another. Systems never run
// concurrently with each other, so non-send resources need no locking. The
// App builder itself is meant to be configured from a single goroutine
// before Run.
//
// # Errors
//
// A system returning a non-nil error aborts the loop; Run returns that
// error. Cancelling the context is the normal way to stop and returns nil.
package app
