// Package discord wraps the native Discord Game SDK client.
//
// # Quick Start
//
//	client, err := discord.New(1024022533376832512)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	for {
//	    if err := client.RunCallbacks(); err != nil {
//	        log.Fatal(err)
//	    }
//	    time.Sleep(time.Second / 60)
//	}
//
// New loads the Discord Game SDK shared library (discord_game_sdk.so,
// .dylib or .dll) and creates a core with the given application client ID.
// RunCallbacks processes the SDK's pending inbound and outbound events and
// must be called regularly, typically once per frame.
//
// # Thread Safety
//
// The native SDK gives no concurrency guarantees at all. A Client must only
// ever be used from the thread that created it. There is no internal locking;
// confinement is the caller's responsibility. The app package's non-send
// resource slot provides exactly that confinement for frame-driven programs.
//
// # Testing
//
// The Binding interface is the seam between Client and the native library.
// WithBinding injects a fake so client behavior can be tested without the
// SDK installed:
//
//	client, err := discord.New(id, discord.WithBinding(fakeBinding))
package discord
