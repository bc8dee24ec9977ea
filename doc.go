// Package discordframe plugs the Discord Game SDK into a frame-driven
// application loop.
//
// The library is organized into a few packages with distinct
// responsibilities:
//
//	discordframe/       Root package: the Plugin that wires client and loop
//	├── app/            Frame-driven application shell (builder, systems, resources)
//	├── discord/        Discord Game SDK client over the native shared library
//	└── errors/         Structured error types
//
// # Quick Start
//
//	a := app.New().
//	    AddPlugins(discordframe.Plugin{ID: 1024022533376832512})
//
//	if err := a.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// The plugin adds *discord.Client as a non-send resource. The Discord Game
// SDK is not thread-safe at all, so all operations using the client run on
// the loop thread. The plugin calls RunCallbacks on that thread every frame;
// there is no need to run it manually.
//
// If the client fails to initialize, the failure is logged at error level
// and the app keeps running without the resource. Dependent systems should
// treat absence as a normal state:
//
//	func presence(f *app.Frame) error {
//	    client, ok := app.NonSend[*discord.Client](f)
//	    if !ok {
//	        return nil // Discord unavailable for this process
//	    }
//	    // use client
//	    return nil
//	}
package discordframe
