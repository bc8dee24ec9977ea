package discordframe

import (
	"go.uber.org/zap"

	"github.com/stagekit/discord-frame/app"
	"github.com/stagekit/discord-frame/discord"
)

// Plugin wires a Discord Game SDK client into an app. It wraps the client
// identifier and nothing else; the value is consumed once during Build.
type Plugin struct {
	// ID is the application's client identifier from the Discord developer
	// portal.
	ID discord.ClientID

	// Connect overrides the client constructor. Nil means discord.New.
	Connect func(discord.ClientID) (*discord.Client, error)
}

// Build attempts the one client construction. On success the client is
// registered as a non-send resource and a per-frame system keeps its
// callbacks running. On failure the error is logged once and the app runs
// on without the resource; there is no retry.
func (p Plugin) Build(a *app.App) {
	connect := p.Connect
	if connect == nil {
		connect = func(id discord.ClientID) (*discord.Client, error) {
			return discord.New(id)
		}
	}

	client, err := connect(p.ID)
	if err != nil {
		a.Logger().Error("failed to initialize Discord client", zap.Error(err))
		return
	}

	a.InsertNonSend(client).AddSystems(runCallbacks)
}

// runCallbacks drives the client's event processing once per frame. Errors
// from the SDK pass through untouched; the loop's own convention decides
// what happens to them.
func runCallbacks(f *app.Frame) error {
	client, ok := app.NonSend[*discord.Client](f)
	if !ok {
		return nil
	}
	return client.RunCallbacks()
}
