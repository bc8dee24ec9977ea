//go:build !darwin && !linux

package discord

import (
	"github.com/stagekit/discord-frame/errors"
)

// nativeBinding is not implemented on this platform.
// TODO: load discord_game_sdk.dll via LoadLibraryW on windows.
type nativeBinding struct {
	path string
}

func (b *nativeBinding) Create(id ClientID, flags CreateFlags) (Core, error) {
	return nil, errors.Unsupported(errors.OpLoad, "discord game sdk binding not available on this platform")
}
