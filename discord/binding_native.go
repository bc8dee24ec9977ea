//go:build darwin || linux

package discord

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/stagekit/discord-frame/errors"
)

// sdkVersion is the DISCORD_VERSION the create params below are laid out for.
const sdkVersion = 3

// Per-manager interface versions from discord_game_sdk.h.
const (
	applicationManagerVersion  = 1
	userManagerVersion         = 1
	imageManagerVersion        = 1
	activityManagerVersion     = 1
	relationshipManagerVersion = 1
	lobbyManagerVersion        = 1
	networkManagerVersion      = 1
	overlayManagerVersion      = 2
	storageManagerVersion      = 1
	storeManagerVersion        = 1
	voiceManagerVersion        = 1
	achievementManagerVersion  = 1
)

// createParams mirrors struct DiscordCreateParams. Field order and widths
// must match the C layout exactly; the SDK reads this struct directly.
type createParams struct {
	clientID            int64
	flags               uint64
	events              uintptr
	eventData           uintptr
	applicationEvents   uintptr
	applicationVersion  int32
	userEvents          uintptr
	userVersion         int32
	imageEvents         uintptr
	imageVersion        int32
	activityEvents      uintptr
	activityVersion     int32
	relationshipEvents  uintptr
	relationshipVersion int32
	lobbyEvents         uintptr
	lobbyVersion        int32
	networkEvents       uintptr
	networkVersion      int32
	overlayEvents       uintptr
	overlayVersion      int32
	storageEvents       uintptr
	storageVersion      int32
	storeEvents         uintptr
	storeVersion        int32
	voiceEvents         uintptr
	voiceVersion        int32
	achievementEvents   uintptr
	achievementVersion  int32
}

// IDiscordCore is a struct of function pointers; these are the slot indexes
// of the entries this binding calls.
const (
	coreSlotDestroy      = 0
	coreSlotRunCallbacks = 1
	coreSlotSetLogHook   = 2
)

// nativeBinding loads the Discord Game SDK shared library and creates cores
// through DiscordCreate.
type nativeBinding struct {
	path string
}

func libraryNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{"discord_game_sdk.dylib", "libdiscord_game_sdk.dylib"}
	}
	return []string{"discord_game_sdk.so", "libdiscord_game_sdk.so"}
}

func (b *nativeBinding) Create(id ClientID, flags CreateFlags) (Core, error) {
	names := libraryNames()
	if b.path != "" {
		names = []string{b.path}
	}

	var (
		lib     uintptr
		lastErr error
	)
	for _, name := range names {
		handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			lastErr = err
			continue
		}
		lib = handle
		break
	}
	if lib == 0 {
		return nil, errors.SDKNotFound(errors.OpLoad, "no Discord Game SDK library found", lastErr)
	}

	addr, err := purego.Dlsym(lib, "DiscordCreate")
	if err != nil {
		_ = purego.Dlclose(lib)
		return nil, errors.SDKNotFound(errors.OpBind, "DiscordCreate symbol missing", err)
	}

	var discordCreate func(version int32, params unsafe.Pointer, result unsafe.Pointer) int32
	purego.RegisterFunc(&discordCreate, addr)

	params := createParams{
		clientID:            int64(id),
		flags:               uint64(flags),
		applicationVersion:  applicationManagerVersion,
		userVersion:         userManagerVersion,
		imageVersion:        imageManagerVersion,
		activityVersion:     activityManagerVersion,
		relationshipVersion: relationshipManagerVersion,
		lobbyVersion:        lobbyManagerVersion,
		networkVersion:      networkManagerVersion,
		overlayVersion:      overlayManagerVersion,
		storageVersion:      storageManagerVersion,
		storeVersion:        storeManagerVersion,
		voiceVersion:        voiceManagerVersion,
		achievementVersion:  achievementManagerVersion,
	}

	var corePtr uintptr
	if res := Result(discordCreate(sdkVersion, unsafe.Pointer(&params), unsafe.Pointer(&corePtr))); res != ResultOk {
		_ = purego.Dlclose(lib)
		return nil, res.Err(errors.OpInit)
	}

	core := &nativeCore{ptr: corePtr, lib: lib}
	purego.RegisterFunc(&core.destroy, coreSlot(corePtr, coreSlotDestroy))
	purego.RegisterFunc(&core.runCallbacks, coreSlot(corePtr, coreSlotRunCallbacks))
	purego.RegisterFunc(&core.setLogHook, coreSlot(corePtr, coreSlotSetLogHook))
	return core, nil
}

// coreSlot reads the function pointer stored at the given slot of the core
// struct.
func coreSlot(core uintptr, slot int) uintptr {
	return *(*uintptr)(unsafe.Pointer(core + uintptr(slot)*unsafe.Sizeof(uintptr(0))))
}

// nativeCore wraps a live IDiscordCore pointer. Confined to the creating
// thread, like the SDK itself.
type nativeCore struct {
	ptr uintptr
	lib uintptr

	destroy      func(core uintptr)
	runCallbacks func(core uintptr) int32
	setLogHook   func(core uintptr, minLevel int32, hookData uintptr, hook uintptr)

	hook LogHook // keeps the active hook reachable
}

func (c *nativeCore) RunCallbacks() error {
	return Result(c.runCallbacks(c.ptr)).Err(errors.OpPoll)
}

func (c *nativeCore) SetLogHook(minLevel LogLevel, fn LogHook) {
	c.hook = fn
	cb := purego.NewCallback(func(hookData uintptr, level int32, message uintptr) uintptr {
		c.hook(LogLevel(level), goString(message))
		return 0
	})
	c.setLogHook(c.ptr, int32(minLevel), 0, cb)
}

func (c *nativeCore) Destroy() {
	c.destroy(c.ptr)
	_ = purego.Dlclose(c.lib)
}

// goString copies a NUL-terminated C string.
func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	var b []byte
	for i := uintptr(0); ; i++ {
		ch := *(*byte)(unsafe.Pointer(p + i))
		if ch == 0 {
			break
		}
		b = append(b, ch)
	}
	return string(b)
}
