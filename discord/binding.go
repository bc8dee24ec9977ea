package discord

// CreateFlags controls how the SDK core behaves when Discord is not running.
type CreateFlags uint64

const (
	// CreateDefault requires the Discord app to be running; construction
	// fails otherwise.
	CreateDefault CreateFlags = 0

	// CreateNoRequireDiscord lets construction succeed without the Discord
	// app; the SDK connects later if it becomes available.
	CreateNoRequireDiscord CreateFlags = 1
)

// LogLevel is the SDK's log severity, passed to log hooks.
type LogLevel int32

const (
	LogError LogLevel = 1
	LogWarn  LogLevel = 2
	LogInfo  LogLevel = 3
	LogDebug LogLevel = 4
)

// String returns the lowercase level name.
func (l LogLevel) String() string {
	switch l {
	case LogError:
		return "error"
	case LogWarn:
		return "warn"
	case LogInfo:
		return "info"
	case LogDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// LogHook receives log lines emitted by the native SDK.
type LogHook func(level LogLevel, message string)

// Core is a live SDK core created by a Binding. Like everything else in the
// native SDK it is confined to the creating thread.
type Core interface {
	// RunCallbacks processes the SDK's pending events once.
	RunCallbacks() error

	// SetLogHook routes the SDK's internal log output to fn for messages at
	// or above minLevel.
	SetLogHook(minLevel LogLevel, fn LogHook)

	// Destroy releases the native core. The Core must not be used afterward.
	Destroy()
}

// Binding is the low-level connector between Client and the native SDK
// library. The default binding loads the shared library at construction
// time; tests inject fakes via WithBinding.
type Binding interface {
	// Create performs the single construction attempt against the external
	// service. Any failure is final for this call; the binding does not
	// retry.
	Create(id ClientID, flags CreateFlags) (Core, error)
}
