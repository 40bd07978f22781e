package logger

const (
	ContextKeyRequestID = "request_id"

	// DefaultServiceName identifies this service in log attributes.
	DefaultServiceName = "tamapet-api"
)

// Recognized level strings ("warning" is accepted as an alias).
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Output formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Attribute keys attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
