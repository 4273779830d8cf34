package log

const (
	ModeProduction = "production"
	ModeDebug      = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

// RequestIDKey is the context key under which the HTTP layer stores the request ID.
type RequestIDKey struct{}
