package bootstrap

// Log messages for startup and shutdown
const (
	LogMsgShuttingDownServer    = "Shutting down server..."
	LogMsgServerForcedShutdown  = "Server forced to shutdown"
	LogMsgServerStopped         = "Server stopped"
	LogMsgServiceShutdownFailed = " service shutdown failed"
)

// MaxLogFiles is how many session logs survive cleanup
const MaxLogFiles = 9
