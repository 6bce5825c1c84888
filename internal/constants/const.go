package constants

const (
	DefaultRunAddr        = ":8080"
	DefaultTokenTTLHours  = 24
	DefaultLogLevel       = "info"
	DefaultMigrationsPath = "file://migrations"
	DefaultJWTSecret      = "supersecretkey"
)

// MaxInputLength bounds the raw card number accepted at the HTTP and CLI
// boundaries, before any trimming.
const MaxInputLength = 64

const MaxBatchSize = 100
