// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS); AppConfig is everything specific to this application.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // MongoDB max connection pool size
	MongoMinPoolSize uint64 // MongoDB min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: giftmonk-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Google OAuth configuration (optional; password auth works without it)
	GoogleClientID     string
	GoogleClientSecret string

	// BaseURL is the externally visible origin, used to build the OAuth
	// callback URL (e.g., "https://giftmonk.example.com").
	BaseURL string

	// StaticDir is the directory holding the built web client.
	StaticDir string
}
