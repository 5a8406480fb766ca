// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig owns framework-level settings (ports, TLS, logging,
// CORS, body limits); AppConfig is everything specific to CrewDeck.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: crewdeck-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Audit logging configuration
	AuditLogAuth string // Auth event logging: "all", "db", "log", or "off"

	// Generative assistant configuration (OpenAI-compatible endpoint)
	AssistantAPIKey  string // API key; empty disables the assistant
	AssistantBaseURL string // Endpoint base URL (default: Gemini's compat endpoint)
	AssistantModel   string // Model name (default: gemini-2.5-flash)

	// Root account bootstrap: created on startup when the roster is empty
	// so a fresh install has someone who can sign in and add the team.
	RootName     string
	RootPassword string
}
