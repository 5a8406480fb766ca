// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/davidmarban/crewdeck/internal/assistant"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for CrewDeck.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: CREWDECK_MONGO_URI, CREWDECK_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "crewdeck", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "session_key", Default: "", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "crewdeck-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Audit logging settings
	{Name: "audit_log_auth", Default: "all", Desc: "Auth event logging: 'all' (db+log), 'db', 'log', or 'off'"},

	// Generative assistant settings
	{Name: "assistant_api_key", Default: "", Desc: "API key for the generative assistant (empty disables it)"},
	{Name: "assistant_base_url", Default: assistant.DefaultBaseURL, Desc: "OpenAI-compatible endpoint base URL"},
	{Name: "assistant_model", Default: assistant.DefaultModel, Desc: "Assistant model name"},

	// Root account bootstrap
	{Name: "root_name", Default: "", Desc: "Display name of the root member (created when the roster is empty)"},
	{Name: "root_password", Default: "", Desc: "Password for the root member"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, CREWDECK_* for app) and
// command-line flags, merging with precedence flags > env > files >
// defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CREWDECK", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		AuditLogAuth: appValues.String("audit_log_auth"),

		AssistantAPIKey:  appValues.String("assistant_api_key"),
		AssistantBaseURL: appValues.String("assistant_base_url"),
		AssistantModel:   appValues.String("assistant_model"),

		RootName:     appValues.String("root_name"),
		RootPassword: appValues.String("root_password"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// CrewDeck validates the MongoDB URI format to catch configuration
// errors early, before attempting to connect, and refuses to start in
// production without a real session key.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if coreCfg.Env == "prod" && len(appCfg.SessionKey) < 32 {
		return fmt.Errorf("session_key must be at least 32 chars in production")
	}

	switch appCfg.AuditLogAuth {
	case "all", "db", "log", "off":
	default:
		return fmt.Errorf("audit_log_auth must be 'all', 'db', 'log' or 'off' (got %q)", appCfg.AuditLogAuth)
	}

	// Bootstrapping a root member requires both halves of the credential.
	if (appCfg.RootName == "") != (appCfg.RootPassword == "") {
		return fmt.Errorf("root_name and root_password must be set together")
	}

	return nil
}
