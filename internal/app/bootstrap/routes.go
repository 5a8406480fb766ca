// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	activitylogsfeature "github.com/davidmarban/crewdeck/internal/app/features/activitylogs"
	agendaitemsfeature "github.com/davidmarban/crewdeck/internal/app/features/agendaitems"
	assetsfeature "github.com/davidmarban/crewdeck/internal/app/features/assets"
	assistantfeature "github.com/davidmarban/crewdeck/internal/app/features/assistant"
	authapifeature "github.com/davidmarban/crewdeck/internal/app/features/authapi"
	branditemsfeature "github.com/davidmarban/crewdeck/internal/app/features/branditems"
	chatfeature "github.com/davidmarban/crewdeck/internal/app/features/chat"
	healthfeature "github.com/davidmarban/crewdeck/internal/app/features/health"
	noteschecksfeature "github.com/davidmarban/crewdeck/internal/app/features/noteschecks"
	projectsfeature "github.com/davidmarban/crewdeck/internal/app/features/projects"
	proposalsfeature "github.com/davidmarban/crewdeck/internal/app/features/proposals"
	teamfeature "github.com/davidmarban/crewdeck/internal/app/features/team"
	"github.com/davidmarban/crewdeck/internal/app/store/audit"
	"github.com/davidmarban/crewdeck/internal/app/system/auditlog"
	"github.com/davidmarban/crewdeck/internal/app/system/auth"
	"github.com/davidmarban/crewdeck/internal/assistant"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. CrewDeck's surface is a JSON API under
// /api (one feature router per collection, plus auth and the assistant),
// a health endpoint, and static files for the dashboard front end.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger); err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return nil, err
	}

	db := deps.MongoDatabase

	// Auth events go to zap, Mongo, or both depending on config.
	auditLogger := auditlog.New(audit.New(db), logger, auditlog.Config{
		Auth: appCfg.AuditLogAuth,
	})

	// The assistant client is nil-safe: with no API key it answers with a
	// fixed "not configured" reply instead of calling out.
	gen := assistant.New(appCfg.AssistantAPIKey, appCfg.AssistantBaseURL, appCfg.AssistantModel, logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(auth.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	r.Route("/api", func(api chi.Router) {
		api.Mount("/auth", authapifeature.Routes(authapifeature.NewHandler(db, auditLogger, logger)))

		api.Mount("/assets", assetsfeature.Routes(assetsfeature.NewHandler(db, logger)))
		api.Mount("/brand-items", branditemsfeature.Routes(branditemsfeature.NewHandler(db, logger)))
		api.Mount("/team", teamfeature.Routes(teamfeature.NewHandler(db, logger)))
		api.Mount("/projects", projectsfeature.Routes(projectsfeature.NewHandler(db, logger)))
		api.Mount("/activity-logs", activitylogsfeature.Routes(activitylogsfeature.NewHandler(db, logger)))
		api.Mount("/chat", chatfeature.Routes(chatfeature.NewHandler(db, logger)))
		api.Mount("/notes-checks", noteschecksfeature.Routes(noteschecksfeature.NewHandler(db, logger)))
		api.Mount("/agenda-items", agendaitemsfeature.Routes(agendaitemsfeature.NewHandler(db, logger)))
		api.Mount("/proposals", proposalsfeature.Routes(proposalsfeature.NewHandler(db, logger)))

		api.Mount("/assistant", assistantfeature.Routes(assistantfeature.NewHandler(gen, logger)))
	})

	return r, nil
}
