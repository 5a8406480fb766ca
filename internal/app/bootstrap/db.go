// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/davidmarban/crewdeck/internal/app/store/activity"
	"github.com/davidmarban/crewdeck/internal/app/store/agenda"
	"github.com/davidmarban/crewdeck/internal/app/store/assets"
	"github.com/davidmarban/crewdeck/internal/app/store/audit"
	"github.com/davidmarban/crewdeck/internal/app/store/branditems"
	"github.com/davidmarban/crewdeck/internal/app/store/chat"
	"github.com/davidmarban/crewdeck/internal/app/store/noteschecks"
	"github.com/davidmarban/crewdeck/internal/app/store/projects"
	"github.com/davidmarban/crewdeck/internal/app/store/proposals"
	"github.com/davidmarban/crewdeck/internal/app/store/team"
	"github.com/davidmarban/crewdeck/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnsureSchema creates the indexes every collection store relies on.
// Index creation is idempotent, so this runs unconditionally at startup.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	idxCtx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"assets", assets.New(db).EnsureIndexes},
		{"brand_items", branditems.New(db).EnsureIndexes},
		{"team_members", team.New(db).EnsureIndexes},
		{"projects", projects.New(db).EnsureIndexes},
		{"activity_logs", activity.New(db).EnsureIndexes},
		{"chat_messages", chat.New(db).EnsureIndexes},
		{"notes_checks", noteschecks.New(db).EnsureIndexes},
		{"agenda_items", agenda.New(db).EnsureIndexes},
		{"proposals", proposals.New(db).EnsureIndexes},
		{"audit_events", audit.New(db).EnsureIndexes},
	}

	for _, step := range steps {
		if err := step.fn(idxCtx); err != nil {
			logger.Error("index creation failed", zap.String("collection", step.name), zap.Error(err))
			return fmt.Errorf("ensure indexes for %s: %w", step.name, err)
		}
	}

	logger.Info("MongoDB indexes ensured", zap.Int("collections", len(steps)))
	return nil
}
