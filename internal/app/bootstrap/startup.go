// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/davidmarban/crewdeck/internal/app/store/team"
	"github.com/davidmarban/crewdeck/internal/app/system/timeouts"
	"github.com/davidmarban/crewdeck/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := ensureRootMember(ctx, appCfg, deps, logger); err != nil {
		return err
	}
	return nil
}

// ensureRootMember creates an admin member from root_name/root_password when
// the roster is empty, so a fresh install has someone who can sign in and
// add the rest of the team. On a non-empty roster it does nothing.
func ensureRootMember(ctx context.Context, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.RootName == "" {
		return nil
	}

	store := team.New(deps.MongoDatabase)

	opCtx, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	members, err := store.List(opCtx)
	if err != nil {
		return fmt.Errorf("list team members: %w", err)
	}
	if len(members) > 0 {
		return nil
	}

	created, err := store.Create(opCtx, models.TeamMember{
		Name:     appCfg.RootName,
		Password: appCfg.RootPassword,
		Role:     "Admin",
		IsAdmin:  true,
	})
	if err != nil {
		return fmt.Errorf("create root member: %w", err)
	}

	logger.Info("created root member for empty roster",
		zap.String("member_id", created.ID),
		zap.String("name", created.Name),
	)
	return nil
}
