package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	appMigrations "github.com/yigit/coursedesk/internal/app/migrations"
	"github.com/yigit/coursedesk/internal/bootstrap"
)

var migrateActions = []string{"up", "down", "status"}

func newMigrateCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Manage the database schema",
		Long:      "Apply pending migrations (up, the default), roll back the latest one (down) or print their state (status).",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: migrateActions,
		RunE: func(cmd *cobra.Command, args []string) error {
			action := "up"
			if len(args) == 1 {
				action = args[0]
			}

			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
			if err != nil {
				return err
			}
			database, err := bootstrap.OpenDatabase(cfg, lgr)
			if err != nil {
				return err
			}
			defer database.Close()

			migrator := appMigrations.NewMigrator(database.Pool, lgr)
			defer migrator.Close()

			if err := runMigration(cmd.Context(), migrator, action); err != nil {
				return err
			}

			version, err := migrator.Version(cmd.Context())
			if err != nil {
				return err
			}
			lgr.Info().Str("action", action).Int64("version", version).Msg("Migration finished")
			return nil
		},
	}
}

func runMigration(ctx context.Context, m *appMigrations.Migrator, action string) error {
	switch action {
	case "up":
		return m.Up(ctx)
	case "down":
		return m.Down(ctx)
	case "status":
		return m.Status(ctx)
	default:
		return fmt.Errorf("unknown migrate action %q", action)
	}
}
