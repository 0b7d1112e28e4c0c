package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"

	"wardrobe-service/database"
	"wardrobe-service/server"
)

func newMigrateCommand() *cobra.Command {
	var version uint

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Move the schema to a version",
		Long: `Migrate the database schema up or down to the given version.
Without --version the schema is brought to the latest version.`,
		Example: `  # Latest schema
  wardrobe migrate

  # Back to the first schema version
  wardrobe migrate --version 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			server.InitLogger()

			ctx := cmd.Context()
			s := database.InitializeDatabase(ctx, cfg, nil)
			defer s.Close()

			if cmd.Flags().Changed("version") {
				if err := s.Migrate(ctx, version); err != nil {
					return err
				}
			}

			current, err := s.SchemaVersion(ctx)
			if err != nil {
				return err
			}

			logger.Info("Schema migrated", zap.Uint("version", current))
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", current)
			return nil
		},
	}

	cmd.Flags().UintVar(&version, "version", 0, "target schema version")

	return cmd
}
