package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"

	"wardrobe-service/database"
	"wardrobe-service/server"
)

func newRebuildCommand() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "rebuild",
		Short: "Drop every table and recreate the schema",
		Long: `Rebuild drops all wardrobe tables, losing every row, and recreates the
latest schema. It refuses to run without --yes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return fmt.Errorf("rebuild deletes all data; pass --yes to continue")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			server.InitLogger()

			ctx := cmd.Context()
			s := database.InitializeDatabase(ctx, cfg, nil)
			defer s.Close()

			if err := s.Rebuild(ctx); err != nil {
				return err
			}

			logger.Info("Database rebuilt", zap.String("path", cfg.DBPath))
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm that all data may be deleted")

	return cmd
}
