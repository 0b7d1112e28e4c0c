package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"

	"wardrobe-service/database"
	"wardrobe-service/server"
)

func newBackupCommand() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a consistent copy of the database",
		Example: `  wardrobe backup --out wardrobe-backup.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outFile == "" {
				return fmt.Errorf("--out is required")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			server.InitLogger()

			ctx := cmd.Context()
			s := database.InitializeDatabase(ctx, cfg, nil)
			defer s.Close()

			if err := s.Backup(ctx, outFile); err != nil {
				return err
			}

			logger.Info("Backup written", zap.String("out", outFile))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "backup output file (must not exist)")

	return cmd
}
