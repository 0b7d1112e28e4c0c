package commands

import (
	"context"

	"github.com/spf13/cobra"

	"wardrobe-service/config"
)

var envFile string

// Execute runs the root command
func Execute(ctx context.Context) error {
	return newRootCommand().ExecuteContext(ctx)
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wardrobe",
		Short: "Wardrobe Service - closet, outfit and designer catalogue backend",
		Long: `Wardrobe Service stores users, designers, their designs, clothing items,
outfits and favourites in a single SQLite database and serves them over a
JSON API.

Settings come from the environment (WARDROBE_*), optionally seeded from a
.env file.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment")

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newRebuildCommand())
	rootCmd.AddCommand(newBackupCommand())

	return rootCmd
}

func loadConfig() (config.App, error) {
	return config.Load(envFile)
}
