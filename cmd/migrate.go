package cmd

import (
	"shortener-be/internal/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		db, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.RunMigrations(ctx, db, database.DialectPostgres); err != nil {
			return err
		}

		version, err := database.MigrationVersion(ctx, db, database.DialectPostgres)
		if err != nil {
			return err
		}

		Log.Info("migrations applied", zap.Int64("version", version))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(MigrateCmd)
}
