package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"shortener-be/internal/config"
	"shortener-be/internal/database"
	"shortener-be/internal/logger"
	"shortener-be/internal/repository"
	"shortener-be/internal/service"
	"shortener-be/internal/shortcode"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Cfg is loaded once before any subcommand runs
var Cfg *config.Config

// Log is the process logger, built from Cfg
var Log *zap.Logger

var RootCmd = &cobra.Command{
	Use:   "shortener",
	Short: "URL shortener service",
	Long: `shortener maps long URLs to short codes and redirects visitors
from a short code to the original URL.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		Cfg = cfg
		Log = logger.New(logger.Config{
			Level:   cfg.LogLevel,
			File:    cfg.LogFile,
			Service: "shortener",
		})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if Log != nil {
			_ = Log.Sync()
		}
	},
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := RootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openDatabase(ctx context.Context) (*sql.DB, error) {
	db, err := database.NewConnection(ctx, Cfg.Database, Log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// newURLService wires the allocation service without a cache; the CLI
// commands talk to the store directly.
func newURLService(db *sql.DB) (service.URLService, error) {
	gen, err := shortcode.NewGenerator(Cfg.Shortener.CodeLength)
	if err != nil {
		return nil, err
	}
	repo := repository.NewURLRepository(db)
	return service.NewURLService(repo, gen, Cfg.Shortener.MaxAttempts, nil, nil, Log), nil
}
