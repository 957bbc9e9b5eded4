package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"shortener-be/internal/cache"
	"shortener-be/internal/database"
	"shortener-be/internal/metrics"
	"shortener-be/internal/repository"
	"shortener-be/internal/router"
	"shortener-be/internal/service"
	"shortener-be/internal/shortcode"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var skipMigrations bool

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Connects to PostgreSQL, applies pending migrations, and serves the
shorten, redirect, list, QR code, health and metrics endpoints until
SIGINT or SIGTERM is received.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		db, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer db.Close() // Close connection when program exits

		if !skipMigrations {
			if err := database.RunMigrations(ctx, db, database.DialectPostgres); err != nil {
				return err
			}
			Log.Info("migrations applied")
		}

		// Redis is optional - continue without cache if it is unavailable
		var cacheClient cache.Cache
		if Cfg.RedisURL != "" {
			cacheClient, err = cache.NewRedisCache(ctx, Cfg.RedisURL, Cfg.CacheTTL)
			if err != nil {
				Log.Warn("continuing without cache", zap.Error(err))
				cacheClient = nil
			} else {
				Log.Info("connected to Redis cache")
				defer cacheClient.Close()
			}
		}

		gen, err := shortcode.NewGenerator(Cfg.Shortener.CodeLength)
		if err != nil {
			return err
		}

		m := metrics.NewMetrics()
		urlRepo := repository.NewURLRepository(db)
		urlService := service.NewURLService(urlRepo, gen, Cfg.Shortener.MaxAttempts, cacheClient, m, Log)

		gin.SetMode(Cfg.Server.GinMode)
		handler := router.SetupRouter(router.Deps{
			URLService: urlService,
			Metrics:    m,
			Logger:     Log,
			BaseURL:    Cfg.BaseURL,
		})

		srv := &http.Server{
			Addr:         ":" + Cfg.Server.Port,
			Handler:      handler,
			ReadTimeout:  Cfg.Server.ReadTimeout,
			WriteTimeout: Cfg.Server.WriteTimeout,
			IdleTimeout:  2 * Cfg.Server.ReadTimeout,
		}

		serveErr := make(chan error, 1)
		go func() {
			Log.Info("server starting", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serveErr <- err
			}
			close(serveErr)
		}()

		select {
		case err := <-serveErr:
			return err
		case <-ctx.Done():
		}

		Log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), Cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}

		Log.Info("server stopped")
		return nil
	},
}

func init() {
	ServeCmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations on startup")
	RootCmd.AddCommand(ServeCmd)
}
