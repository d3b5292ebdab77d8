package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"result-checker/core/auth"
	"result-checker/core/loader"
	"result-checker/core/logger"
	authmw "result-checker/core/middleware/auth"
	"result-checker/core/middleware/rayid"
	"result-checker/core/stats"
	"result-checker/core/storage"

	"result-checker/feature/archive"
	authfeature "result-checker/feature/auth"
	"result-checker/feature/health"
	resultsfeature "result-checker/feature/results"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "result-checker/docs/swagger"
)

// @title Result Checker API
// @version 1.0
// @description Student result lookup, statistics and bulk reconciliation.
// @host localhost:10000
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the result checker server",
	Long: `Starts the HTTP server and initializes all enabled features.
The store connects in the background; /api/health reports 503 until it is ready.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Start without waiting; requests answer 503 until the store connects.
		s, err := setup(ctx, false, 0)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer s.close()

		logg := s.log.With(zap.String("store", s.backend.Driver()))
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             s.cfg.Server.BodyLimit(),
		})

		// Archive is optional; without object storage its routes are not mounted.
		var archiveClient storage.Client
		if client, err := storage.NewClient(s.cfg.Storage); err != nil {
			logg.Warn("Object storage unavailable, archive disabled", zap.Error(err))
		} else {
			archiveClient = client
		}

		oracle := auth.FromConfig(s.cfg.Auth)
		if oracle.Len() == 0 {
			logg.Warn("No admin emails configured, every login will be refused")
		}
		admin := authmw.New(authmw.Config{ApiKey: s.cfg.Server.ApiKey})
		reconciler := s.reconciler()

		mgr := loader.NewManager()
		mgr.Register(health.NewFeature(s.backend, s.backend.Driver(), logg))
		mgr.Register(authfeature.NewFeature(oracle, logg))
		mgr.Register(resultsfeature.NewFeature(s.backend, reconciler, stats.New(s.backend, logg), admin, logg))
		mgr.Register(archive.NewFeature(archiveClient, s.cfg.Storage, s.backend, reconciler, admin, logg))

		// RayID first so every later log line can carry it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			start := time.Now()
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			l.Info("Request",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Int("status", c.Response().StatusCode()),
				zap.Duration("duration", time.Since(start)),
				zap.String("ip", c.IP()),
			)
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		app.Use(func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "Not Found",
				"message": "Cannot " + c.Method() + " " + c.Path(),
			})
		})

		go func() {
			logg.Info("Starting server", zap.String("port", s.cfg.Server.Port))
			if err := app.Listen(s.cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(s.cfg.Server.ShutdownTimeout()); err != nil {
			logg.Warn("Graceful shutdown incomplete", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
