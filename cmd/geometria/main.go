package main

import (
	"context"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/rs/zerolog"

	"github.com/deppfellow/geometria-api/internal/config"
	"github.com/deppfellow/geometria-api/internal/geometry"
	"github.com/deppfellow/geometria-api/internal/handler"
	"github.com/deppfellow/geometria-api/internal/logger"
	"github.com/deppfellow/geometria-api/internal/router"
	"github.com/deppfellow/geometria-api/internal/server"
	"github.com/deppfellow/geometria-api/internal/service"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLogger.Fatal().Err(err).Msg("failed to load config")
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	services := service.NewServices(srv)
	handlers := handler.NewHandlers(srv, services)
	r := router.NewRouter(srv, handlers)

	srv.SetupHTTPServer(r)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	printStartupInfo(log, cfg)

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				log.Info().Msg("graceful shutdown initiated")
				return srv.Shutdown(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Info().Int("exit_code", exitCode).Msg("server exited")
	os.Exit(exitCode)
}

func printStartupInfo(log zerolog.Logger, cfg *config.Config) {
	base := "http://localhost:" + cfg.Server.Port

	log.Info().
		Str("name", cfg.API.Name).
		Str("version", cfg.API.Version).
		Str("env", cfg.Primary.Env).
		Str("addr", ":"+cfg.Server.Port).
		Msg("API ready")

	log.Info().Str("url", base+handler.DocsPath).Msg("documentation available")
	log.Info().Str("url", base+handler.APIPrefix).Int("endpoints", len(geometry.Catalog())).Msg("calculation API available")
}
