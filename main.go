package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"strategy-worker/internal/alert"
	"strategy-worker/internal/api"
	"strategy-worker/internal/events"
	"strategy-worker/internal/strategy"
	"strategy-worker/internal/util"
	"strategy-worker/internal/worker"
	"strategy-worker/pkg/config"
	"strategy-worker/pkg/i18n"
	"strategy-worker/pkg/license"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger := util.NewLogger("info")
		logger.Fatal().Msgf(i18n.M().ConfigLoadFailed, err)
	}

	logger := util.NewLogger(cfg.LogLevel)
	i18n.SetLanguage(i18n.Language(cfg.Language))

	logger.Info().Msg(i18n.M().Starting)
	logger.Info().Msgf(i18n.M().ConfigLoaded, cfg.WorkerPort)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Refuse to run with a bad token; a missing token only downgrades to a
	// warning so local development works without a license server.
	licenses := license.NewManager(cfg.LicenseSecret)
	if cfg.LicenseToken != "" {
		if err := licenses.Validate(cfg.LicenseToken); err != nil {
			logger.Fatal().Msgf(i18n.M().LicenseInvalid, err)
		}
		logger.Info().Msg(i18n.M().LicenseValid)
	} else {
		logger.Warn().Msg(i18n.M().LicenseMissing)
	}

	registry, err := buildRegistry(cfg.StrategiesFile, logger)
	if err != nil {
		logger.Fatal().Msgf(i18n.M().StrategyConfigLoadFailed, err)
	}
	for _, info := range registry.List() {
		logger.Info().Msgf(i18n.M().StrategyLoaded, info.Name, info.Symbol)
	}

	bus := events.NewBus()

	notifier := alert.New(cfg.TelegramBotToken, cfg.TelegramChatID, logger)
	alertMon := &alert.Monitor{Bus: bus, Notifier: notifier, Log: logger}
	alertMon.Start(ctx)

	version := os.Getenv("APP_VERSION")
	if version == "" {
		version = "dev"
	}

	gin.SetMode(gin.ReleaseMode)
	monitorSrv := api.NewServer(bus, registry, logger, version)
	go func() {
		logger.Info().Msgf(i18n.M().MonitorListening, cfg.MonitorPort)
		if err := monitorSrv.Start(":" + cfg.MonitorPort); err != nil {
			logger.Fatal().Msgf(i18n.M().APIServerError, err)
		}
	}()

	svc := worker.NewService(registry, bus, logger)
	grpcSrv := worker.NewServer(svc, worker.Options{
		Concurrency: cfg.WorkerConcurrency,
		RequireAuth: cfg.WorkerRequireAuth,
		Licenses:    licenses,
		Log:         logger,
	})
	go func() {
		logger.Info().Msgf(i18n.M().ServerListening, cfg.WorkerPort)
		if err := worker.Serve(grpcSrv, ":"+cfg.WorkerPort); err != nil {
			logger.Fatal().Err(err).Msg("grpc server stopped")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	logger.Info().Msg(i18n.M().ShuttingDown)
	grpcSrv.GracefulStop()
}

// buildRegistry loads the strategies file, falling back to the built-in
// default grid when the file does not exist.
func buildRegistry(path string, logger zerolog.Logger) (*strategy.Registry, error) {
	configs, err := strategy.LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Msgf(i18n.M().StrategyConfigMissing, path)
		return strategy.DefaultRegistry()
	}
	if err != nil {
		return nil, err
	}
	return strategy.BuildRegistry(configs)
}
