package main

import (
	"github.com/gin-gonic/gin"

	"strategy-worker/internal/licserver"
	"strategy-worker/internal/util"
	"strategy-worker/pkg/config"
	"strategy-worker/pkg/db"
	"strategy-worker/pkg/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger := util.NewLogger("info")
		logger.Fatal().Msgf(i18n.M().ConfigLoadFailed, err)
	}

	logger := util.NewLogger(cfg.LogLevel)
	i18n.SetLanguage(i18n.Language(cfg.Language))

	logger.Info().Msg(i18n.M().LicenseServerStarting)
	logger.Info().Msgf(i18n.M().UsingDBPath, cfg.LicenseDBPath)

	database, err := db.New(cfg.LicenseDBPath)
	if err != nil {
		logger.Fatal().Msgf(i18n.M().DBInitFailed, err)
	}
	defer database.Close()
	if err := db.ApplyMigrations(database); err != nil {
		logger.Fatal().Msgf(i18n.M().DBInitFailed, err)
	}

	gin.SetMode(gin.ReleaseMode)
	server := licserver.NewServer(database, cfg.LicenseSecret, logger)

	logger.Info().Msgf(i18n.M().ServerListening, cfg.LicensePort)
	if err := server.Start(":" + cfg.LicensePort); err != nil {
		logger.Fatal().Msgf(i18n.M().APIServerError, err)
	}
}
