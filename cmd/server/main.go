package main

import (
	"stockcount-backend/internal/config"
	"stockcount-backend/internal/database"
	"stockcount-backend/internal/logger"
	"stockcount-backend/internal/router"

	"go.uber.org/zap"
)

func main() {
	_ = logger.Init("stockcount")

	cfg := config.Load()
	database.Init(cfg)

	app := router.New(cfg)

	zap.L().Info("server listening", zap.String("port", cfg.HTTPPort))
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		zap.L().Fatal("server stopped", zap.Error(err))
	}
}
