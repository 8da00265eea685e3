package main

import (
	"context"
	"log"

	"invoice-dashboard-backend/internal/config"
	"invoice-dashboard-backend/internal/logger"
	"invoice-dashboard-backend/internal/seed"

	"github.com/joho/godotenv"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	appLog := logger.New(cfg.Primary.Env, cfg.Log.Level)

	db, err := config.InitDB(cfg.Database, logger.NewGormLogger(appLog, gormlogger.Warn, cfg.Database.SlowQueryThreshold()))
	if err != nil {
		appLog.Fatal().Err(err).Msg("db error")
	}

	if err := seed.Run(context.Background(), db, appLog); err != nil {
		appLog.Fatal().Err(err).Msg("seed failed")
	}
}
