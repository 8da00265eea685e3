package main

import (
	"log"
	"time"

	"invoice-dashboard-backend/internal/config"
	"invoice-dashboard-backend/internal/logger"
	"invoice-dashboard-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
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

	gormLevel := gormlogger.Warn
	if cfg.Primary.IsLocal() {
		gormLevel = gormlogger.Info
	}
	db, err := config.InitDB(cfg.Database, logger.NewGormLogger(appLog, gormLevel, cfg.Database.SlowQueryThreshold()))
	if err != nil {
		appLog.Fatal().Err(err).Msg("db error")
	}

	if !cfg.Primary.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins(),
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, appLog)

	appLog.Info().Str("port", cfg.Server.Port).Msg("starting server")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		appLog.Fatal().Err(err).Msg("server error")
	}
}
