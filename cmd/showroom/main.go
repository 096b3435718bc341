package main

import (
	"net/http"

	"github.com/SpencerMelo/showroom-backend-api/internal/config"
	"github.com/SpencerMelo/showroom-backend-api/internal/database"
	"github.com/SpencerMelo/showroom-backend-api/internal/handlers"
	"github.com/SpencerMelo/showroom-backend-api/internal/repositories"
	"github.com/SpencerMelo/showroom-backend-api/internal/router"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Инициализация конфигурации
	cfg := config.NewConfig()

	logger.Info("Establishing database connection")
	db, err := database.NewDB(cfg, logger)
	if err != nil {
		logger.Fatal("Unable to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.DatabaseDSN, cfg.PgMigrationsPath, logger); err != nil {
		logger.Fatal("Unable to apply migrations", zap.Error(err))
	}

	postHandler := handlers.NewPostHandler(repositories.NewPostRepository(db, logger), logger)
	brandHandler := handlers.NewBrandHandler(repositories.NewBrandRepository(db, logger), logger)

	r := router.NewRouter(postHandler, brandHandler, logger)

	logger.Info("Сервер запущен на ", zap.String("address", cfg.ServerAddress))
	if err := http.ListenAndServe(cfg.ServerAddress, r); err != nil {
		logger.Fatal("Ошибка при запуске сервера: ", zap.Error(err))
	}
}
