package router

import (
	"github.com/SpencerMelo/showroom-backend-api/internal/handlers"
	"github.com/SpencerMelo/showroom-backend-api/internal/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewRouter создаёт и настраивает маршрутизатор
func NewRouter(posts *handlers.PostHandler, brands *handlers.BrandHandler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.LoggingMiddleware(logger)) // Подключаем логирование
	r.Use(middleware.GzipMiddleware)            // Gzip-сжатие
	r.Use(middleware.CORSMiddleware)

	r.Route("/v1/post", func(r chi.Router) {
		r.Get("/", posts.List)
		// Одиночные операции
		r.Post("/", posts.CreateOne)
		r.Get("/{id}", posts.GetOne)
		r.Patch("/{id}", posts.UpdateOne)
		r.Delete("/{id}", posts.DeleteOne)
		// Пакетные операции
		r.Post("/bulk", posts.CreateMany)
		r.Delete("/bulk", posts.DeleteMany)
	})

	r.Route("/v1/brand", func(r chi.Router) {
		r.Get("/", brands.List)
		// Одиночные операции
		r.Post("/", brands.CreateOne)
		r.Get("/{id}", brands.GetOne)
		r.Patch("/{id}", brands.UpdateOne)
		r.Delete("/{id}", brands.DeleteOne)
		// Пакетные операции
		r.Post("/bulk", brands.CreateMany)
		r.Delete("/bulk", brands.DeleteMany)
	})

	return r
}
