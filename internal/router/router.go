package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/welcome-anywhere/welcome-anywhere/internal/api/food"
	"github.com/welcome-anywhere/welcome-anywhere/internal/api/guide"
	"github.com/welcome-anywhere/welcome-anywhere/internal/api/housing"
)

// Config contains the handlers needed for the router setup.
type Config struct {
	GuideHandler   *guide.Handler
	FoodHandler    *food.Handler
	HousingHandler *housing.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to be
// applied before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/guide", func(r chi.Router) {
			r.Get("/", cfg.GuideHandler.Usage)
			r.Post("/", cfg.GuideHandler.GenerateGuide)
			r.Post("/summary", cfg.GuideHandler.GenerateGuideSummary)
		})

		r.Post("/food", cfg.FoodHandler.GetFood)

		r.Route("/housing", func(r chi.Router) {
			r.Get("/properties", cfg.HousingHandler.ListProperties)
			r.Get("/properties/{propertyID}", cfg.HousingHandler.GetProperty)
			r.Get("/search", cfg.HousingHandler.SearchProperties)
			r.Post("/recommendations", cfg.HousingHandler.Recommendations)
		})
	})

	return r
}
