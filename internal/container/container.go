package container

import (
	"context"
	"errors"
	"log/slog"

	"github.com/welcome-anywhere/welcome-anywhere/config"
	"github.com/welcome-anywhere/welcome-anywhere/internal/api/food"
	generativeAI "github.com/welcome-anywhere/welcome-anywhere/internal/api/generative_ai"
	"github.com/welcome-anywhere/welcome-anywhere/internal/api/guide"
	"github.com/welcome-anywhere/welcome-anywhere/internal/api/housing"
	"github.com/welcome-anywhere/welcome-anywhere/internal/api/location"
)

// Container holds all application dependencies.
type Container struct {
	Config         *config.Config
	Logger         *slog.Logger
	GuideHandler   *guide.Handler
	FoodHandler    *food.Handler
	HousingHandler *housing.Handler
}

// NewContainer initializes and returns a new dependency container. A missing
// model credential disables AI enrichment but is not an error.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	locationService := location.NewServiceImpl(cfg.Upstream.Geocoder.BaseURL, cfg.Upstream.Geocoder.Timeout, logger)
	housingService := housing.NewServiceImpl(logger)

	var aiClient guide.AIClient
	client, err := generativeAI.NewAIClient(ctx, cfg.Upstream.Gemini.Model)
	switch {
	case err == nil:
		aiClient = client
		logger.Info("AI enrichment enabled", slog.String("model", cfg.Upstream.Gemini.Model))
	case errors.Is(err, generativeAI.ErrNoCredential):
		logger.Info("AI enrichment disabled, serving templated guides only")
	default:
		logger.Error("Failed to initialize AI client", slog.Any("error", err))
		return nil, err
	}

	guideService := guide.NewServiceImpl(locationService, housingService, aiClient, cfg.Upstream.Gemini.Timeout, logger)

	return &Container{
		Config:         cfg,
		Logger:         logger,
		GuideHandler:   guide.NewHandler(guideService, logger),
		FoodHandler:    food.NewHandler(locationService, logger),
		HousingHandler: housing.NewHandler(housingService, logger),
	}, nil
}
