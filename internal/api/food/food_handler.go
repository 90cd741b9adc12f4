// Package food serves the standalone restaurant suggestion endpoint, a
// lighter variant of the full guide that only needs a ZIP code.
package food

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/welcome-anywhere/welcome-anywhere/internal/api"
	"github.com/welcome-anywhere/welcome-anywhere/internal/api/guide"
	"github.com/welcome-anywhere/welcome-anywhere/internal/api/location"
	"github.com/welcome-anywhere/welcome-anywhere/internal/types"
)

// FoodRequest is the inbound body; only zipCode is required.
type FoodRequest struct {
	ZipCode         string   `json:"zipCode"`
	FoodPreferences []string `json:"foodPreferences"`
}

type Handler struct {
	locationService location.Service
	logger          *slog.Logger
	rng             guide.Rand
}

func NewHandler(locationService location.Service, logger *slog.Logger) *Handler {
	return &Handler{
		locationService: locationService,
		logger:          logger,
		rng:             guide.SystemRand{},
	}
}

// GetFood returns 5 restaurant suggestions for the ZIP code. A resolution
// failure degrades to the default location instead of failing the request.
func (h *Handler) GetFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GetFood").Start(r.Context(), "GetFood", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/food"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetFood"))
	l.DebugContext(ctx, "Get food handler invoked")

	var req FoodRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.ZipCode == "" {
		l.ErrorContext(ctx, "ZIP code is required")
		api.ErrorResponse(w, r, http.StatusBadRequest, "ZIP code is required")
		return
	}

	loc, err := h.locationService.Resolve(ctx, req.ZipCode)
	if err != nil {
		l.WarnContext(ctx, "Location resolution failed, using default location",
			slog.String("zipCode", req.ZipCode), slog.Any("error", err))
		loc = types.DefaultNewYork
	}

	restaurants := guide.GenerateRestaurants(h.rng, loc, req.FoodPreferences)

	l.InfoContext(ctx, "Food recommendations generated", slog.String("city", loc.City))
	api.WriteJSONResponse(w, r, http.StatusOK, restaurants)
}
