package housing

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/welcome-anywhere/welcome-anywhere/internal/api"
	"github.com/welcome-anywhere/welcome-anywhere/internal/types"
)

type Handler struct {
	housingService Service
	logger         *slog.Logger
	validate       *validator.Validate
}

func NewHandler(housingService Service, logger *slog.Logger) *Handler {
	return &Handler{
		housingService: housingService,
		logger:         logger,
		validate:       validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RecommendationsRequest carries the inputs for generated listings.
type RecommendationsRequest struct {
	Location    string  `json:"location" validate:"required,min=2"`
	Budget      float64 `json:"budget" validate:"required,gt=0"`
	HousingType string  `json:"housingType" validate:"required"`
}

// ListProperties returns the full catalogue.
func (h *Handler) ListProperties(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ListProperties").Start(r.Context(), "ListProperties", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/housing/properties"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "ListProperties"))
	l.DebugContext(ctx, "List properties handler invoked")

	properties := h.housingService.FetchProperties(ctx)
	api.WriteJSONResponse(w, r, http.StatusOK, properties)
}

// GetProperty returns a single catalogue entry by ID.
func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GetProperty").Start(r.Context(), "GetProperty", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/housing/properties/{propertyID}"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GetProperty"))

	propertyID, err := uuid.Parse(chi.URLParam(r, "propertyID"))
	if err != nil {
		l.ErrorContext(ctx, "Invalid property ID format", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid property ID format")
		return
	}

	property, err := h.housingService.FetchPropertyByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, ErrPropertyNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Property not found")
			return
		}
		l.ErrorContext(ctx, "Failed to fetch property", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch property")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, property)
}

// SearchProperties filters the catalogue by the q query parameter.
func (h *Handler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("SearchProperties").Start(r.Context(), "SearchProperties", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/housing/search"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "SearchProperties"))

	query := r.URL.Query().Get("q")
	if query == "" {
		l.ErrorContext(ctx, "Missing search query")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}

	results := h.housingService.SearchProperties(ctx, query)
	if results == nil {
		results = []types.Property{}
	}
	api.WriteJSONResponse(w, r, http.StatusOK, results)
}

// Recommendations generates listings matched to a budget and preference.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("Recommendations").Start(r.Context(), "Recommendations", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/housing/recommendations"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "Recommendations"))
	l.DebugContext(ctx, "Housing recommendations handler invoked")

	var req RecommendationsRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.validate.Struct(req); err != nil {
		l.ErrorContext(ctx, "Request validation failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "location, budget and housingType are required")
		return
	}

	properties := h.housingService.RecommendProperties(ctx, req.Location, req.Budget, req.HousingType)
	api.WriteJSONResponse(w, r, http.StatusOK, properties)
}
