package guide

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/welcome-anywhere/welcome-anywhere/internal/api"
	"github.com/welcome-anywhere/welcome-anywhere/internal/types"
)

type Handler struct {
	guideService Service
	logger       *slog.Logger
	validate     *validator.Validate
}

func NewHandler(guideService Service, logger *slog.Logger) *Handler {
	return &Handler{
		guideService: guideService,
		logger:       logger,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

// GenerateGuide handles POST requests for the full guide shape.
func (h *Handler) GenerateGuide(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GenerateGuide").Start(r.Context(), "GenerateGuide", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/guide"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GenerateGuide"))
	l.DebugContext(ctx, "Generate guide handler invoked")

	prefs, ok := h.decodePreferences(w, r, l)
	if !ok {
		return
	}

	guide, err := h.guideService.GenerateGuide(ctx, prefs)
	if err != nil {
		l.ErrorContext(ctx, "Failed to generate guide", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to generate guide")
		return
	}

	l.InfoContext(ctx, "Guide generated", slog.String("city", guide.LocationInfo.City))
	api.WriteJSONResponse(w, r, http.StatusOK, guide)
}

// GenerateGuideSummary handles POST requests for the remapped summary shape.
func (h *Handler) GenerateGuideSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GenerateGuideSummary").Start(r.Context(), "GenerateGuideSummary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/guide/summary"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GenerateGuideSummary"))

	prefs, ok := h.decodePreferences(w, r, l)
	if !ok {
		return
	}

	guide, err := h.guideService.GenerateGuide(ctx, prefs)
	if err != nil {
		l.ErrorContext(ctx, "Failed to generate guide", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to generate guide")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, guide.Summary())
}

// Usage answers GET requests on the guide route with a usage hint.
func (h *Handler) Usage(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]string{
		"message": "Send a POST request with your preferences (location, interests, foodPreferences, language, housing, jobField, budget) to generate a guide.",
	})
}

func (h *Handler) decodePreferences(w http.ResponseWriter, r *http.Request, l *slog.Logger) (types.UserPreferences, bool) {
	var req types.GenerateGuideRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return types.UserPreferences{}, false
	}

	prefs := req.Preferences()
	if err := h.validate.Struct(prefs); err != nil {
		l.ErrorContext(r.Context(), "Request validation failed", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, "Missing or invalid preference fields")
		return types.UserPreferences{}, false
	}
	return prefs, true
}
