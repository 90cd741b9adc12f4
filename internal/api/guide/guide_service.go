// Package guide implements the preference-to-recommendation engine: keyword
// classification, templated mock content generation and the optional
// AI-enriched prose path with its degrade-to-mock fallback chain.
package guide

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/welcome-anywhere/welcome-anywhere/app/observability/metrics"
	"github.com/welcome-anywhere/welcome-anywhere/internal/api/housing"
	"github.com/welcome-anywhere/welcome-anywhere/internal/api/location"
	"github.com/welcome-anywhere/welcome-anywhere/internal/types"
)

// AIClient generates narrative text from a prompt. Satisfied by the Gemini
// wrapper; nil disables the enrichment path entirely.
type AIClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Service produces a complete city guide from validated preferences.
type Service interface {
	GenerateGuide(ctx context.Context, prefs types.UserPreferences) (*types.GuideResponse, error)
}

var _ Service = (*ServiceImpl)(nil)

// ServiceImpl orchestrates the resolver, classifiers and generators.
type ServiceImpl struct {
	logger          *slog.Logger
	locationService location.Service
	housingService  housing.Service
	aiClient        AIClient
	aiTimeout       time.Duration

	rng Rand
	now func() time.Time
}

func NewServiceImpl(locationService location.Service, housingService housing.Service, aiClient AIClient, aiTimeout time.Duration, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:          logger,
		locationService: locationService,
		housingService:  housingService,
		aiClient:        aiClient,
		aiTimeout:       aiTimeout,
		rng:             SystemRand{},
		now:             time.Now,
	}
}

// GenerateGuide always returns a fully populated guide for valid input. The
// mock path has no failure modes, so an error escapes only if guide assembly
// itself panics.
func (s *ServiceImpl) GenerateGuide(ctx context.Context, prefs types.UserPreferences) (guide *types.GuideResponse, err error) {
	ctx, span := otel.Tracer("GuideService").Start(ctx, "GenerateGuide")
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			span.SetStatus(codes.Error, "Guide assembly panicked")
			guide = nil
			err = fmt.Errorf("%w: %v", types.ErrGuideGenerationFailed, r)
		}
	}()

	start := s.now()
	l := s.logger.With(slog.String("location", prefs.Location))

	loc := s.resolveOrDefault(ctx, prefs.Location)
	span.SetAttributes(attribute.String("guide.city", loc.City), attribute.String("guide.state", loc.StateCode))

	guide = s.buildMockGuide(ctx, loc, prefs)

	if s.aiClient != nil {
		if aiErr := s.enrichWithAI(ctx, guide, prefs, loc); aiErr != nil {
			l.WarnContext(ctx, "AI enrichment failed, keeping templated prose", slog.Any("error", aiErr))
			if m := metrics.Get(); m != nil {
				m.AIFallbacksTotal.Add(ctx, 1)
			}
		}
	}

	if m := metrics.Get(); m != nil {
		m.GuideRequestsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("city", loc.City)))
		m.GuideDurationSeconds.Record(ctx, time.Since(start).Seconds())
	}

	span.SetStatus(codes.Ok, "Guide generated")
	return guide, nil
}

// resolveOrDefault never fails: empty input falls back to downtown Dallas,
// a resolution error falls back to New York.
func (s *ServiceImpl) resolveOrDefault(ctx context.Context, input string) types.LocationRecord {
	if strings.TrimSpace(input) == "" {
		return types.DefaultDallas
	}

	loc, err := s.locationService.Resolve(ctx, input)
	if err != nil {
		s.logger.WarnContext(ctx, "Location resolution failed, using default location",
			slog.String("input", input), slog.Any("error", err))
		if m := metrics.Get(); m != nil {
			m.UpstreamErrorsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("upstream", "geocoder")))
		}
		return types.DefaultNewYork
	}
	return loc
}

func (s *ServiceImpl) buildMockGuide(ctx context.Context, loc types.LocationRecord, prefs types.UserPreferences) *types.GuideResponse {
	jobs := GenerateJobListings(s.rng, loc, prefs.JobField)
	events := GenerateEvents(s.rng, s.now(), loc, prefs.Interests)
	restaurants := GenerateRestaurants(s.rng, loc, prefs.FoodPreferences)
	units := s.housingService.RecommendProperties(ctx, loc.City, prefs.Budget, prefs.Housing)

	return &types.GuideResponse{
		WelcomeMessage:       welcomeMessage(loc),
		HousingInfo:          housingProse(loc, prefs.Housing, prefs.Budget),
		JobSuggestions:       jobProse(loc, prefs.JobField),
		EventsOrHobbySpots:   eventsProse(loc, prefs.Interests),
		FoodRecommendations:  foodProse(loc, prefs.FoodPreferences),
		LanguageLearningHelp: languageProse(loc, prefs.Language),
		SupportServices:      supportProse(loc),
		JobListings:          jobs,
		Events:               events,
		Restaurants:          restaurants,
		HousingUnits:         units,
		SupportDirectory:     supportDirectory(loc, prefs.SupportNeeds),
		HousingLinks:         housingLinks(loc),
		JobLinks:             jobLinks(loc, prefs.JobField),
		LocationInfo:         loc,
	}
}

// enrichWithAI asks the model for prose sections and overrides the templated
// text on success. Structured listings are never taken from the model.
func (s *ServiceImpl) enrichWithAI(ctx context.Context, guide *types.GuideResponse, prefs types.UserPreferences, loc types.LocationRecord) error {
	ctx, span := otel.Tracer("GuideService").Start(ctx, "EnrichWithAI")
	defer span.End()

	if s.aiTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.aiTimeout)
		defer cancel()
	}

	prompt := buildGuidePrompt(prefs, loc, guide.JobListings, guide.Events)

	raw, err := s.aiClient.GenerateContent(ctx, prompt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Model call failed")
		if m := metrics.Get(); m != nil {
			m.UpstreamErrorsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("upstream", "model")))
		}
		return fmt.Errorf("%w: %v", types.ErrUpstreamCallFailed, err)
	}

	prose, err := parseAIGuideProse(raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Model response unparseable")
		return err
	}

	prose.apply(guide)
	span.SetStatus(codes.Ok, "Guide enriched")
	return nil
}
