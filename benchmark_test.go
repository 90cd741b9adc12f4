package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/welcome-anywhere/welcome-anywhere/internal/api/food"
	"github.com/welcome-anywhere/welcome-anywhere/internal/api/guide"
	"github.com/welcome-anywhere/welcome-anywhere/internal/api/housing"
	"github.com/welcome-anywhere/welcome-anywhere/internal/router"
	"github.com/welcome-anywhere/welcome-anywhere/internal/types"
)

// staticLocationService avoids network calls in benchmarks.
type staticLocationService struct {
	record types.LocationRecord
}

func (s *staticLocationService) Resolve(_ context.Context, _ string) (types.LocationRecord, error) {
	return s.record, nil
}

// BenchmarkSuite provides benchmark testing for the API
type BenchmarkSuite struct {
	router       chi.Router
	guideService guide.Service
	body         []byte
}

// setupBenchmarkSuite initializes the benchmark test suite
func setupBenchmarkSuite() *BenchmarkSuite {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	locationService := &staticLocationService{
		record: types.NewLocationRecord("Dallas", "Texas", "TX", "75201"),
	}
	housingService := housing.NewServiceImpl(logger)
	guideService := guide.NewServiceImpl(locationService, housingService, nil, time.Second, logger)

	r := router.SetupRouter(&router.Config{
		GuideHandler:   guide.NewHandler(guideService, logger),
		FoodHandler:    food.NewHandler(locationService, logger),
		HousingHandler: housing.NewHandler(housingService, logger),
	})

	body, _ := json.Marshal(types.UserPreferences{
		Location:        "75201",
		Interests:       []string{"hiking", "live music"},
		FoodPreferences: []string{"vegetarian"},
		Language:        "Spanish",
		Housing:         "apartment",
		JobField:        "software engineering",
		Budget:          1800,
		SupportNeeds:    []string{"legal"},
	})

	return &BenchmarkSuite{router: r, guideService: guideService, body: body}
}

func benchmarkPreferences() types.UserPreferences {
	return types.UserPreferences{
		Location:        "75201",
		Interests:       []string{"hiking", "live music"},
		FoodPreferences: []string{"vegetarian", "halal"},
		Language:        "Spanish",
		Housing:         "apartment",
		JobField:        "software engineering",
		Budget:          1800,
		SupportNeeds:    []string{"legal", "esl"},
	}
}

// BenchmarkGuideGeneration measures end-to-end guide assembly at the
// service level, without HTTP overhead.
func BenchmarkGuideGeneration(b *testing.B) {
	s := setupBenchmarkSuite()
	prefs := benchmarkPreferences()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.guideService.GenerateGuide(ctx, prefs); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGuideEndpoint measures the full HTTP path through the router.
func BenchmarkGuideEndpoint(b *testing.B) {
	s := setupBenchmarkSuite()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/guide", bytes.NewReader(s.body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", w.Code)
		}
	}
}

func BenchmarkJobListingGeneration(b *testing.B) {
	loc := types.NewLocationRecord("Dallas", "Texas", "TX", "75201")
	rng := guide.SystemRand{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		guide.GenerateJobListings(rng, loc, "software engineering")
	}
}

func BenchmarkEventGeneration(b *testing.B) {
	loc := types.NewLocationRecord("Dallas", "Texas", "TX", "75201")
	rng := guide.SystemRand{}
	now := time.Now()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		guide.GenerateEvents(rng, now, loc, []string{"hiking", "live music"})
	}
}

func BenchmarkRestaurantGeneration(b *testing.B) {
	loc := types.NewLocationRecord("Dallas", "Texas", "TX", "75201")
	rng := guide.SystemRand{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		guide.GenerateRestaurants(rng, loc, []string{"vegetarian", "halal"})
	}
}

func BenchmarkHousingRecommendations(b *testing.B) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := housing.NewServiceImpl(logger)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		service.RecommendProperties(ctx, "Dallas", 1800, "apartment")
	}
}

// BenchmarkGuideJSONSerialization isolates response encoding cost.
func BenchmarkGuideJSONSerialization(b *testing.B) {
	s := setupBenchmarkSuite()
	g, err := s.guideService.GenerateGuide(context.Background(), benchmarkPreferences())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := json.Marshal(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRequestRouting(b *testing.B) {
	s := setupBenchmarkSuite()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
	}
}
