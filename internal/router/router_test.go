package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/welcome-anywhere/welcome-anywhere/internal/api/food"
	"github.com/welcome-anywhere/welcome-anywhere/internal/api/guide"
	"github.com/welcome-anywhere/welcome-anywhere/internal/api/housing"
	"github.com/welcome-anywhere/welcome-anywhere/internal/types"
)

type stubGuideService struct{}

func (stubGuideService) GenerateGuide(ctx context.Context, prefs types.UserPreferences) (*types.GuideResponse, error) {
	return &types.GuideResponse{WelcomeMessage: "Welcome!"}, nil
}

type stubLocationService struct{}

func (stubLocationService) Resolve(ctx context.Context, input string) (types.LocationRecord, error) {
	return types.NewLocationRecord("Dallas", "Texas", "TX", "75201"), nil
}

func newTestRouter() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	housingService := housing.NewServiceImpl(logger)

	return SetupRouter(&Config{
		GuideHandler:   guide.NewHandler(stubGuideService{}, logger),
		FoodHandler:    food.NewHandler(stubLocationService{}, logger),
		HousingHandler: housing.NewHandler(housingService, logger),
	})
}

func TestRouterPing(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestRouterGuideRoutes(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/guide", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := `{"location":"75201","interests":["music"],"foodPreferences":["thai"],"language":"English","housing":"Apartment","jobField":"software","budget":1500}`
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/guide", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var guideResp types.GuideResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &guideResp))
	assert.Equal(t, "Welcome!", guideResp.WelcomeMessage)
}

func TestRouterHousingRoutes(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/housing/properties", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var properties []types.Property
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &properties))
	require.NotEmpty(t, properties)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/housing/properties/"+properties[0].ID.String(), nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/housing/search?q=studio", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterFoodRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/food", strings.NewReader(`{"zipCode":"75201"}`))
	newTestRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var restaurants []types.Restaurant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &restaurants))
	assert.Len(t, restaurants, 5)
}

func TestRouterUnknownRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
