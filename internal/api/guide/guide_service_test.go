package guide

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/welcome-anywhere/welcome-anywhere/internal/types"
)

type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) Resolve(ctx context.Context, input string) (types.LocationRecord, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(types.LocationRecord), args.Error(1)
}

type MockHousingService struct {
	mock.Mock
}

func (m *MockHousingService) FetchProperties(ctx context.Context) []types.Property {
	args := m.Called(ctx)
	return args.Get(0).([]types.Property)
}

func (m *MockHousingService) FetchPropertyByID(ctx context.Context, id uuid.UUID) (*types.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Property), args.Error(1)
}

func (m *MockHousingService) SearchProperties(ctx context.Context, query string) []types.Property {
	args := m.Called(ctx, query)
	return args.Get(0).([]types.Property)
}

func (m *MockHousingService) RecommendProperties(ctx context.Context, city string, budget float64, housingType string) []types.Property {
	args := m.Called(ctx, city, budget, housingType)
	return args.Get(0).([]types.Property)
}

type MockAIClient struct {
	mock.Mock
}

func (m *MockAIClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPreferences() types.UserPreferences {
	return types.UserPreferences{
		Location:        "75201",
		Interests:       []string{"hiking", "music"},
		FoodPreferences: []string{"vegetarian", "halal"},
		Language:        "Spanish",
		Housing:         "Apartment",
		JobField:        "software engineering",
		Budget:          2000,
		SupportNeeds:    []string{"legal", "esl"},
	}
}

func mockUnits(n int) []types.Property {
	units := make([]types.Property, n)
	for i := range units {
		units[i] = types.Property{ID: uuid.New(), Title: "Unit", Price: 1400, Bedrooms: 1, Bathrooms: 1, SquareFeet: 700, Type: "Apartment"}
	}
	return units
}

func newGuideService(locSvc *MockLocationService, housingSvc *MockHousingService, ai AIClient) *ServiceImpl {
	svc := NewServiceImpl(locSvc, housingSvc, ai, time.Second, testLogger())
	svc.rng = &fixedRand{ints: []int{2, 0, 1, 3, 5, 4}, floats: []float64{0.2, 0.6, 0.9}}
	svc.now = func() time.Time { return time.Date(2026, time.April, 3, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestGenerateGuideMockPath(t *testing.T) {
	locSvc := new(MockLocationService)
	housingSvc := new(MockHousingService)
	locSvc.On("Resolve", mock.Anything, "75201").Return(testLoc, nil)
	housingSvc.On("RecommendProperties", mock.Anything, "Dallas", 2000.0, "Apartment").Return(mockUnits(6))

	svc := newGuideService(locSvc, housingSvc, nil)
	guide, err := svc.GenerateGuide(context.Background(), testPreferences())
	require.NoError(t, err)
	require.NotNil(t, guide)

	assert.Len(t, guide.JobListings, 3)
	assert.Len(t, guide.Events, 3)
	assert.Len(t, guide.Restaurants, 5)
	assert.Len(t, guide.HousingUnits, 6)
	assert.Len(t, guide.HousingLinks, 3)
	assert.Len(t, guide.JobLinks, 3)

	assert.Contains(t, guide.WelcomeMessage, "Welcome to Dallas, Texas!")
	assert.Contains(t, guide.WelcomeMessage, "booming job market, sports culture, and Texas pride")
	assert.Contains(t, guide.HousingInfo, "apartments in Dallas")
	assert.Contains(t, guide.JobSuggestions, "growing tech scene")
	assert.Contains(t, guide.LanguageLearningHelp, "Hispanic Cultural Center")

	require.Len(t, guide.SupportDirectory, 2)
	assert.Equal(t, "Dallas Legal Aid", guide.SupportDirectory[0].Name)
	assert.Equal(t, "Dallas Language Center", guide.SupportDirectory[1].Name)
	assert.Contains(t, guide.SupportDirectory[1].Contact, "75201")

	assert.Equal(t, testLoc, guide.LocationInfo)
	locSvc.AssertExpectations(t)
	housingSvc.AssertExpectations(t)
}

func TestGenerateGuideLocationFailureFallsBackToDefault(t *testing.T) {
	locSvc := new(MockLocationService)
	housingSvc := new(MockHousingService)
	locSvc.On("Resolve", mock.Anything, "75201").Return(types.LocationRecord{}, types.ErrLocationNotFound)
	housingSvc.On("RecommendProperties", mock.Anything, "New York", 2000.0, "Apartment").Return(mockUnits(5))

	svc := newGuideService(locSvc, housingSvc, nil)
	guide, err := svc.GenerateGuide(context.Background(), testPreferences())
	require.NoError(t, err)

	assert.Equal(t, types.DefaultNewYork, guide.LocationInfo)
	assert.Contains(t, guide.WelcomeMessage, "Welcome to New York, New York!")
	assert.Len(t, guide.JobListings, 3)
	assert.Len(t, guide.Events, 3)
	assert.Len(t, guide.Restaurants, 5)
}

func TestGenerateGuideEmptyLocationDefaultsToDallas(t *testing.T) {
	locSvc := new(MockLocationService)
	housingSvc := new(MockHousingService)
	housingSvc.On("RecommendProperties", mock.Anything, "Dallas", 2000.0, "Apartment").Return(mockUnits(5))

	prefs := testPreferences()
	prefs.Location = "   "

	svc := newGuideService(locSvc, housingSvc, nil)
	guide, err := svc.GenerateGuide(context.Background(), prefs)
	require.NoError(t, err)

	assert.Equal(t, types.DefaultDallas, guide.LocationInfo)
	locSvc.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
}

func TestGenerateGuideAICallFailureKeepsTemplatedProse(t *testing.T) {
	locSvc := new(MockLocationService)
	housingSvc := new(MockHousingService)
	ai := new(MockAIClient)
	locSvc.On("Resolve", mock.Anything, "75201").Return(testLoc, nil)
	housingSvc.On("RecommendProperties", mock.Anything, "Dallas", 2000.0, "Apartment").Return(mockUnits(5))
	ai.On("GenerateContent", mock.Anything, mock.Anything).Return("", errors.New("rate limited"))

	svc := newGuideService(locSvc, housingSvc, ai)
	guide, err := svc.GenerateGuide(context.Background(), testPreferences())
	require.NoError(t, err)

	assert.Contains(t, guide.WelcomeMessage, "booming job market")
	assert.Len(t, guide.Restaurants, 5)
	ai.AssertExpectations(t)
}

func TestGenerateGuideAIUnparseableResponseKeepsTemplatedProse(t *testing.T) {
	locSvc := new(MockLocationService)
	housingSvc := new(MockHousingService)
	ai := new(MockAIClient)
	locSvc.On("Resolve", mock.Anything, "75201").Return(testLoc, nil)
	housingSvc.On("RecommendProperties", mock.Anything, "Dallas", 2000.0, "Apartment").Return(mockUnits(5))
	ai.On("GenerateContent", mock.Anything, mock.Anything).Return("Sure! Here is your guide in prose form.", nil)

	svc := newGuideService(locSvc, housingSvc, ai)
	guide, err := svc.GenerateGuide(context.Background(), testPreferences())
	require.NoError(t, err)

	assert.Contains(t, guide.WelcomeMessage, "booming job market")
}

func TestGenerateGuideAIEnrichmentOverridesProse(t *testing.T) {
	locSvc := new(MockLocationService)
	housingSvc := new(MockHousingService)
	ai := new(MockAIClient)
	locSvc.On("Resolve", mock.Anything, "75201").Return(testLoc, nil)
	housingSvc.On("RecommendProperties", mock.Anything, "Dallas", 2000.0, "Apartment").Return(mockUnits(5))

	fenced := "```json\n{\"welcomeMessage\": \"Howdy and welcome to Dallas!\", \"housingInfo\": \"Try Deep Ellum lofts.\"}\n```"
	ai.On("GenerateContent", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return len(prompt) > 0
	})).Return(fenced, nil)

	svc := newGuideService(locSvc, housingSvc, ai)
	guide, err := svc.GenerateGuide(context.Background(), testPreferences())
	require.NoError(t, err)

	assert.Equal(t, "Howdy and welcome to Dallas!", guide.WelcomeMessage)
	assert.Equal(t, "Try Deep Ellum lofts.", guide.HousingInfo)
	assert.Contains(t, guide.JobSuggestions, "growing tech scene", "sections the model omitted keep templated prose")

	assert.Len(t, guide.JobListings, 3)
	assert.Len(t, guide.Events, 3)
	assert.Len(t, guide.Restaurants, 5)
}

func TestGenerateGuidePromptEmbedsMockListings(t *testing.T) {
	locSvc := new(MockLocationService)
	housingSvc := new(MockHousingService)
	ai := new(MockAIClient)
	locSvc.On("Resolve", mock.Anything, "75201").Return(testLoc, nil)
	housingSvc.On("RecommendProperties", mock.Anything, "Dallas", 2000.0, "Apartment").Return(mockUnits(5))

	var captured string
	ai.On("GenerateContent", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.String(1) }).
		Return("{}", nil)

	svc := newGuideService(locSvc, housingSvc, ai)
	guide, err := svc.GenerateGuide(context.Background(), testPreferences())
	require.NoError(t, err)

	for _, job := range guide.JobListings {
		assert.Contains(t, captured, job.Title)
	}
	for _, event := range guide.Events {
		assert.Contains(t, captured, event.Name)
	}
	assert.Contains(t, captured, "Dallas, Texas")
}
