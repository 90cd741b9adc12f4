package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferencesAliasMerge(t *testing.T) {
	budget := 1500.0
	req := GenerateGuideRequest{
		ZipCode:           "75201",
		Hobbies:           []string{"music"},
		FoodPreferences:   []string{"halal"},
		PreferredLanguage: "Spanish",
		HousingPreference: "Shared Room",
		JobType:           "nursing",
		BudgetRange:       &budget,
		Support:           []string{"legal"},
	}

	prefs := req.Preferences()
	assert.Equal(t, "75201", prefs.Location)
	assert.Equal(t, []string{"music"}, prefs.Interests)
	assert.Equal(t, "Spanish", prefs.Language)
	assert.Equal(t, "Shared Room", prefs.Housing)
	assert.Equal(t, "nursing", prefs.JobField)
	assert.Equal(t, 1500.0, prefs.Budget)
	assert.Equal(t, []string{"legal"}, prefs.SupportNeeds)
}

func TestPreferencesCurrentNamesWinOverAliases(t *testing.T) {
	budget := 2000.0
	legacyBudget := 900.0
	req := GenerateGuideRequest{
		Location:          "Austin",
		ZipCode:           "10001",
		Interests:         []string{"hiking"},
		Hobbies:           []string{"chess"},
		Language:          "English",
		PreferredLanguage: "French",
		JobField:          "teaching",
		JobType:           "finance",
		Budget:            &budget,
		BudgetRange:       &legacyBudget,
	}

	prefs := req.Preferences()
	assert.Equal(t, "Austin", prefs.Location)
	assert.Equal(t, []string{"hiking"}, prefs.Interests)
	assert.Equal(t, "English", prefs.Language)
	assert.Equal(t, "teaching", prefs.JobField)
	assert.Equal(t, 2000.0, prefs.Budget)
}

func TestPreferencesSupportNeedsNeverNil(t *testing.T) {
	prefs := (&GenerateGuideRequest{Location: "Dallas"}).Preferences()
	assert.NotNil(t, prefs.SupportNeeds)
	assert.Empty(t, prefs.SupportNeeds)
}

func TestGuideSummaryRemap(t *testing.T) {
	guide := GuideResponse{
		WelcomeMessage:       "hello",
		HousingInfo:          "housing",
		JobSuggestions:       "jobs",
		EventsOrHobbySpots:   "events",
		FoodRecommendations:  "food",
		LanguageLearningHelp: "language",
		SupportServices:      "support",
	}

	summary := guide.Summary()
	assert.Equal(t, "hello", summary.WelcomeMessage)
	assert.Equal(t, "housing", summary.Housing)
	assert.Equal(t, "jobs", summary.Jobs)
	assert.Equal(t, "events", summary.Events)
	assert.Equal(t, "food", summary.Food)
	assert.Equal(t, "language", summary.LanguageHelp)
	assert.Equal(t, "support", summary.Support)
}
