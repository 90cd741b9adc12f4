package guide

import (
	"encoding/json"
	"fmt"

	"github.com/welcome-anywhere/welcome-anywhere/internal/types"
)

// aiGuideProse mirrors the JSON shape requested from the model. Only prose
// sections are accepted; structured listings always come from the mock
// generators.
type aiGuideProse struct {
	WelcomeMessage       string `json:"welcomeMessage"`
	HousingInfo          string `json:"housingInfo"`
	JobSuggestions       string `json:"jobSuggestions"`
	EventsOrHobbySpots   string `json:"eventsOrHobbySpots"`
	FoodRecommendations  string `json:"foodRecommendations"`
	LanguageLearningHelp string `json:"languageLearningHelp"`
	SupportServices      string `json:"supportServices"`
}

func parseAIGuideProse(raw string) (*aiGuideProse, error) {
	cleaned := cleanJSONResponse(raw)

	var prose aiGuideProse
	if err := json.Unmarshal([]byte(cleaned), &prose); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrResponseParseFailed, err)
	}
	return &prose, nil
}

// apply overrides guide prose with the model's text, keeping the templated
// fallback for any section the model left empty.
func (p *aiGuideProse) apply(guide *types.GuideResponse) {
	if p.WelcomeMessage != "" {
		guide.WelcomeMessage = p.WelcomeMessage
	}
	if p.HousingInfo != "" {
		guide.HousingInfo = p.HousingInfo
	}
	if p.JobSuggestions != "" {
		guide.JobSuggestions = p.JobSuggestions
	}
	if p.EventsOrHobbySpots != "" {
		guide.EventsOrHobbySpots = p.EventsOrHobbySpots
	}
	if p.FoodRecommendations != "" {
		guide.FoodRecommendations = p.FoodRecommendations
	}
	if p.LanguageLearningHelp != "" {
		guide.LanguageLearningHelp = p.LanguageLearningHelp
	}
	if p.SupportServices != "" {
		guide.SupportServices = p.SupportServices
	}
}
