package guide

import (
	"fmt"
	"strings"

	"github.com/welcome-anywhere/welcome-anywhere/internal/types"
)

// buildGuidePrompt assembles the enrichment prompt. The already-generated
// mock job and event listings are embedded so the model writes prose that
// stays consistent with the structured data returned alongside it.
func buildGuidePrompt(prefs types.UserPreferences, loc types.LocationRecord, jobs []types.JobListing, events []types.Event) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`You are a relocation assistant writing a personalized city guide for a newcomer moving to %s, %s.

NEWCOMER PREFERENCES:
    - Location: %s
    - Interests: [%s]
    - Food Preferences: [%s]
    - Preferred Language: %s
    - Housing Preference: %s
    - Job Field: %s
    - Monthly Budget: $%.0f`,
		loc.City, loc.State, loc.FullAddress,
		strings.Join(prefs.Interests, ", "), strings.Join(prefs.FoodPreferences, ", "),
		prefs.Language, prefs.Housing, prefs.JobField, prefs.Budget))

	if len(prefs.SupportNeeds) > 0 {
		sb.WriteString(fmt.Sprintf(`
    - Support Needs: [%s]`, strings.Join(prefs.SupportNeeds, ", ")))
	}

	sb.WriteString("\n\nJOB LISTINGS ALREADY SELECTED FOR THIS GUIDE:")
	for _, job := range jobs {
		sb.WriteString(fmt.Sprintf("\n    - %s at %s (%s)", job.Title, job.Company, job.Salary))
	}

	sb.WriteString("\n\nUPCOMING EVENTS ALREADY SELECTED FOR THIS GUIDE:")
	for _, event := range events {
		sb.WriteString(fmt.Sprintf("\n    - %s on %s at %s", event.Name, event.Date, event.Location))
	}

	sb.WriteString(fmt.Sprintf(`

Write warm, specific guidance that references %s by name. Respond with ONLY a valid JSON object, no markdown formatting, in exactly this shape:
{
    "welcomeMessage": "...",
    "housingInfo": "...",
    "jobSuggestions": "...",
    "eventsOrHobbySpots": "...",
    "foodRecommendations": "...",
    "languageLearningHelp": "...",
    "supportServices": "..."
}`, loc.City))

	return sb.String()
}
