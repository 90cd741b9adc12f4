package types

// JobListing is a synthesized job posting for the resolved city.
type JobListing struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// Event is a synthesized local event matched to the user's interests.
type Event struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Link        string `json:"link"`
}

// Restaurant is a synthesized dining suggestion.
type Restaurant struct {
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Rating     float64 `json:"rating"`
	Type       string  `json:"type"`
	Link       string  `json:"link"`
	PhotoURL   string  `json:"photoUrl,omitempty"`
	PriceRange string  `json:"priceRange,omitempty"`
}

// ResourceLink is an external search link (housing portals, job boards).
type ResourceLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// SupportService describes one support resource matched to a stated need.
type SupportService struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Contact     string `json:"contact,omitempty"`
}

// GuideResponse is the full city guide returned for one request. Entities
// are created fresh per invocation and never persisted.
type GuideResponse struct {
	WelcomeMessage       string           `json:"welcomeMessage"`
	HousingInfo          string           `json:"housingInfo"`
	JobSuggestions       string           `json:"jobSuggestions"`
	EventsOrHobbySpots   string           `json:"eventsOrHobbySpots"`
	FoodRecommendations  string           `json:"foodRecommendations"`
	LanguageLearningHelp string           `json:"languageLearningHelp"`
	SupportServices      string           `json:"supportServices"`
	JobListings          []JobListing     `json:"jobListings"`
	Events               []Event          `json:"events"`
	Restaurants          []Restaurant     `json:"restaurants"`
	HousingUnits         []Property       `json:"housingUnits"`
	SupportDirectory     []SupportService `json:"supportDirectory"`
	HousingLinks         []ResourceLink   `json:"housingLinks"`
	JobLinks             []ResourceLink   `json:"jobLinks"`
	LocationInfo         LocationRecord   `json:"locationInfo"`
}

// GuideSummary is the remapped shape served by the summary endpoint variant.
type GuideSummary struct {
	WelcomeMessage string `json:"welcomeMessage"`
	Housing        string `json:"housing"`
	Jobs           string `json:"jobs"`
	Events         string `json:"events"`
	Food           string `json:"food"`
	LanguageHelp   string `json:"languageHelp"`
	Support        string `json:"support"`
}

// Summary remaps a full guide into the summary variant shape.
func (g *GuideResponse) Summary() GuideSummary {
	return GuideSummary{
		WelcomeMessage: g.WelcomeMessage,
		Housing:        g.HousingInfo,
		Jobs:           g.JobSuggestions,
		Events:         g.EventsOrHobbySpots,
		Food:           g.FoodRecommendations,
		LanguageHelp:   g.LanguageLearningHelp,
		Support:        g.SupportServices,
	}
}
