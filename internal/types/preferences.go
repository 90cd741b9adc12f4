package types

// UserPreferences is the normalized input for guide generation. It is
// immutable for the lifetime of a request.
type UserPreferences struct {
	Location        string   `json:"location" validate:"required,min=2"`
	Interests       []string `json:"interests" validate:"required,min=1"`
	FoodPreferences []string `json:"foodPreferences" validate:"required,min=1"`
	Language        string   `json:"language" validate:"required"`
	Housing         string   `json:"housing" validate:"required"`
	JobField        string   `json:"jobField" validate:"required,min=2"`
	Budget          float64  `json:"budget" validate:"gte=0"`
	SupportNeeds    []string `json:"supportNeeds"`
}

// GenerateGuideRequest is the inbound JSON body for the guide endpoints.
// Each field accepts the current name plus the legacy alias that older
// clients still send (hobbies/jobType/budgetRange/...).
type GenerateGuideRequest struct {
	Location          string   `json:"location"`
	ZipCode           string   `json:"zipCode"`
	Interests         []string `json:"interests"`
	Hobbies           []string `json:"hobbies"`
	FoodPreferences   []string `json:"foodPreferences"`
	Language          string   `json:"language"`
	PreferredLanguage string   `json:"preferredLanguage"`
	Housing           string   `json:"housing"`
	HousingPreference string   `json:"housingPreference"`
	JobField          string   `json:"jobField"`
	JobType           string   `json:"jobType"`
	Budget            *float64 `json:"budget"`
	BudgetRange       *float64 `json:"budgetRange"`
	Support           []string `json:"support"`
	SupportNeeds      []string `json:"supportNeeds"`
}

// Preferences collapses the alias pairs into a UserPreferences value,
// preferring the current field name when both are present.
func (r *GenerateGuideRequest) Preferences() UserPreferences {
	prefs := UserPreferences{
		Location:        firstNonEmpty(r.Location, r.ZipCode),
		Interests:       firstNonNil(r.Interests, r.Hobbies),
		FoodPreferences: r.FoodPreferences,
		Language:        firstNonEmpty(r.Language, r.PreferredLanguage),
		Housing:         firstNonEmpty(r.Housing, r.HousingPreference),
		JobField:        firstNonEmpty(r.JobField, r.JobType),
		SupportNeeds:    firstNonNil(r.Support, r.SupportNeeds),
	}
	if r.Budget != nil {
		prefs.Budget = *r.Budget
	} else if r.BudgetRange != nil {
		prefs.Budget = *r.BudgetRange
	}
	if prefs.SupportNeeds == nil {
		prefs.SupportNeeds = []string{}
	}
	return prefs
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func firstNonNil(a, b []string) []string {
	if len(a) > 0 {
		return a
	}
	return b
}
