package classify

// Job categories. Priority order matters: the first table entry whose
// keywords match wins, and business is the fallthrough default.
const (
	JobCategoryTech       = "tech"
	JobCategoryHealthcare = "healthcare"
	JobCategoryEducation  = "education"
	JobCategoryBusiness   = "business"
)

var JobTable = KeywordTable{
	{Category: JobCategoryTech, Keywords: []string{"tech", "software", "developer", "engineer", "data", "design"}},
	{Category: JobCategoryHealthcare, Keywords: []string{"health", "medical", "nurse", "doctor", "care"}},
	{Category: JobCategoryEducation, Keywords: []string{"teach", "education", "school", "professor", "instructor"}},
}

// Event categories matched against hobby strings.
const (
	EventCategorySports     = "sports"
	EventCategoryArts       = "arts"
	EventCategoryMusic      = "music"
	EventCategoryTechnology = "technology"
	EventCategoryOutdoor    = "outdoor"
	EventCategoryFood       = "food"
	EventCategoryCommunity  = "community"
)

var EventTable = KeywordTable{
	{Category: EventCategorySports, Keywords: []string{"sport", "basketball", "soccer", "tennis", "fitness"}},
	{Category: EventCategoryArts, Keywords: []string{"art", "paint", "draw", "craft", "theater", "drama"}},
	{Category: EventCategoryMusic, Keywords: []string{"music", "concert", "sing", "instrument", "band"}},
	{Category: EventCategoryTechnology, Keywords: []string{"tech", "code", "program", "computer", "software", "digital"}},
	{Category: EventCategoryOutdoor, Keywords: []string{"outdoor", "hike", "nature", "garden", "camp"}},
	{Category: EventCategoryFood, Keywords: []string{"food", "cook", "bake", "cuisine", "restaurant"}},
	{Category: EventCategoryCommunity, Keywords: []string{"volunteer", "community", "social", "help", "charity", "read"}},
}

var DefaultEventCategories = []string{EventCategoryCommunity, EventCategoryOutdoor}

// Cuisine categories matched against food preference strings.
const (
	CuisineAmerican      = "american"
	CuisineItalian       = "italian"
	CuisineMexican       = "mexican"
	CuisineAsian         = "asian"
	CuisineIndian        = "indian"
	CuisineMiddleEastern = "middleEastern"
	CuisineVegetarian    = "vegetarian"
	CuisineSeafood       = "seafood"
	CuisineBreakfast     = "breakfast"
	CuisineDessert       = "dessert"
	CuisineFastFood      = "fastFood"
	CuisineFineDining    = "fineDining"
)

var CuisineTable = KeywordTable{
	{Category: CuisineVegetarian, Keywords: []string{"vegetarian", "vegan", "gluten-free", "plant"}},
	{Category: CuisineMiddleEastern, Keywords: []string{"halal", "kosher", "middle eastern", "lebanese", "turkish"}},
	{Category: CuisineMexican, Keywords: []string{"mexican", "taco", "tex-mex"}},
	{Category: CuisineItalian, Keywords: []string{"italian", "pizza", "pasta"}},
	{Category: CuisineAsian, Keywords: []string{"chinese", "japanese", "thai", "vietnamese", "korean", "sushi", "asian"}},
	{Category: CuisineIndian, Keywords: []string{"indian", "curry"}},
	{Category: CuisineAmerican, Keywords: []string{"american", "burger", "bbq", "steak", "non-veg"}},
	{Category: CuisineSeafood, Keywords: []string{"seafood", "fish", "oyster"}},
	{Category: CuisineBreakfast, Keywords: []string{"breakfast", "brunch", "cafe", "bakery"}},
	{Category: CuisineDessert, Keywords: []string{"dessert", "ice cream", "chocolate"}},
	{Category: CuisineFastFood, Keywords: []string{"fast food", "sandwich"}},
	{Category: CuisineFineDining, Keywords: []string{"fine dining", "gourmet"}},
}

var DefaultCuisineCategories = []string{CuisineAmerican, CuisineItalian, CuisineAsian}

// Support need identifiers, matching the closed option set collected by the
// intake form. Needs resolve independently of each other, so no keyword
// table exists here; each need maps straight to a service descriptor in the
// guide generator.
const (
	SupportLegal        = "legal"
	SupportMentalHealth = "mental-health"
	SupportESL          = "esl"
	SupportChildcare    = "childcare"
	SupportImmigration  = "immigration"
	SupportFinancial    = "financial"
	SupportHealthcare   = "healthcare"
	SupportCommunity    = "community"
)
