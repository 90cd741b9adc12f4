package guide

import (
	"fmt"
	"math"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/welcome-anywhere/welcome-anywhere/internal/api/classify"
	"github.com/welcome-anywhere/welcome-anywhere/internal/types"
)

// cuisineTypes lists the specific cuisines available within each category.
var cuisineTypes = map[string][]string{
	classify.CuisineAmerican:      {"American", "Burgers", "BBQ", "Southern", "Diner", "Steakhouse"},
	classify.CuisineItalian:       {"Italian", "Pizza", "Pasta", "Mediterranean"},
	classify.CuisineMexican:       {"Mexican", "Tex-Mex", "Latin American", "Tacos"},
	classify.CuisineAsian:         {"Chinese", "Japanese", "Thai", "Vietnamese", "Korean", "Sushi"},
	classify.CuisineIndian:        {"Indian", "South Asian", "Curry House"},
	classify.CuisineMiddleEastern: {"Middle Eastern", "Lebanese", "Turkish", "Falafel"},
	classify.CuisineVegetarian:    {"Vegetarian", "Vegan", "Plant-based", "Health Food"},
	classify.CuisineSeafood:       {"Seafood", "Fish & Chips", "Oyster Bar"},
	classify.CuisineBreakfast:     {"Breakfast", "Brunch", "Cafe", "Bakery"},
	classify.CuisineDessert:       {"Dessert", "Ice Cream", "Bakery", "Chocolate"},
	classify.CuisineFastFood:      {"Fast Food", "Burgers", "Chicken", "Sandwiches"},
	classify.CuisineFineDining:    {"Fine Dining", "Gourmet", "Contemporary"},
}

// restaurantNamePools holds name templates per cuisine category. The {City}
// token is replaced with the resolved city name.
var restaurantNamePools = map[string][]string{
	classify.CuisineAmerican:      {"{City} Grill", "The {City} Diner", "{City} Smokehouse", "Main Street Burgers", "Downtown BBQ"},
	classify.CuisineItalian:       {"Bella {City}", "Pasta Palace", "{City} Trattoria", "Mamma's Kitchen", "Luigi's Pizza"},
	classify.CuisineMexican:       {"El {City}", "Taqueria {City}", "Casa {City}", "Fiesta Mexican Grill", "Jalapeño's"},
	classify.CuisineAsian:         {"Golden Dragon", "{City} Wok", "Sakura Japanese", "Thai Spice", "Pho {City}"},
	classify.CuisineIndian:        {"Taj {City}", "Spice of India", "Curry House", "Delhi Palace", "Bombay Bistro"},
	classify.CuisineMiddleEastern: {"Aladdin's", "{City} Kebab", "Mediterranean Delight", "Falafel King", "Olive Tree"},
	classify.CuisineVegetarian:    {"Green Table", "Plant Power {City}", "Fresh & Healthy", "Veggie Delight", "Sprout & Root"},
	classify.CuisineSeafood:       {"{City} Fish Market", "Oceanside", "Captain's Catch", "Lobster Shack", "Blue Water Grill"},
	classify.CuisineBreakfast:     {"Rise & Shine", "{City} Breakfast Club", "Morning Glory", "Sunny Side Up", "The Biscuit House"},
	classify.CuisineDessert:       {"Sweet Treats", "{City} Creamery", "Sugar Rush", "Chocolate Dreams", "The Cupcake Corner"},
	classify.CuisineFastFood:      {"Quick Bite", "{City} Express", "Fast & Tasty", "Burger Junction", "Chicken Shack"},
	classify.CuisineFineDining:    {"{City} Fine Dining", "Elegant Eats", "The {City} Room", "Gourmet {City}", "Chef's Table"},
}

// preferenceBias shapes the restaurant synthesized directly from one stated
// food preference, before the cuisine-cycled fill kicks in.
type preferenceBias struct {
	names      []string
	cuisine    string
	priceRange string
}

var preferenceBiases = map[string]preferenceBias{
	"vegetarian": {
		names:      []string{"Green Table {City}", "Fresh & Healthy", "Veggie Delight", "Sprout & Root"},
		cuisine:    "Vegetarian",
		priceRange: "$$",
	},
	"vegan": {
		names:      []string{"Plant Power {City}", "Plant Harvest", "The Green Fork", "Rooted Kitchen"},
		cuisine:    "Vegan",
		priceRange: "$$",
	},
	"halal": {
		names:      []string{"Halal Grill {City}", "Aladdin's", "{City} Kebab", "Falafel King"},
		cuisine:    "Halal",
		priceRange: "$$",
	},
	"non-veg": {
		names:      []string{"{City} Steakhouse", "{City} Smokehouse", "Downtown BBQ", "Main Street Burgers"},
		cuisine:    "Steakhouse",
		priceRange: "$$$",
	},
	"anything": {
		names:      []string{"{City} Food Hall", "The Local Table", "{City} Eatery", "{City} Bistro"},
		cuisine:    "Various",
		priceRange: "$",
	},
}

var defaultBias = preferenceBias{
	names:      []string{"{City} Eatery", "The Local Table", "{City} Bistro", "{City} Food Hall"},
	priceRange: "$",
}

// priceRangePool is sampled uniformly for the cuisine-cycled fill; $ and $$
// appear twice so cheaper spots dominate.
var priceRangePool = []string{"$", "$", "$$", "$$", "$$$"}

var restaurantStreets = []string{"Main St", "Oak Ave", "Maple Rd", "Broadway", "Park Ave", "1st St", "Washington Blvd", "Market St"}

func neighborhoodsFor(city string) []string {
	return []string{
		"Downtown " + city, "Central " + city, city + " Center",
		"North " + city, "South " + city, "East " + city, "West " + city,
		city + " Heights", city + " Park", "Old " + city, city + " Village",
	}
}

// GenerateRestaurants returns exactly 5 restaurants. The first slots come
// directly from the stated preferences, each biased to a preference-specific
// name pool and price tier; remaining slots cycle through the classified
// cuisine categories.
func GenerateRestaurants(r Rand, loc types.LocationRecord, preferences []string) []types.Restaurant {
	neighborhoods := neighborhoodsFor(loc.City)
	restaurants := make([]types.Restaurant, 0, 5)

	for _, preference := range preferences {
		if len(restaurants) == 5 {
			break
		}
		bias, ok := preferenceBiases[strings.ToLower(preference)]
		if !ok {
			bias = defaultBias
			bias.cuisine = capitalize(preference)
		}
		name := strings.ReplaceAll(bias.names[r.IntN(len(bias.names))], "{City}", loc.City)
		restaurants = append(restaurants, buildRestaurant(r, loc, neighborhoods, name, bias.cuisine, bias.priceRange))
	}

	cuisines := classify.CuisineCategories(preferences)
	for i := 0; len(restaurants) < 5; i++ {
		category := cuisines[i%len(cuisines)]
		specific := cuisineTypes[category]
		cuisine := specific[r.IntN(len(specific))]

		pool := restaurantNamePools[category]
		name := strings.ReplaceAll(pool[r.IntN(len(pool))], "{City}", loc.City)
		priceRange := priceRangePool[r.IntN(len(priceRangePool))]

		restaurants = append(restaurants, buildRestaurant(r, loc, neighborhoods, name, cuisine, priceRange))
	}
	return restaurants
}

func buildRestaurant(r Rand, loc types.LocationRecord, neighborhoods []string, name, cuisine, priceRange string) types.Restaurant {
	streetNumber := 100 + r.IntN(1000)
	street := restaurantStreets[r.IntN(len(restaurantStreets))]
	neighborhood := neighborhoods[r.IntN(len(neighborhoods))]
	rating := math.Round((3.5+r.Float64()*1.5)*10) / 10

	return types.Restaurant{
		Name:       name,
		Address:    fmt.Sprintf("%d %s, %s, %s", streetNumber, street, neighborhood, loc.StateCode),
		Rating:     rating,
		Type:       cuisine,
		Link:       fmt.Sprintf("https://www.google.com/maps/search/%s+%s+%s", url.QueryEscape(name), url.QueryEscape(loc.City), loc.StateCode),
		PhotoURL:   fmt.Sprintf("/placeholder.svg?height=200&width=300&query=%s restaurant food", url.QueryEscape(cuisine)),
		PriceRange: priceRange,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
