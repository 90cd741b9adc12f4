package guide

import (
	"fmt"
	"net/url"
	"time"

	"github.com/welcome-anywhere/welcome-anywhere/internal/api/classify"
	"github.com/welcome-anywhere/welcome-anywhere/internal/types"
)

type eventTemplate struct {
	Name        string
	Description string
}

var eventPools = map[string][]eventTemplate{
	classify.EventCategorySports: {
		{"Community Basketball League", "Join local teams for friendly basketball competition."},
		{"5K Fun Run", "Annual charity run through scenic parts of the city."},
		{"Yoga in the Park", "Free weekly yoga sessions for all skill levels."},
		{"Tennis Tournament", "Singles and doubles tournament for amateur players."},
	},
	classify.EventCategoryArts: {
		{"Art Gallery Opening", "Exhibition featuring works from local artists."},
		{"Community Theater Production", "Local performance of a popular Broadway show."},
		{"Photography Workshop", "Learn composition and lighting techniques from professionals."},
		{"Poetry Reading Night", "Open mic night for poetry enthusiasts."},
	},
	classify.EventCategoryMusic: {
		{"Jazz in the Park", "Free outdoor jazz concert series."},
		{"Local Band Showcase", "Featuring up-and-coming musicians from the area."},
		{"Classical Music Concert", "Symphony orchestra performing classical masterpieces."},
		{"Music Production Workshop", "Learn the basics of digital music production."},
	},
	classify.EventCategoryTechnology: {
		{"Tech Meetup", "Network with local tech professionals and entrepreneurs."},
		{"Coding Workshop", "Hands-on session for beginners and intermediate coders."},
		{"Startup Pitch Night", "Local startups present their ideas to the community."},
		{"AI and Machine Learning Talk", "Expert discussion on the latest AI developments."},
	},
	classify.EventCategoryOutdoor: {
		{"Hiking Group Expedition", "Guided hike through nearby natural areas."},
		{"Farmers Market", "Weekly market featuring local produce and crafts."},
		{"Community Garden Day", "Help plant and maintain the local community garden."},
		{"Outdoor Movie Night", "Family-friendly films screened in the park."},
	},
	classify.EventCategoryFood: {
		{"Food Festival", "Taste dishes from the best local restaurants."},
		{"Cooking Class", "Learn to prepare regional specialties from local chefs."},
		{"Wine Tasting Event", "Sample wines from local and regional vineyards."},
		{"Baking Competition", "Show off your baking skills or just enjoy the treats."},
	},
	classify.EventCategoryCommunity: {
		{"Neighborhood Cleanup", "Volunteer to help keep the community beautiful."},
		{"Cultural Heritage Festival", "Celebration of the diverse cultures in the area."},
		{"Charity Fundraiser", "Support local causes while enjoying entertainment and food."},
		{"Community Council Meeting", "Get involved in local decision-making."},
	},
}

var eventVenues = []string{"Park", "Community Center", "Downtown", "Convention Center", "Library"}

// GenerateEvents produces 3 upcoming events by cycling through the event
// categories matched against the hobbies. Dates land within the next 30 days.
func GenerateEvents(r Rand, now time.Time, loc types.LocationRecord, hobbies []string) []types.Event {
	categories := classify.EventCategories(hobbies)

	events := make([]types.Event, 0, 3)
	for i := 0; i < 3; i++ {
		category := categories[i%len(categories)]
		pool := eventPools[category]
		tpl := pool[r.IntN(len(pool))]

		date := now.AddDate(0, 0, 1+r.IntN(30)).Format("Monday, January 2")
		venue := eventVenues[r.IntN(len(eventVenues))]

		events = append(events, types.Event{
			Name:        fmt.Sprintf("%s %s", loc.City, tpl.Name),
			Date:        date,
			Location:    fmt.Sprintf("%s %s", loc.City, venue),
			Description: tpl.Description,
			Category:    category,
			Link:        fmt.Sprintf("https://www.eventbrite.com/d/%s/events/", url.QueryEscape(loc.City)),
		})
	}
	return events
}
