package guide

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/welcome-anywhere/welcome-anywhere/internal/api/classify"
	"github.com/welcome-anywhere/welcome-anywhere/internal/types"
)

// cityCharacteristics supplies the one-line hook appended to the welcome
// message for major cities; stateCharacteristics is the fallback per state.
var cityCharacteristics = map[string]string{
	"New York":      "vibrant culture, diverse neighborhoods, and world-class dining",
	"Los Angeles":   "beautiful beaches, entertainment industry, and year-round sunshine",
	"Chicago":       "stunning architecture, lakefront parks, and rich cultural scene",
	"Houston":       "diverse culinary scene, space industry, and southern hospitality",
	"Phoenix":       "desert landscapes, outdoor activities, and southwestern charm",
	"Philadelphia":  "historic sites, passionate sports fans, and authentic food scene",
	"San Antonio":   "rich history, River Walk, and Tex-Mex cuisine",
	"San Diego":     "perfect weather, beautiful beaches, and relaxed lifestyle",
	"Dallas":        "booming job market, sports culture, and Texas pride",
	"San Jose":      "tech innovation, diverse communities, and proximity to nature",
	"Austin":        "live music, tech scene, and unique local culture",
	"Jacksonville":  "beautiful beaches, outdoor activities, and southern charm",
	"San Francisco": "iconic landmarks, tech innovation, and diverse neighborhoods",
	"Columbus":      "college town atmosphere, arts scene, and growing tech industry",
	"Indianapolis":  "sports culture, friendly communities, and affordable living",
	"Charlotte":     "banking industry, southern hospitality, and growing urban center",
	"Seattle":       "coffee culture, tech industry, and stunning natural surroundings",
	"Denver":        "mountain views, outdoor recreation, and craft beer scene",
	"Washington":    "historic landmarks, free museums, and international community",
	"Boston":        "rich history, prestigious universities, and distinct neighborhoods",
	"Nashville":     "country music, southern cuisine, and friendly atmosphere",
	"Portland":      "quirky culture, food trucks, and environmental consciousness",
	"Las Vegas":     "entertainment options, dining experiences, and desert landscape",
	"Miami":         "beautiful beaches, vibrant nightlife, and Latin American influence",
	"Atlanta":       "southern hospitality, civil rights history, and thriving film industry",
}

var stateCharacteristics = map[string]string{
	"New York":       "diverse communities, cultural attractions, and natural beauty",
	"California":     "beautiful coastlines, diverse landscapes, and innovation",
	"Texas":          "friendly people, diverse cities, and strong economy",
	"Florida":        "beautiful beaches, tropical climate, and diverse communities",
	"Illinois":       "agricultural heritage, diverse landscapes, and midwestern values",
	"Pennsylvania":   "rich history, beautiful countryside, and diverse cities",
	"Ohio":           "midwestern hospitality, affordable living, and changing seasons",
	"Georgia":        "southern charm, growing industries, and diverse landscapes",
	"North Carolina": "beautiful mountains, growing tech scene, and coastal beauty",
	"Michigan":       "Great Lakes, automotive heritage, and outdoor recreation",
	"New Jersey":     "proximity to major cities, diverse communities, and shore towns",
	"Virginia":       "rich history, beautiful landscapes, and strong economy",
	"Washington":     "natural beauty, tech industry, and outdoor lifestyle",
	"Arizona":        "desert landscapes, outdoor activities, and growing communities",
	"Massachusetts":  "rich history, educational excellence, and distinct seasons",
	"Tennessee":      "music heritage, southern hospitality, and natural beauty",
	"Indiana":        "midwestern values, sports culture, and manufacturing heritage",
	"Missouri":       "midwestern hospitality, diverse landscapes, and rich history",
	"Maryland":       "coastal beauty, proximity to DC, and diverse communities",
	"Wisconsin":      "lakes, cheese culture, and friendly communities",
	"Colorado":       "mountain landscapes, outdoor lifestyle, and growing economy",
	"Minnesota":      "lakes, progressive values, and strong community ties",
	"South Carolina": "southern hospitality, coastal beauty, and historic charm",
	"Alabama":        "southern traditions, college football, and growing industries",
	"Louisiana":      "unique culture, food traditions, and musical heritage",
	"Kentucky":       "bourbon heritage, horse country, and southern hospitality",
	"Oregon":         "natural beauty, progressive values, and outdoor lifestyle",
	"Oklahoma":       "native heritage, energy industry, and friendly communities",
	"Connecticut":    "New England charm, proximity to major cities, and rich history",
	"Utah":           "stunning national parks, outdoor recreation, and family-friendly communities",
	"Iowa":           "agricultural heritage, friendly communities, and political importance",
	"Nevada":         "desert landscapes, entertainment options, and growing communities",
	"Arkansas":       "natural beauty, affordable living, and southern hospitality",
	"Mississippi":    "southern traditions, musical heritage, and warm hospitality",
	"Kansas":         "agricultural heritage, friendly communities, and open spaces",
	"New Mexico":     "diverse cultural heritage, artistic communities, and stunning landscapes",
	"Nebraska":       "agricultural heritage, friendly communities, and midwestern values",
	"Idaho":          "natural beauty, outdoor recreation, and growing communities",
	"West Virginia":  "mountain landscapes, outdoor recreation, and strong community ties",
	"Hawaii":         "tropical paradise, unique culture, and natural beauty",
	"New Hampshire":  "New England charm, no sales tax, and natural beauty",
	"Maine":          "coastal beauty, lobster industry, and outdoor lifestyle",
	"Montana":        "big sky country, outdoor recreation, and western heritage",
	"Rhode Island":   "coastal charm, historic sites, and compact size",
	"Delaware":       "tax advantages, coastal areas, and proximity to major cities",
	"South Dakota":   "Mount Rushmore, open spaces, and western heritage",
	"North Dakota":   "energy industry, agricultural heritage, and friendly communities",
	"Alaska":         "stunning wilderness, outdoor adventure, and unique lifestyle",
	"Vermont":        "maple syrup, beautiful landscapes, and progressive values",
	"Wyoming":        "wide-open spaces, national parks, and western heritage",
}

// locationCharacteristics resolves city first, then state, then a generic
// phrase so the welcome message never ends up with a gap.
func locationCharacteristics(city, state string) string {
	if c, ok := cityCharacteristics[city]; ok {
		return c
	}
	if c, ok := stateCharacteristics[state]; ok {
		return c
	}
	return "friendly communities, local attractions, and unique character"
}

func welcomeMessage(loc types.LocationRecord) string {
	return fmt.Sprintf(
		"Welcome to %s, %s! We're excited to help you settle into your new home. "+
			"This guide has been customized based on your preferences to help you navigate the city and find resources that match your needs. "+
			"%s is known for its %s and offers a great quality of life for newcomers.",
		loc.City, loc.State, loc.City, locationCharacteristics(loc.City, loc.State))
}

func housingProse(loc types.LocationRecord, housing string, budget float64) string {
	city := loc.City
	switch housing {
	case "Apartment":
		return fmt.Sprintf("For apartments in %s within your $%.0f budget, consider looking in the Downtown, Midtown, and University areas. These neighborhoods offer good amenities and are typically well-connected to public transportation.", city, budget)
	case "Shared Room":
		return fmt.Sprintf("For shared housing in %s within your $%.0f budget, check out listings in the University District and Midtown areas. These neighborhoods are popular for roommate situations and offer affordable options.", city, budget)
	case "Family Home":
		return fmt.Sprintf("For family homes in %s within your $%.0f budget, the suburbs like Oakwood, Riverside, and Pinecrest offer good school districts and family-friendly amenities.", city, budget)
	case "Temporary Stay":
		return fmt.Sprintf("For temporary housing in %s, consider extended-stay hotels in the Downtown and Airport areas, or look for short-term rentals on Airbnb and VRBO. Many offer monthly rates within your $%.0f budget.", city, budget)
	case "Student Housing":
		return fmt.Sprintf("For student housing in %s, check out options near the local universities and colleges. The University District offers both on-campus and off-campus housing within your $%.0f budget.", city, budget)
	default:
		return fmt.Sprintf("Based on your preference for %s housing and a budget of $%.0f, you might want to check out neighborhoods like Downtown, Riverside, and Oakwood in %s. These areas offer a variety of housing options within your budget range.", housing, budget, city)
	}
}

func jobProse(loc types.LocationRecord, jobField string) string {
	city := loc.City
	switch classify.ClassifyJobField(jobField) {
	case classify.JobCategoryTech:
		return fmt.Sprintf("%s has a growing tech scene with companies ranging from startups to established firms. Look for opportunities at the %s Tech Hub and Innovation Center. The average salary for %s positions in this area is competitive, and many companies offer remote or hybrid work options.", city, city, jobField)
	case classify.JobCategoryHealthcare:
		return fmt.Sprintf("%s has several hospitals and healthcare facilities, including %s General Hospital and %s Medical Center. Healthcare professionals are in high demand, and many facilities offer sign-on bonuses and relocation assistance.", city, city, loc.State)
	case classify.JobCategoryEducation:
		return fmt.Sprintf("%s has a strong education system with public and private schools, as well as higher education institutions. The %s School District regularly hires teachers and support staff, and there are opportunities at local colleges and universities as well.", city, city)
	default:
		return fmt.Sprintf("%s has opportunities in the %s field. The local job market is diverse, with positions available in various industries. Check out the job listings below and consider attending networking events to connect with potential employers.", city, jobField)
	}
}

func languageProse(loc types.LocationRecord, language string) string {
	city := loc.City
	switch strings.ToLower(language) {
	case "english":
		return fmt.Sprintf("For English language resources in %s, the %s Adult Education Center offers ESL classes at various levels. The International Center hosts weekly conversation groups, and the %s Public Library provides free access to language learning software like Mango Languages and Rosetta Stone.", city, city, city)
	case "spanish":
		return fmt.Sprintf("For Spanish language resources in %s, check out the Hispanic Cultural Center which offers language classes and cultural events. The %s Community College has Spanish courses for all levels, and there are several Spanish conversation groups that meet at local cafes and the public library.", city, city)
	case "french":
		return fmt.Sprintf("For French language resources in %s, the Alliance Française offers classes and cultural events. The %s Community College has French courses, and there's a French conversation group that meets weekly at Café Paris in Downtown %s.", city, city, city)
	case "mandarin", "chinese":
		return fmt.Sprintf("For Mandarin/Chinese language resources in %s, the Chinese Cultural Center offers language classes for all levels. The %s Community College has Mandarin courses, and there are several language exchange meetups organized through the Asian American Cultural Association.", city, city)
	case "arabic":
		return fmt.Sprintf("For Arabic language resources in %s, the Islamic Cultural Center offers language classes and cultural events. The %s Community College has Arabic courses, and there's an Arabic language meetup group that gathers weekly at the International Coffee House.", city, city)
	default:
		return fmt.Sprintf("For %s language resources, the %s Community College offers affordable classes. The International Center provides conversation partners, and the public library has free language learning software and meetups.", language, city)
	}
}

func eventsProse(loc types.LocationRecord, hobbies []string) string {
	return fmt.Sprintf("For your interests in %s, %s offers several options. Check out the upcoming events section below for activities that match your hobbies. The Community Center also hosts weekly meetups, while the %s Park has great trails for outdoor activities.",
		strings.Join(hobbies, ", "), loc.City, loc.City)
}

func foodProse(loc types.LocationRecord, preferences []string) string {
	return fmt.Sprintf("Based on your food preferences (%s), you might enjoy restaurants like Green Plate (vegetarian), Spice Garden (offers halal options), and The Local Table (farm-to-table with diverse menu). The %s Farmers Market on weekends is also worth checking out.",
		strings.Join(preferences, ", "), loc.City)
}

func supportProse(loc types.LocationRecord) string {
	return fmt.Sprintf("For support services, you can contact the %s Welcome Center at 211. They offer orientation sessions for newcomers. The Community Services Office can connect you with specific resources based on your needs.", loc.City)
}

// supportDirectory resolves up to the first 3 stated needs, each
// independently, into a concrete service descriptor with a contact.
func supportDirectory(loc types.LocationRecord, needs []string) []types.SupportService {
	if len(needs) > 3 {
		needs = needs[:3]
	}
	city := loc.City
	services := make([]types.SupportService, 0, len(needs))
	for _, need := range needs {
		service := types.SupportService{
			Name:        city + " Community Services",
			Description: "General assistance for residents.",
			Contact:     "211",
		}
		switch need {
		case classify.SupportLegal:
			service = types.SupportService{
				Name:        city + " Legal Aid",
				Description: "Free or low-cost legal assistance for eligible residents.",
				Contact:     fmt.Sprintf("https://www.lawhelp.org/find-help/state-content/%s", strings.ToLower(loc.StateCode)),
			}
		case classify.SupportMentalHealth:
			service = types.SupportService{
				Name:        city + " Mental Health Center",
				Description: "Counseling and mental health services for individuals and families.",
				Contact:     "988",
			}
		case classify.SupportESL:
			service = types.SupportService{
				Name:        city + " Language Center",
				Description: "ESL classes and language learning resources for newcomers.",
				Contact:     fmt.Sprintf("https://www.findhelp.org/education/esl-classes?postal=%s", loc.ZipCode),
			}
		case classify.SupportChildcare:
			service = types.SupportService{
				Name:        city + " Childcare Resources",
				Description: "Information on childcare options and assistance programs.",
				Contact:     fmt.Sprintf("https://childcare.gov/state-resources?state=%s", strings.ToLower(loc.StateCode)),
			}
		case classify.SupportImmigration:
			service = types.SupportService{
				Name:        city + " Immigration Services",
				Description: "Legal assistance and resources for immigrants and refugees.",
				Contact:     fmt.Sprintf("https://www.immigrationadvocates.org/nonprofit/legaldirectory/search?state=%s", loc.StateCode),
			}
		case classify.SupportFinancial:
			service = types.SupportService{
				Name:        city + " Financial Counseling",
				Description: "Free financial education and counseling services.",
				Contact:     fmt.Sprintf("https://www.consumerfinance.gov/find-a-housing-counselor/?zipcode=%s", loc.ZipCode),
			}
		case classify.SupportHealthcare:
			service = types.SupportService{
				Name:        city + " Community Health Center",
				Description: "Affordable healthcare services for all residents.",
				Contact:     fmt.Sprintf("https://findahealthcenter.hrsa.gov/widget/result?zipCode=%s", loc.ZipCode),
			}
		case classify.SupportCommunity:
			service = types.SupportService{
				Name:        city + " Community Center",
				Description: "Programs, events, and resources for community members.",
				Contact:     fmt.Sprintf("https://www.google.com/maps/search/community+center+%s+%s", url.QueryEscape(city), loc.StateCode),
			}
		}
		services = append(services, service)
	}
	return services
}

func housingLinks(loc types.LocationRecord) []types.ResourceLink {
	citySlug := strings.ToLower(strings.ReplaceAll(loc.City, " ", "-"))
	cityUnderscore := strings.ToLower(strings.ReplaceAll(loc.City, " ", "_"))
	return []types.ResourceLink{
		{Title: "Apartments.com", URL: fmt.Sprintf("https://www.apartments.com/%s-%s", citySlug, strings.ToLower(loc.StateCode))},
		{Title: "Zillow", URL: fmt.Sprintf("https://www.zillow.com/homes/%s-%s_rb/", loc.City, loc.State)},
		{Title: "Trulia", URL: fmt.Sprintf("https://www.trulia.com/for_rent/%s,%s", cityUnderscore, strings.ToLower(loc.StateCode))},
	}
}

func jobLinks(loc types.LocationRecord, jobField string) []types.ResourceLink {
	field := url.QueryEscape(jobField)
	city := url.QueryEscape(loc.City)
	return []types.ResourceLink{
		{Title: "Indeed", URL: fmt.Sprintf("https://www.indeed.com/jobs?q=%s&l=%s%%2C+%s", field, city, loc.StateCode)},
		{Title: "LinkedIn Jobs", URL: fmt.Sprintf("https://www.linkedin.com/jobs/search/?keywords=%s&location=%s%%2C%%20%s", field, city, loc.StateCode)},
		{Title: "Glassdoor", URL: fmt.Sprintf("https://www.glassdoor.com/Job/jobs.htm?typedKeyword=%s&sc.keyword=%s&locT=C", field, field)},
	}
}
