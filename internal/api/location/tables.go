package location

import "sort"

// cityEntry is a static record for a major US city used by the free-text
// lookup path.
type cityEntry struct {
	State     string
	StateCode string
	ZipCode   string
}

// cityNames holds the table keys in sorted order so substring fallback
// matching is deterministic across runs.
var cityNames = func() []string {
	names := make([]string, 0, len(cityTable))
	for name := range cityTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// cityTable covers the 20 largest US cities. Keys are lowercase.
var cityTable = map[string]cityEntry{
	"new york":      {"New York", "NY", "10001"},
	"los angeles":   {"California", "CA", "90001"},
	"chicago":       {"Illinois", "IL", "60601"},
	"houston":       {"Texas", "TX", "77001"},
	"phoenix":       {"Arizona", "AZ", "85001"},
	"philadelphia":  {"Pennsylvania", "PA", "19101"},
	"san antonio":   {"Texas", "TX", "78201"},
	"san diego":     {"California", "CA", "92101"},
	"dallas":        {"Texas", "TX", "75201"},
	"san jose":      {"California", "CA", "95101"},
	"austin":        {"Texas", "TX", "78701"},
	"jacksonville":  {"Florida", "FL", "32201"},
	"san francisco": {"California", "CA", "94101"},
	"columbus":      {"Ohio", "OH", "43201"},
	"indianapolis":  {"Indiana", "IN", "46201"},
	"charlotte":     {"North Carolina", "NC", "28201"},
	"seattle":       {"Washington", "WA", "98101"},
	"denver":        {"Colorado", "CO", "80201"},
	"boston":        {"Massachusetts", "MA", "02101"},
	"nashville":     {"Tennessee", "TN", "37201"},
}

// stateByName maps lowercase state names to their two-letter codes.
var stateByName = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT", "delaware": "DE",
	"florida": "FL", "georgia": "GA", "hawaii": "HI", "idaho": "ID",
	"illinois": "IL", "indiana": "IN", "iowa": "IA", "kansas": "KS",
	"kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD",
	"massachusetts": "MA", "michigan": "MI", "minnesota": "MN", "mississippi": "MS",
	"missouri": "MO", "montana": "MT", "nebraska": "NE", "nevada": "NV",
	"new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM", "new york": "NY",
	"north carolina": "NC", "north dakota": "ND", "ohio": "OH", "oklahoma": "OK",
	"oregon": "OR", "pennsylvania": "PA", "rhode island": "RI", "south carolina": "SC",
	"south dakota": "SD", "tennessee": "TN", "texas": "TX", "utah": "UT",
	"vermont": "VT", "virginia": "VA", "washington": "WA", "west virginia": "WV",
	"wisconsin": "WI", "wyoming": "WY",
}

// stateByCode is the inverse lookup, keyed by uppercase abbreviation.
var stateByCode = func() map[string]string {
	m := make(map[string]string, len(stateByName))
	for name, code := range stateByName {
		m[code] = name
	}
	return m
}()
