// Package classify maps free-text user input onto the closed category
// enumerations used by the content generators. Matching is plain
// case-insensitive substring membership over fixed keyword tables; there is
// no scoring or ranking.
package classify

import "strings"

// CategoryKeywords binds one category tag to the keywords that activate it.
type CategoryKeywords struct {
	Category string
	Keywords []string
}

// KeywordTable is an ordered set of category bindings. Order fixes the order
// of the classification result, which keeps generator output stable for a
// given input.
type KeywordTable []CategoryKeywords

// Classify lowercases each value and activates every category whose keyword
// list has a substring match against it. A single value may activate several
// categories. When nothing matches, defaults is returned so the result is
// never empty.
func Classify(values []string, table KeywordTable, defaults []string) []string {
	active := make(map[string]bool)
	for _, value := range values {
		normalized := strings.ToLower(value)
		for _, entry := range table {
			if active[entry.Category] {
				continue
			}
			for _, keyword := range entry.Keywords {
				if strings.Contains(normalized, keyword) {
					active[entry.Category] = true
					break
				}
			}
		}
	}

	if len(active) == 0 {
		return append([]string(nil), defaults...)
	}

	result := make([]string, 0, len(active))
	for _, entry := range table {
		if active[entry.Category] {
			result = append(result, entry.Category)
		}
	}
	return result
}

// ClassifyJobField picks the single job category for a free-text job field.
// First match wins, in priority order tech, healthcare, education; anything
// else falls through to business.
func ClassifyJobField(jobField string) string {
	normalized := strings.ToLower(jobField)
	for _, entry := range JobTable {
		for _, keyword := range entry.Keywords {
			if strings.Contains(normalized, keyword) {
				return entry.Category
			}
		}
	}
	return JobCategoryBusiness
}

// EventCategories classifies hobby strings into event categories, defaulting
// to community and outdoor.
func EventCategories(hobbies []string) []string {
	return Classify(hobbies, EventTable, DefaultEventCategories)
}

// CuisineCategories classifies food preferences into cuisine categories,
// defaulting to american, italian and asian.
func CuisineCategories(preferences []string) []string {
	return Classify(preferences, CuisineTable, DefaultCuisineCategories)
}
