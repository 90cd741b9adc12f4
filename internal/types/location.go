package types

import "fmt"

// LocationRecord is a resolved US location. Never mutated after creation.
type LocationRecord struct {
	City        string `json:"city"`
	State       string `json:"state"`
	StateCode   string `json:"stateCode"`
	ZipCode     string `json:"zipCode"`
	FullAddress string `json:"fullAddress"`
}

// NewLocationRecord builds a record with the canonical "City, State ZIP"
// display address.
func NewLocationRecord(city, state, stateCode, zipCode string) LocationRecord {
	return LocationRecord{
		City:        city,
		State:       state,
		StateCode:   stateCode,
		ZipCode:     zipCode,
		FullAddress: fmt.Sprintf("%s, %s %s", city, state, zipCode),
	}
}

// Fixed fallback locations. The guide assembler falls back to New York when
// resolution fails outright; the form flow defaults free-text non-ZIP input
// to downtown Dallas.
var (
	DefaultNewYork = NewLocationRecord("New York", "New York", "NY", "10001")
	DefaultDallas  = NewLocationRecord("Dallas", "Texas", "TX", "75201")
)
