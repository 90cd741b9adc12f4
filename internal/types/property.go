package types

import "github.com/google/uuid"

// Property is a rental listing, either from the static catalogue or
// synthesized for a recommendation request.
type Property struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Price        int       `json:"price"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    float64   `json:"bathrooms"`
	SquareFeet   int       `json:"squareFeet"`
	Type         string    `json:"type"`
	Address      string    `json:"address"`
	Amenities    []string  `json:"amenities,omitempty"`
	AvailableOn  string    `json:"availableDate,omitempty"`
	ListingURL   string    `json:"listingUrl,omitempty"`
	ContactPhone string    `json:"contactPhone,omitempty"`
	ContactEmail string    `json:"contactEmail,omitempty"`
}
