// Package housing serves the rental listing surface: a static catalogue with
// search, and per-request generated recommendations matched to a budget and
// housing preference.
package housing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/welcome-anywhere/welcome-anywhere/internal/types"
)

// ErrPropertyNotFound is returned when no catalogue entry has the given ID.
var ErrPropertyNotFound = errors.New("property not found")

// Rand is the random source the recommendation generator draws from.
// Production uses math/rand/v2; tests inject a deterministic stub.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// SystemRand delegates to the shared math/rand/v2 generator.
type SystemRand struct{}

func (SystemRand) IntN(n int) int   { return rand.IntN(n) }
func (SystemRand) Float64() float64 { return rand.Float64() }

// Service exposes the housing listing operations.
type Service interface {
	FetchProperties(ctx context.Context) []types.Property
	FetchPropertyByID(ctx context.Context, id uuid.UUID) (*types.Property, error)
	SearchProperties(ctx context.Context, query string) []types.Property
	RecommendProperties(ctx context.Context, city string, budget float64, housingType string) []types.Property
}

// ServiceImpl implements Service over the static catalogue and the
// generator below.
type ServiceImpl struct {
	logger *slog.Logger
	rng    Rand
}

func NewServiceImpl(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger, rng: SystemRand{}}
}

func (s *ServiceImpl) FetchProperties(ctx context.Context) []types.Property {
	_, span := otel.Tracer("HousingService").Start(ctx, "FetchProperties")
	defer span.End()
	return append([]types.Property(nil), catalogue...)
}

func (s *ServiceImpl) FetchPropertyByID(ctx context.Context, id uuid.UUID) (*types.Property, error) {
	_, span := otel.Tracer("HousingService").Start(ctx, "FetchPropertyByID")
	defer span.End()
	span.SetAttributes(attribute.String("property.id", id.String()))

	for i := range catalogue {
		if catalogue[i].ID == id {
			property := catalogue[i]
			return &property, nil
		}
	}
	span.SetStatus(codes.Error, "Property not found")
	return nil, fmt.Errorf("%w: %s", ErrPropertyNotFound, id)
}

// SearchProperties filters the catalogue by a case-insensitive substring
// match over title, description and address.
func (s *ServiceImpl) SearchProperties(ctx context.Context, query string) []types.Property {
	_, span := otel.Tracer("HousingService").Start(ctx, "SearchProperties")
	defer span.End()

	normalized := strings.ToLower(query)
	var results []types.Property
	for _, property := range catalogue {
		haystack := strings.ToLower(property.Title + " " + property.Description + " " + property.Address)
		if strings.Contains(haystack, normalized) {
			results = append(results, property)
		}
	}
	return results
}

func (s *ServiceImpl) RecommendProperties(ctx context.Context, city string, budget float64, housingType string) []types.Property {
	_, span := otel.Tracer("HousingService").Start(ctx, "RecommendProperties")
	defer span.End()
	span.SetAttributes(attribute.String("housing.city", city), attribute.Float64("housing.budget", budget))

	return GenerateProperties(s.rng, city, budget, housingType)
}

var recommendationStreets = []string{
	"Main St", "Oak Ave", "University Blvd", "Park Rd",
	"Washington Ave", "Broadway", "Market St", "College Dr",
}

// GenerateProperties synthesizes 5-8 listings for a city. Property types
// follow the stated housing preference; price lands between 70% and 100% of
// the monthly budget, rounded to the nearest hundred.
func GenerateProperties(r Rand, city string, budget float64, housingType string) []types.Property {
	propertyTypes := typesForPreference(housingType)
	neighborhoods := []string{
		"Downtown " + city,
		"Midtown " + city,
		"University District",
		"North " + city,
		"West " + city,
		city + " Heights",
	}

	count := 5 + r.IntN(4)
	properties := make([]types.Property, 0, count)
	for i := 0; i < count; i++ {
		propertyType := propertyTypes[r.IntN(len(propertyTypes))]
		neighborhood := neighborhoods[r.IntN(len(neighborhoods))]
		street := recommendationStreets[r.IntN(len(recommendationStreets))]
		streetNumber := 100 + r.IntN(2000)

		price := int(math.Round(budget*(0.7+0.3*r.Float64())/100)) * 100
		bedrooms := bedroomsForType(r, propertyType)
		bathrooms := math.Max(1, math.Round(float64(bedrooms)*0.75))
		squareFeet := squareFeetForType(propertyType, bedrooms)
		title := titleForType(propertyType, bedrooms, neighborhood)

		properties = append(properties, types.Property{
			ID:         uuid.New(),
			Title:      title,
			Price:      price,
			Bedrooms:   bedrooms,
			Bathrooms:  bathrooms,
			SquareFeet: squareFeet,
			Type:       propertyType,
			Address:    fmt.Sprintf("%d %s, %s, %s", streetNumber, street, neighborhood, city),
			ListingURL: fmt.Sprintf("https://www.google.com/maps/search/%s", url.QueryEscape(title+" "+city)),
		})
	}
	return properties
}

func typesForPreference(housingType string) []string {
	normalized := strings.ToLower(housingType)
	switch {
	case strings.Contains(normalized, "house") || strings.Contains(normalized, "family"):
		return []string{"House", "Townhouse"}
	case strings.Contains(normalized, "shared") || strings.Contains(normalized, "room"):
		return []string{"Shared Room", "Apartment"}
	case strings.Contains(normalized, "student"):
		return []string{"Student Housing", "Shared Room"}
	default:
		return []string{"Apartment"}
	}
}

func bedroomsForType(r Rand, propertyType string) int {
	switch propertyType {
	case "House", "Townhouse":
		return 2 + r.IntN(3)
	case "Apartment":
		return 1 + r.IntN(2)
	default:
		return 1
	}
}

func squareFeetForType(propertyType string, bedrooms int) int {
	switch propertyType {
	case "House":
		return 1000 + bedrooms*400
	case "Townhouse":
		return 800 + bedrooms*300
	case "Apartment":
		return 600 + bedrooms*250
	case "Shared Room":
		return 800
	default:
		return 500
	}
}

func titleForType(propertyType string, bedrooms int, neighborhood string) string {
	switch propertyType {
	case "House":
		return fmt.Sprintf("Spacious %d-Bedroom House in %s", bedrooms, neighborhood)
	case "Townhouse":
		return fmt.Sprintf("Modern %d-Bedroom Townhouse", bedrooms)
	case "Apartment":
		return fmt.Sprintf("%d-Bedroom Apartment in %s", bedrooms, neighborhood)
	case "Shared Room":
		return fmt.Sprintf("Shared Room in %s Apartment", neighborhood)
	default:
		return "Student Housing near University"
	}
}
