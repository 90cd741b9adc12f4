// Package location resolves free-text location input (a 5-digit ZIP or a
// "City", "City, State" / "City, ST" string) into a normalized
// LocationRecord. ZIP codes go through the zippopotam.us geocoder with an
// in-process cache; everything else is served from static tables.
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/welcome-anywhere/welcome-anywhere/internal/types"
)

var zipPattern = regexp.MustCompile(`^\d{5}$`)

// Service resolves user-supplied location text. Implementations must not
// panic; ZIP lookups that fail return types.ErrLocationNotFound wrapped with
// detail, and free-text input always resolves to something displayable.
type Service interface {
	Resolve(ctx context.Context, input string) (types.LocationRecord, error)
}

// ServiceImpl implements Service against the zippopotam.us API.
type ServiceImpl struct {
	logger  *slog.Logger
	client  *http.Client
	baseURL string
	cache   *cache.Cache
}

// NewServiceImpl creates the resolver. timeout bounds each geocoder call.
func NewServiceImpl(baseURL string, timeout time.Duration, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		cache:   cache.New(24*time.Hour, 1*time.Hour),
	}
}

// Resolve dispatches on the input shape: exactly 5 digits means ZIP lookup,
// anything else is treated as a city name.
func (s *ServiceImpl) Resolve(ctx context.Context, input string) (types.LocationRecord, error) {
	ctx, span := otel.Tracer("LocationService").Start(ctx, "Resolve")
	defer span.End()
	span.SetAttributes(attribute.String("location.input", input))

	input = strings.TrimSpace(input)
	if zipPattern.MatchString(input) {
		return s.resolveZip(ctx, input)
	}
	return s.resolveCity(input), nil
}

// zipResponse matches the zippopotam.us payload shape.
type zipResponse struct {
	Places []struct {
		PlaceName         string `json:"place name"`
		State             string `json:"state"`
		StateAbbreviation string `json:"state abbreviation"`
	} `json:"places"`
}

func (s *ServiceImpl) resolveZip(ctx context.Context, zipCode string) (types.LocationRecord, error) {
	ctx, span := otel.Tracer("LocationService").Start(ctx, "resolveZip")
	defer span.End()

	cacheKey := "zip:" + zipCode
	if cached, found := s.cache.Get(cacheKey); found {
		if record, ok := cached.(types.LocationRecord); ok {
			span.SetStatus(codes.Ok, "Served from cache")
			return record, nil
		}
	}

	url := fmt.Sprintf("%s/us/%s", s.baseURL, zipCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		span.RecordError(err)
		return types.LocationRecord{}, fmt.Errorf("%w: building geocoder request: %w", types.ErrUpstreamCallFailed, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		span.RecordError(err)
		s.logger.WarnContext(ctx, "Geocoder call failed", slog.String("zip", zipCode), slog.Any("error", err))
		return types.LocationRecord{}, fmt.Errorf("%w: geocoder: %w", types.ErrUpstreamCallFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, "Geocoder non-OK status")
		return types.LocationRecord{}, fmt.Errorf("%w: invalid ZIP code %s (status %d)", types.ErrLocationNotFound, zipCode, resp.StatusCode)
	}

	var data zipResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		span.RecordError(err)
		return types.LocationRecord{}, fmt.Errorf("%w: decoding geocoder response: %w", types.ErrUpstreamCallFailed, err)
	}
	if len(data.Places) == 0 {
		span.SetStatus(codes.Error, "No places for ZIP")
		return types.LocationRecord{}, fmt.Errorf("%w: no location found for ZIP code %s", types.ErrLocationNotFound, zipCode)
	}

	place := data.Places[0]
	record := types.NewLocationRecord(place.PlaceName, place.State, place.StateAbbreviation, zipCode)
	s.cache.Set(cacheKey, record, cache.DefaultExpiration)
	span.SetStatus(codes.Ok, "Resolved via geocoder")
	return record, nil
}

// resolveCity looks up "City", "City, State" or "City, ST" against the
// static tables. Unknown cities keep the user's (capitalized) city text and
// default to New York / NY so the guide always has a displayable location.
func (s *ServiceImpl) resolveCity(input string) types.LocationRecord {
	cityPart := input
	statePart := ""
	if idx := strings.Index(input, ","); idx >= 0 {
		cityPart = strings.TrimSpace(input[:idx])
		statePart = strings.TrimSpace(input[idx+1:])
	}

	normalizedCity := strings.ToLower(cityPart)
	city := titleCase(cityPart)

	state, stateCode, zipCode := "New York", "NY", "10001"

	if entry, ok := cityTable[normalizedCity]; ok {
		state, stateCode, zipCode = entry.State, entry.StateCode, entry.ZipCode
	} else {
		// Partial match, e.g. "downtown austin". Sorted iteration keeps the
		// winner stable when the input mentions several known cities.
		for _, name := range cityNames {
			if strings.Contains(normalizedCity, name) {
				entry := cityTable[name]
				city = titleCase(name)
				state, stateCode, zipCode = entry.State, entry.StateCode, entry.ZipCode
				break
			}
		}
	}

	// A supplied state portion overrides whatever the city table said.
	if statePart != "" {
		if code, ok := stateByName[strings.ToLower(statePart)]; ok {
			state = titleCase(statePart)
			stateCode = code
		} else if name, ok := stateByCode[strings.ToUpper(statePart)]; ok {
			state = titleCase(name)
			stateCode = strings.ToUpper(statePart)
		}
	}

	return types.NewLocationRecord(city, state, stateCode, zipCode)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + word[size:]
	}
	return strings.Join(words, " ")
}
