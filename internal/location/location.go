package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Ayush0023/Weather-Zone/internal/providers/geocoding"
	"github.com/Ayush0023/Weather-Zone/internal/types"
)

var (
	// ErrEmptyCity is returned when the city name is blank after trimming.
	// No network call is made in that case.
	ErrEmptyCity = errors.New("city name is empty")

	// ErrCityNotFound is returned when forward geocoding yields no results.
	ErrCityNotFound = errors.New("city not found")

	ErrInvalidLatitude  = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

// GeocodeProvider defines the interface for forward and reverse geocoding
// providers.
type GeocodeProvider interface {
	Search(ctx context.Context, name string) (*geocoding.SearchAPIResponse, error)
	ReverseSearch(ctx context.Context, latitude, longitude float64) (*geocoding.SearchAPIResponse, error)
}

// Service resolves user input to a canonical GeoLocation.
type Service interface {
	ResolveByName(ctx context.Context, city string) (types.GeoLocation, error)
	ResolveByCoords(ctx context.Context, latitude, longitude float64) (types.GeoLocation, error)
}

type locationService struct {
	provider GeocodeProvider
	logger   *slog.Logger
}

// NewLocationService creates a location service backed by the Open-Meteo
// geocoding API.
func NewLocationService(httpClient *http.Client, logger *slog.Logger) Service {
	return NewLocationServiceWithProvider(geocoding.NewClient(httpClient), logger)
}

// NewLocationServiceWithProvider creates a location service with a custom
// provider. This is useful for testing with mock providers.
func NewLocationServiceWithProvider(provider GeocodeProvider, logger *slog.Logger) Service {
	return &locationService{
		provider: provider,
		logger:   logger.With("component", "location-service"),
	}
}

// ResolveByName forward-geocodes a free-text city name. The display name is
// the first result's "Name, Country".
func (s *locationService) ResolveByName(ctx context.Context, city string) (types.GeoLocation, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return types.GeoLocation{}, ErrEmptyCity
	}

	resp, err := s.provider.Search(ctx, city)
	if err != nil {
		s.logger.Error("forward geocoding failed", "city", city, "error", err)
		return types.GeoLocation{}, fmt.Errorf("failed to geocode %q: %w", city, err)
	}

	if len(resp.Results) == 0 {
		return types.GeoLocation{}, fmt.Errorf("%w: %s", ErrCityNotFound, city)
	}

	first := resp.Results[0]
	return types.GeoLocation{
		DisplayName: fmt.Sprintf("%s, %s", first.Name, first.Country),
		Latitude:    first.Latitude,
		Longitude:   first.Longitude,
	}, nil
}

// ResolveByCoords builds a GeoLocation from a coordinate pair the caller
// already holds. The coordinates are authoritative; the reverse-geocoded
// name is best effort, falling back to the formatted pair.
func (s *locationService) ResolveByCoords(ctx context.Context, latitude, longitude float64) (types.GeoLocation, error) {
	if latitude < -90 || latitude > 90 {
		return types.GeoLocation{}, ErrInvalidLatitude
	}
	if longitude < -180 || longitude > 180 {
		return types.GeoLocation{}, ErrInvalidLongitude
	}

	loc := types.GeoLocation{
		DisplayName: types.FormatCoords(latitude, longitude),
		Latitude:    latitude,
		Longitude:   longitude,
	}

	resp, err := s.provider.ReverseSearch(ctx, latitude, longitude)
	if err != nil {
		s.logger.Warn("reverse geocoding failed, keeping coordinate name",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return loc, nil
	}

	if len(resp.Results) > 0 && resp.Results[0].Name != "" {
		loc.DisplayName = resp.Results[0].Name
	}

	return loc, nil
}
