package service

import (
	"context"
	"fmt"
	"math"

	"coffee-filter-api/internal/models"
)

// DefaultSearchRadiusKM is applied when a location search does not specify a
// radius.
const DefaultSearchRadiusKM = 10.0

// kmPerDegree is the rough conversion used by the proximity filter. The
// filter is a deliberate approximation over Euclidean distance in degrees,
// not a great-circle calculation.
const kmPerDegree = 111.0

// SearchService contains the core business logic for location-based shop
// search.
type SearchService struct {
	repo SearchRepository
}

// SearchRepository interface for dependency injection
type SearchRepository interface {
	ListShops(ctx context.Context, skip, limit int) ([]models.CoffeeShop, error)
}

// NewSearchService creates a new search service
func NewSearchService(repo SearchRepository) *SearchService {
	return &SearchService{repo: repo}
}

// FilterByDistance returns the order-preserving subsequence of shops within
// radiusKM of the center point. Distance is the Euclidean distance between
// the coordinate pairs in degrees, scaled by 111 km per degree. A radius of
// zero or less only passes shops at the exact center.
func FilterByDistance(shops []models.CoffeeShop, lat, lon, radiusKM float64) []models.CoffeeShop {
	if radiusKM < 0 {
		radiusKM = 0
	}

	filtered := []models.CoffeeShop{}
	for _, shop := range shops {
		latDiff := shop.Latitude - lat
		lonDiff := shop.Longitude - lon
		distance := math.Sqrt(latDiff*latDiff+lonDiff*lonDiff) * kmPerDegree
		if distance <= radiusKM {
			filtered = append(filtered, shop)
		}
	}
	return filtered
}

// SearchByLocation returns all shops within radiusKM of the given point.
func (s *SearchService) SearchByLocation(ctx context.Context, lat, lon, radiusKM float64) ([]models.CoffeeShop, error) {
	if lat < -90 || lat > 90 {
		return nil, &ValidationError{Msg: fmt.Sprintf("invalid latitude: %f", lat)}
	}
	if lon < -180 || lon > 180 {
		return nil, &ValidationError{Msg: fmt.Sprintf("invalid longitude: %f", lon)}
	}

	// No spatial index here: the whole record set is scanned and filtered
	// in memory.
	shops, err := s.repo.ListShops(ctx, 0, allShopsLimit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list shops for search: %w", err)
	}

	return FilterByDistance(shops, lat, lon, radiusKM), nil
}

const allShopsLimit = 1 << 30
