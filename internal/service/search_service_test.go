package service

import (
	"context"
	"testing"

	"coffee-filter-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSearchRepository is a mock implementation of the SearchRepository interface
type MockSearchRepository struct {
	mock.Mock
}

func (m *MockSearchRepository) ListShops(ctx context.Context, skip, limit int) ([]models.CoffeeShop, error) {
	args := m.Called(ctx, skip, limit)
	return args.Get(0).([]models.CoffeeShop), args.Error(1)
}

func testShops() []models.CoffeeShop {
	return []models.CoffeeShop{
		{ID: 1, Name: "At Center", Latitude: 45.5, Longitude: -122.6},
		{ID: 2, Name: "Near", Latitude: 45.55, Longitude: -122.6},     // ~5.6 km north
		{ID: 3, Name: "Far", Latitude: 46.5, Longitude: -122.6},       // ~111 km north
		{ID: 4, Name: "Also Near", Latitude: 45.5, Longitude: -122.55}, // ~5.6 km east
	}
}

func TestFilterByDistance(t *testing.T) {
	tests := []struct {
		name     string
		shops    []models.CoffeeShop
		lat      float64
		lon      float64
		radiusKM float64
		expected []int
	}{
		{
			name:     "default-style radius keeps nearby shops",
			shops:    testShops(),
			lat:      45.5,
			lon:      -122.6,
			radiusKM: 10.0,
			expected: []int{1, 2, 4},
		},
		{
			name:     "large radius keeps everything",
			shops:    testShops(),
			lat:      45.5,
			lon:      -122.6,
			radiusKM: 200.0,
			expected: []int{1, 2, 3, 4},
		},
		{
			name:     "zero radius keeps only the exact center",
			shops:    testShops(),
			lat:      45.5,
			lon:      -122.6,
			radiusKM: 0,
			expected: []int{1},
		},
		{
			name:     "negative radius keeps only the exact center",
			shops:    testShops(),
			lat:      45.5,
			lon:      -122.6,
			radiusKM: -1,
			expected: []int{1},
		},
		{
			name:     "no records",
			shops:    []models.CoffeeShop{},
			lat:      45.5,
			lon:      -122.6,
			radiusKM: 10.0,
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterByDistance(tt.shops, tt.lat, tt.lon, tt.radiusKM)

			ids := []int{}
			for _, shop := range filtered {
				ids = append(ids, shop.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestFilterByDistance_MonotonicInRadius(t *testing.T) {
	shops := testShops()
	previous := map[int]bool{}

	for _, radius := range []float64{0, 1, 5, 10, 50, 120, 500} {
		included := map[int]bool{}
		for _, shop := range FilterByDistance(shops, 45.5, -122.6, radius) {
			included[shop.ID] = true
		}
		for id := range previous {
			assert.True(t, included[id], "radius %v dropped shop %d included at a smaller radius", radius, id)
		}
		previous = included
	}
}

func TestFilterByDistance_Idempotent(t *testing.T) {
	shops := testShops()

	first := FilterByDistance(shops, 45.5, -122.6, 10.0)
	second := FilterByDistance(shops, 45.5, -122.6, 10.0)

	assert.Equal(t, first, second)
}

func TestFilterByDistance_PreservesOrder(t *testing.T) {
	shops := testShops()
	filtered := FilterByDistance(shops, 45.5, -122.6, 200.0)

	for i := 1; i < len(filtered); i++ {
		assert.Less(t, filtered[i-1].ID, filtered[i].ID)
	}
}

func TestSearchService_SearchByLocation(t *testing.T) {
	tests := []struct {
		name        string
		lat         float64
		lon         float64
		radius      float64
		expectError bool
		expectedIDs []int
	}{
		{
			name:        "valid search",
			lat:         45.5,
			lon:         -122.6,
			radius:      10.0,
			expectedIDs: []int{1, 2, 4},
		},
		{
			name:        "invalid latitude",
			lat:         91,
			lon:         0,
			radius:      10.0,
			expectError: true,
		},
		{
			name:        "invalid longitude",
			lat:         0,
			lon:         -181,
			radius:      10.0,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockSearchRepository)
			service := NewSearchService(mockRepo)

			if !tt.expectError {
				mockRepo.On("ListShops", mock.Anything, 0, mock.Anything).Return(testShops(), nil)
			}

			shops, err := service.SearchByLocation(context.Background(), tt.lat, tt.lon, tt.radius)

			if tt.expectError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			ids := []int{}
			for _, shop := range shops {
				ids = append(ids, shop.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
			mockRepo.AssertExpectations(t)
		})
	}
}
