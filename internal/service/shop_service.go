package service

import (
	"context"
	"fmt"

	"coffee-filter-api/internal/hours"
	"coffee-filter-api/internal/models"
)

// ShopService contains the core business logic for coffee shop records.
type ShopService struct {
	repo     ShopRepository
	resolver CoordinateResolver
}

// Repository interface for dependency injection
type ShopRepository interface {
	CreateShop(ctx context.Context, shop models.CoffeeShop) (*models.CoffeeShop, error)
	GetShop(ctx context.Context, id int) (*models.CoffeeShop, error)
	ListShops(ctx context.Context, skip, limit int) ([]models.CoffeeShop, error)
	UpdateShop(ctx context.Context, shop models.CoffeeShop) (bool, error)
	DeleteShop(ctx context.Context, id int) (bool, error)
}

// CoordinateResolver turns a free-text address into coordinates. ok is false
// when no match was found; the resolver itself never fails the caller.
type CoordinateResolver interface {
	Resolve(ctx context.Context, address string) (lat, lon float64, ok bool)
}

// NewShopService creates a new shop service
func NewShopService(repo ShopRepository, resolver CoordinateResolver) *ShopService {
	return &ShopService{repo: repo, resolver: resolver}
}

// Create validates and persists a new shop. When latitude or longitude are
// missing they are resolved from the address first; an unresolvable address
// fails the write and nothing is persisted.
func (s *ShopService) Create(ctx context.Context, params models.CreateShopParams) (*models.CoffeeShop, error) {
	if params.Name == "" {
		return nil, &ValidationError{Msg: "name must not be empty"}
	}
	if params.Address == "" {
		return nil, &ValidationError{Msg: "address must not be empty"}
	}

	weekly, err := hours.Normalize(params.WeeklyHours)
	if err != nil {
		return nil, &ValidationError{Msg: err.Error()}
	}

	var latitude, longitude float64
	if params.Latitude != nil && params.Longitude != nil {
		latitude = *params.Latitude
		longitude = *params.Longitude
	} else {
		lat, lon, ok := s.resolver.Resolve(ctx, params.Address)
		if !ok {
			return nil, newGeocodeError(params.Address)
		}
		latitude = lat
		longitude = lon
	}

	image := params.Image
	if image == "" {
		image = models.DefaultImage
	}

	shop := models.CoffeeShop{
		Name:           params.Name,
		Address:        params.Address,
		Latitude:       latitude,
		Longitude:      longitude,
		Image:          image,
		PhotoReference: params.PhotoReference,
		Accessibility:  params.Accessibility,
		HasWifi:        params.HasWifi,
		Description:    params.Description,
		Machine:        params.Machine,
		WeeklyHours:    weekly,
		PourOver:       params.PourOver,
		Website:        params.Website,
		Instagram:      params.Instagram,
		Starred:        params.Starred,
	}

	created, err := s.repo.CreateShop(ctx, shop)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create shop: %w", err)
	}
	return created, nil
}

// Get fetches a shop by id.
func (s *ShopService) Get(ctx context.Context, id int) (*models.CoffeeShop, error) {
	shop, err := s.repo.GetShop(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch shop: %w", err)
	}
	if shop == nil {
		return nil, ErrNotFound
	}
	return shop, nil
}

// List returns shops in id order. Negative skip or non-positive limit fall
// back to the defaults (0 and 100).
func (s *ShopService) List(ctx context.Context, skip, limit int) ([]models.CoffeeShop, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}

	shops, err := s.repo.ListShops(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list shops: %w", err)
	}
	return shops, nil
}

// Update applies a partial update to a shop. Only fields present in the
// payload change. When the address changes and no new coordinates were
// supplied the address is re-resolved; if that fails the stored record stays
// untouched.
func (s *ShopService) Update(ctx context.Context, id int, params models.UpdateShopParams) (*models.CoffeeShop, error) {
	shop, err := s.repo.GetShop(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch shop: %w", err)
	}
	if shop == nil {
		return nil, ErrNotFound
	}

	if params.Name.Set {
		if !params.Name.Valid || params.Name.Value == "" {
			return nil, &ValidationError{Msg: "name must not be empty"}
		}
		shop.Name = params.Name.Value
	}

	addressChanged := false
	if params.Address.Set {
		if !params.Address.Valid || params.Address.Value == "" {
			return nil, &ValidationError{Msg: "address must not be empty"}
		}
		if params.Address.Value != shop.Address {
			addressChanged = true
		}
		shop.Address = params.Address.Value
	}

	coordsSupplied := params.Latitude.Set && params.Latitude.Valid &&
		params.Longitude.Set && params.Longitude.Valid
	if coordsSupplied {
		shop.Latitude = params.Latitude.Value
		shop.Longitude = params.Longitude.Value
	} else if addressChanged {
		lat, lon, ok := s.resolver.Resolve(ctx, shop.Address)
		if !ok {
			return nil, newGeocodeError(shop.Address)
		}
		shop.Latitude = lat
		shop.Longitude = lon
	}

	if params.Image.Set {
		if params.Image.Valid {
			shop.Image = params.Image.Value
		} else {
			shop.Image = ""
		}
	}
	if params.PhotoReference.Set {
		if params.PhotoReference.Valid {
			shop.PhotoReference = &params.PhotoReference.Value
		} else {
			shop.PhotoReference = nil
		}
	}
	if params.Accessibility.Set {
		shop.Accessibility = params.Accessibility.Valid && params.Accessibility.Value
	}
	if params.HasWifi.Set {
		shop.HasWifi = params.HasWifi.Valid && params.HasWifi.Value
	}
	if params.Description.Set {
		shop.Description = params.Description.Value
	}
	if params.Machine.Set {
		shop.Machine = params.Machine.Value
	}
	if params.WeeklyHours.Set {
		weekly, err := hours.Normalize(params.WeeklyHours.Value)
		if err != nil {
			return nil, &ValidationError{Msg: err.Error()}
		}
		shop.WeeklyHours = weekly
	}
	if params.PourOver.Set {
		shop.PourOver = params.PourOver.Valid && params.PourOver.Value
	}
	if params.Website.Set {
		if params.Website.Valid {
			shop.Website = &params.Website.Value
		} else {
			shop.Website = nil
		}
	}
	if params.Instagram.Set {
		if params.Instagram.Valid {
			shop.Instagram = &params.Instagram.Value
		} else {
			shop.Instagram = nil
		}
	}
	if params.Starred.Set {
		shop.Starred = params.Starred.Valid && params.Starred.Value
	}

	found, err := s.repo.UpdateShop(ctx, *shop)
	if err != nil {
		return nil, fmt.Errorf("service: failed to update shop: %w", err)
	}
	if !found {
		return nil, ErrNotFound
	}
	return shop, nil
}

// Delete removes a shop by id. Deletion is permanent.
func (s *ShopService) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.DeleteShop(ctx, id)
	if err != nil {
		return fmt.Errorf("service: failed to delete shop: %w", err)
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
