package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	tm "tripwise/internal/models/trip_models"
)

type PackageRepositoryInterface interface {
	SavePackages(ctx context.Context, packages []tm.TravelPackage) error
	GetAllPackages(ctx context.Context) ([]tm.TravelPackage, error)
}

func NewPackageRepository(store TripStore) PackageRepositoryInterface {
	return &PackageRepository{store: store}
}

type PackageRepository struct {
	store TripStore
}

func (p PackageRepository) SavePackages(ctx context.Context, packages []tm.TravelPackage) error {
	raw, err := json.Marshal(packages)
	if err != nil {
		return fmt.Errorf("encode packages: %w", err)
	}
	return p.store.Put(ctx, tm.PackagesKey, raw)
}

// GetAllPackages returns nil, nil when the catalog was never seeded.
func (p PackageRepository) GetAllPackages(ctx context.Context) ([]tm.TravelPackage, error) {
	raw, err := p.store.Get(ctx, tm.PackagesKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var packages []tm.TravelPackage
	if err := json.Unmarshal(raw, &packages); err != nil {
		return nil, fmt.Errorf("decode packages: %w", err)
	}
	return packages, nil
}
