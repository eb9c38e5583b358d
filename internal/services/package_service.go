package services

import (
	"context"

	"go.uber.org/zap"
	tm "tripwise/internal/models/trip_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

type PackageServiceInterface interface {
	GetAllPackages(ctx context.Context, page int, pageSize int) ([]tm.TravelPackage, error)
}

type PackageService struct {
	packageRepo repositories.PackageRepositoryInterface
	logger      *zap.Logger
}

func NewPackageService(packageRepo repositories.PackageRepositoryInterface, logger *zap.Logger) PackageServiceInterface {
	return &PackageService{
		packageRepo: packageRepo,
		logger:      logger,
	}
}

// GetAllPackages returns one page of the catalog, seeding the default
// packages on the first read of an empty store.
func (p *PackageService) GetAllPackages(ctx context.Context, page int, pageSize int) ([]tm.TravelPackage, error) {
	packages, err := p.packageRepo.GetAllPackages(ctx)
	if err != nil {
		return nil, utils.StorageError("get packages", err)
	}

	if packages == nil {
		packages = DefaultPackages()
		if err := p.packageRepo.SavePackages(ctx, packages); err != nil {
			return nil, utils.StorageError("seed packages", err)
		}
		p.logger.Info("seeded travel packages", zap.Int("count", len(packages)))
	}

	if page < 1 || pageSize < 1 {
		return []tm.TravelPackage{}, nil
	}
	// compare page counts first so a huge page cannot overflow the offset
	pages := len(packages) / pageSize
	if len(packages)%pageSize != 0 {
		pages++
	}
	if page > pages {
		return []tm.TravelPackage{}, nil
	}
	offset := (page - 1) * pageSize
	end := len(packages)
	if pageSize < end-offset {
		end = offset + pageSize
	}
	return packages[offset:end], nil
}

func DefaultPackages() []tm.TravelPackage {
	return []tm.TravelPackage{
		{
			ID:          "pkg1",
			Title:       "Goa Beach Paradise",
			Description: "Experience the pristine beaches, vibrant nightlife, and Portuguese heritage of Goa.",
			Price:       15000 * minorPerMajor,
			Duration:    "4D/3N",
			Image:       "https://images.unsplash.com/photo-1512343879784-a960bf40e7f2?w=500",
			Features:    []string{"Beach Resort Stay", "Water Sports", "Local Sightseeing", "Sunset Cruise"},
			Rating:      4.8,
			Location:    "Goa, India",
		},
		{
			ID:          "pkg2",
			Title:       "Kerala Backwaters",
			Description: "Discover the serene backwaters, spice gardens, and cultural richness of Gods Own Country.",
			Price:       22000 * minorPerMajor,
			Duration:    "5D/4N",
			Image:       "https://images.unsplash.com/photo-1602216056096-3b40cc0c9944?w=500",
			Features:    []string{"Houseboat Stay", "Spice Plantation Tour", "Ayurveda Massage", "Traditional Cuisine"},
			Rating:      4.9,
			Location:    "Kerala, India",
		},
		{
			ID:          "pkg3",
			Title:       "Rajasthan Royal Experience",
			Description: "Immerse yourself in the royal heritage, desert landscapes, and architectural marvels.",
			Price:       35000 * minorPerMajor,
			Duration:    "7D/6N",
			Image:       "https://images.unsplash.com/photo-1599661046827-dacff0c0f09a?w=500",
			Features:    []string{"Palace Hotels", "Desert Safari", "Cultural Shows", "Heritage Tours"},
			Rating:      4.7,
			Location:    "Rajasthan, India",
		},
		{
			ID:          "pkg4",
			Title:       "Himachal Adventure",
			Description: "Experience the majestic Himalayas, adventure sports, and hill station charm.",
			Price:       18000 * minorPerMajor,
			Duration:    "6D/5N",
			Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=500",
			Features:    []string{"Mountain Resort", "Trekking", "River Rafting", "Scenic Cable Car"},
			Rating:      4.6,
			Location:    "Himachal Pradesh, India",
		},
	}
}
