package package_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripwise/internal/repositories"
	"tripwise/internal/services"
)

var Module = fx.Provide(
	providePackageRepo, providePackageService)

func providePackageRepo(store repositories.TripStore) repositories.PackageRepositoryInterface {
	return repositories.NewPackageRepository(store)
}

func providePackageService(packageRepo repositories.PackageRepositoryInterface, logger *zap.Logger) services.PackageServiceInterface {
	return services.NewPackageService(packageRepo, logger)
}
