package controllers_fx

import (
	"go.uber.org/fx"
	"tripwise/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewDraftController),
	fx.Provide(controllers.NewBookingController),
	fx.Provide(controllers.NewPackageController),
	fx.Provide(controllers.NewHealthController))
