//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"sbd/internal"
	"sbd/internal/analytics"
	"sbd/internal/controllers"
	"sbd/internal/providers"
	"sbd/internal/services"
	"sbd/internal/storage"
	"sbd/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,

		storage.NewZstdCompressor,
		storage.NewFileStore,

		services.NewPostService,
		services.NewInteractionService,
		services.NewDraftService,
		services.NewFeedService,
		services.NewVisitService,

		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		analytics.NewScheduler,
		controllers.NewBlogController,
		controllers.NewAdminController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
