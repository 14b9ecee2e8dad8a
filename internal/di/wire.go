//go:build wireinject
// +build wireinject

package di

import (
	"github.com/khaild19/10AI/internal/downloader"
	"github.com/khaild19/10AI/internal/handler"
	"github.com/khaild19/10AI/internal/repository"
	"github.com/khaild19/10AI/internal/router"
	"github.com/khaild19/10AI/internal/service"
	"github.com/khaild19/10AI/internal/usecase/app"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitializeApplication(gormDB *gorm.DB) (*Application, error) {
	wire.Build(
		repository.NewUserRepository,
		repository.NewProductRepository,
		repository.NewSeasonRepository,
		service.NewAuthService,
		service.NewProductService,
		service.NewSeasonService,
		provideStorageConfig,
		provideDownloader,
		wire.Bind(new(app.ImageAcquirer), new(*downloader.Downloader)),
		app.NewAuthUseCase,
		app.NewCatalogUseCase,
		app.NewAppUseCase,
		handler.NewHandler,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
