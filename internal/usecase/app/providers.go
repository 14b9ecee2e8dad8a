package app

import (
	"github.com/khaild19/10AI/internal/config"
	"github.com/khaild19/10AI/internal/service"
)

type AppUseCase struct {
	Auth    *AuthUseCase
	Catalog *CatalogUseCase
}

func NewAuthUseCase(authService *service.AuthService) *AuthUseCase {
	return &AuthUseCase{authService: authService}
}

func NewCatalogUseCase(
	productService *service.ProductService,
	acquirer ImageAcquirer,
	storage config.StorageConfig,
) *CatalogUseCase {
	return &CatalogUseCase{
		productService: productService,
		acquirer:       acquirer,
		storage:        storage,
	}
}

func NewAppUseCase(authUseCase *AuthUseCase, catalogUseCase *CatalogUseCase) *AppUseCase {
	return &AppUseCase{
		Auth:    authUseCase,
		Catalog: catalogUseCase,
	}
}
