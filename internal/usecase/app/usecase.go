package app

import (
	"context"

	"github.com/khaild19/10AI/internal/config"
	"github.com/khaild19/10AI/internal/downloader"
	"github.com/khaild19/10AI/internal/service"
)

// ImageAcquirer downloads a batch of image URLs for one product.
type ImageAcquirer interface {
	Acquire(ctx context.Context, productName string, urls []string, destRoot string) (*downloader.Batch, error)
}

type AuthUseCase struct {
	authService *service.AuthService
}

type CatalogUseCase struct {
	productService *service.ProductService
	acquirer       ImageAcquirer
	storage        config.StorageConfig
}
