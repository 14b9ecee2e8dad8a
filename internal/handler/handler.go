package handler

import (
	"github.com/khaild19/10AI/internal/service"
	"github.com/khaild19/10AI/internal/usecase/app"
)

type Handler struct {
	authUC    *app.AuthUseCase
	catalogUC *app.CatalogUseCase
	products  *service.ProductService
	seasons   *service.SeasonService
}

func NewHandler(appUseCase *app.AppUseCase, products *service.ProductService, seasons *service.SeasonService) *Handler {
	return &Handler{
		authUC:    appUseCase.Auth,
		catalogUC: appUseCase.Catalog,
		products:  products,
		seasons:   seasons,
	}
}
