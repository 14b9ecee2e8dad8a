package service

import (
	"errors"
	"strings"

	"github.com/khaild19/10AI/internal/common"
	"github.com/khaild19/10AI/internal/model"
	"github.com/khaild19/10AI/internal/repository"

	"go.uber.org/zap"
)

type CreateProductInput struct {
	Name        string
	URL         string
	Description string
	Price       float64
	Images      []string
	Season      string
}

func (s *ProductService) CreateProduct(ownerID uint, in CreateProductInput) (*model.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, common.NewValidationError("product name is required")
	}
	if in.Price < 0 {
		return nil, common.NewValidationError("price cannot be negative")
	}

	p := &model.Product{
		UserID:      ownerID,
		Name:        in.Name,
		URL:         in.URL,
		Description: in.Description,
		Price:       in.Price,
		Images:      model.ImageList(in.Images),
		Season:      in.Season,
		Status:      model.ProductStatusPending,
	}
	if err := s.productStore.Create(p); err != nil {
		if errors.Is(err, repository.ErrUnknownOwner) {
			return nil, common.NewUnauthorizedError("user no longer exists")
		}
		zap.L().Error("create product", zap.Uint("user_id", ownerID), zap.Error(err))
		return nil, common.NewInternalError("failed to create product")
	}
	return p, nil
}

func (s *ProductService) ListProducts(ownerID uint) ([]model.Product, error) {
	products, err := s.productStore.ListByUser(ownerID)
	if err != nil {
		zap.L().Error("list products", zap.Uint("user_id", ownerID), zap.Error(err))
		return nil, common.NewInternalError("failed to load products")
	}
	return products, nil
}

// UpdateProduct applies a partial update. Nothing to change, or no product
// with that id for this owner, is NotFound.
func (s *ProductService) UpdateProduct(ownerID, productID uint, patch repository.ProductPatch) error {
	if patch.Status != nil && !patch.Status.Valid() {
		return common.NewValidationError("unknown product status")
	}
	if patch.Price != nil && *patch.Price < 0 {
		return common.NewValidationError("price cannot be negative")
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return common.NewValidationError("product name cannot be empty")
	}

	ok, err := s.productStore.Update(productID, ownerID, patch)
	if err != nil {
		zap.L().Error("update product", zap.Uint("product_id", productID), zap.Error(err))
		return common.NewInternalError("failed to update product")
	}
	if !ok {
		return common.NewNotFoundError("product not found or nothing to update")
	}
	return nil
}

func (s *ProductService) DeleteProduct(ownerID, productID uint) error {
	ok, err := s.productStore.Delete(productID, ownerID)
	if err != nil {
		zap.L().Error("delete product", zap.Uint("product_id", productID), zap.Error(err))
		return common.NewInternalError("failed to delete product")
	}
	if !ok {
		return common.NewNotFoundError("product not found")
	}
	return nil
}

func (s *ProductService) DeleteAllProducts(ownerID uint) (int64, error) {
	n, err := s.productStore.DeleteAllByUser(ownerID)
	if err != nil {
		zap.L().Error("delete all products", zap.Uint("user_id", ownerID), zap.Error(err))
		return 0, common.NewInternalError("failed to delete products")
	}
	return n, nil
}
