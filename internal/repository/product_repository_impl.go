package repository

import (
	"time"

	"github.com/khaild19/10AI/internal/model"

	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func (r *ProductRepository) Create(product *model.Product) error {
	if product.Status == "" {
		product.Status = model.ProductStatusPending
	}
	if product.Images == nil {
		product.Images = model.ImageList{}
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(product).Error
	})
	return translateError(err)
}

func (r *ProductRepository) ListByUser(userID uint) ([]model.Product, error) {
	products := []model.Product{}
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Update(productID, userID uint, patch ProductPatch) (bool, error) {
	if patch.Empty() {
		return false, nil
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.URL != nil {
		updates["url"] = *patch.URL
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Images != nil {
		updates["images"] = *patch.Images
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Season != nil {
		updates["season"] = *patch.Season
	}

	var matched bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Product{}).
			Where("id = ? AND user_id = ?", productID, userID).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		matched = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, translateError(err)
	}
	return matched, nil
}

func (r *ProductRepository) Delete(productID, userID uint) (bool, error) {
	var deleted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", productID, userID).Delete(&model.Product{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (r *ProductRepository) DeleteAllByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ?", userID).Delete(&model.Product{})
		if res.Error != nil {
			return res.Error
		}
		count = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
