package repository

import (
	"github.com/khaild19/10AI/internal/model"

	"gorm.io/gorm"
)

type SeasonRepository struct {
	db *gorm.DB
}

func (r *SeasonRepository) Create(userID uint, name string, description *string) (*model.Season, error) {
	season := &model.Season{
		UserID:      userID,
		Name:        name,
		Description: description,
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(season).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return season, nil
}

func (r *SeasonRepository) ListByUser(userID uint) ([]model.Season, error) {
	seasons := []model.Season{}
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&seasons).Error
	if err != nil {
		return nil, err
	}
	return seasons, nil
}

func (r *SeasonRepository) Update(oldName, newName string, userID uint, description *string) (bool, error) {
	updates := map[string]interface{}{
		"name": newName,
	}
	if description != nil {
		updates["description"] = *description
	}

	var matched bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Season{}).
			Where("user_id = ? AND name = ?", userID, oldName).
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

func (r *SeasonRepository) Delete(name string, userID uint) (bool, error) {
	var deleted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND name = ?", userID, name).Delete(&model.Season{})
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
