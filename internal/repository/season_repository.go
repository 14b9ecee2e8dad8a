package repository

import "github.com/khaild19/10AI/internal/model"

// SeasonStore addresses seasons by (userID, name).
type SeasonStore interface {
	Create(userID uint, name string, description *string) (*model.Season, error)
	ListByUser(userID uint) ([]model.Season, error)
	// Update renames oldName to newName. description replaces the stored one
	// only when non-nil.
	Update(oldName, newName string, userID uint, description *string) (bool, error)
	Delete(name string, userID uint) (bool, error)
}
