package repository

import (
	"gorm.io/gorm"
)

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}

func NewProductRepository(db *gorm.DB) ProductStore {
	return &ProductRepository{db: db}
}

func NewSeasonRepository(db *gorm.DB) SeasonStore {
	return &SeasonRepository{db: db}
}
