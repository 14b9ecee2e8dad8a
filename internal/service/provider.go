package service

import (
	repo "github.com/khaild19/10AI/internal/repository"
)

type AuthService struct {
	userStore repo.UserStore
}

type ProductService struct {
	productStore repo.ProductStore
}

type SeasonService struct {
	seasonStore repo.SeasonStore
}

func NewAuthService(userStore repo.UserStore) *AuthService {
	return &AuthService{userStore: userStore}
}

func NewProductService(productStore repo.ProductStore) *ProductService {
	return &ProductService{productStore: productStore}
}

func NewSeasonService(seasonStore repo.SeasonStore) *SeasonService {
	return &SeasonService{seasonStore: seasonStore}
}
