package service

import (
	"errors"
	"strings"

	"github.com/khaild19/10AI/internal/common"
	"github.com/khaild19/10AI/internal/model"
	"github.com/khaild19/10AI/internal/repository"

	"go.uber.org/zap"
)

func (s *SeasonService) CreateSeason(ownerID uint, name string, description *string) (*model.Season, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.NewValidationError("season name is required")
	}

	season, err := s.seasonStore.Create(ownerID, name, description)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, common.NewConflictError("season already exists")
		}
		zap.L().Error("create season", zap.Uint("user_id", ownerID), zap.Error(err))
		return nil, common.NewInternalError("failed to create season")
	}
	return season, nil
}

func (s *SeasonService) ListSeasons(ownerID uint) ([]model.Season, error) {
	seasons, err := s.seasonStore.ListByUser(ownerID)
	if err != nil {
		zap.L().Error("list seasons", zap.Uint("user_id", ownerID), zap.Error(err))
		return nil, common.NewInternalError("failed to load seasons")
	}
	return seasons, nil
}

func (s *SeasonService) RenameSeason(ownerID uint, oldName, newName string, description *string) error {
	newName = strings.TrimSpace(newName)
	if oldName == "" || newName == "" {
		return common.NewValidationError("old and new season names are required")
	}

	ok, err := s.seasonStore.Update(oldName, newName, ownerID, description)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return common.NewConflictError("season already exists")
		}
		zap.L().Error("rename season", zap.Uint("user_id", ownerID), zap.Error(err))
		return common.NewInternalError("failed to update season")
	}
	if !ok {
		return common.NewNotFoundError("season not found")
	}
	return nil
}

func (s *SeasonService) DeleteSeason(ownerID uint, name string) error {
	ok, err := s.seasonStore.Delete(name, ownerID)
	if err != nil {
		zap.L().Error("delete season", zap.Uint("user_id", ownerID), zap.Error(err))
		return common.NewInternalError("failed to delete season")
	}
	if !ok {
		return common.NewNotFoundError("season not found")
	}
	return nil
}
