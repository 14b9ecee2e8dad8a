package service

import (
	"errors"

	"github.com/khaild19/10AI/internal/common"
	"github.com/khaild19/10AI/internal/model"
	"github.com/khaild19/10AI/internal/repository"
	"github.com/khaild19/10AI/internal/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IssueLoginToken signs a session token for an active user.
func (s *AuthService) IssueLoginToken(user *model.User) (string, error) {
	if !user.IsActive {
		return "", common.NewForbiddenError("account is disabled")
	}

	token, err := utils.GenerateLoginToken(user.ID, user.Username, utils.LoginTokenTTL())
	if err != nil {
		zap.L().Error("sign login token", zap.Uint("user_id", user.ID), zap.Error(err))
		return "", common.NewInternalError("login failed, please try again later")
	}
	return token, nil
}

// CreateAccount validates the registration fields and stores the user.
func (s *AuthService) CreateAccount(username, email, password string) (*model.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, common.NewValidationError("username, email and password are required")
	}
	if ok, msg := utils.ValidateUsername(username); !ok {
		return nil, common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidateEmail(email); !ok {
		return nil, common.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(password); !ok {
		return nil, common.NewValidationError(msg)
	}

	user, err := s.userStore.CreateUser(username, email, password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, common.NewConflictError("username or email already exists")
		}
		zap.L().Error("create user", zap.String("username", username), zap.Error(err))
		return nil, common.NewInternalError("registration failed, please try again later")
	}
	return user, nil
}

// VerifyCredentials returns the user for a matching active account.
func (s *AuthService) VerifyCredentials(username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, common.NewValidationError("username and password are required")
	}

	user, err := s.userStore.Authenticate(username, password)
	if err != nil {
		zap.L().Error("authenticate user", zap.String("username", username), zap.Error(err))
		return nil, common.NewInternalError("login failed, please try again later")
	}
	if user == nil {
		return nil, common.NewUnauthorizedError("invalid username or password")
	}
	return user, nil
}

// GetUser loads a user by id; a missing user is NotFound.
func (s *AuthService) GetUser(userID uint) (*model.User, error) {
	user, err := s.userStore.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("user not found")
		}
		zap.L().Error("load user", zap.Uint("user_id", userID), zap.Error(err))
		return nil, common.NewInternalError("failed to load user")
	}
	return user, nil
}
