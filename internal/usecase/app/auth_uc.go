package app

import (
	"github.com/khaild19/10AI/internal/common"
	"github.com/khaild19/10AI/internal/model"
)

// RegisterUser creates the account and signs the caller in.
func (c *AuthUseCase) RegisterUser(username, email, password string) (*model.User, string, error) {
	user, err := c.authService.CreateAccount(username, email, password)
	if err != nil {
		return nil, "", err
	}
	token, err := c.authService.IssueLoginToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// LoginUser checks credentials against the user store only.
func (c *AuthUseCase) LoginUser(username, password string) (*model.User, string, error) {
	user, err := c.authService.VerifyCredentials(username, password)
	if err != nil {
		return nil, "", err
	}
	token, err := c.authService.IssueLoginToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// CurrentUser returns nil without error when the user no longer exists.
func (c *AuthUseCase) CurrentUser(userID uint) (*model.User, error) {
	user, err := c.authService.GetUser(userID)
	if err != nil {
		if se, ok := common.AsServiceError(err); ok && se.Code == common.ErrorCodeNotFound {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
