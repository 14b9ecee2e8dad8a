package repository

import "github.com/khaild19/10AI/internal/model"

type UserStore interface {
	// CreateUser hashes password and inserts the user. A taken username or
	// email yields ErrDuplicate.
	CreateUser(username, email, password string) (*model.User, error)
	// Authenticate returns the user only when the password matches and the
	// account is active. Any mismatch is (nil, nil).
	Authenticate(username, password string) (*model.User, error)
	FindByID(id uint) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
}
