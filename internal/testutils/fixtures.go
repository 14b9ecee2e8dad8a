package testutils

import (
	"fmt"
	"testing"

	"github.com/khaild19/10AI/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the plaintext behind every fixture user.
const DefaultPassword = "Password123"

// CreateUser inserts an active user with DefaultPassword.
func CreateUser(t *testing.T, gdb *gorm.DB, username string) *model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &model.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("create user %q: %v", username, err)
	}
	return u
}

// CreateProduct inserts a product owned by userID.
func CreateProduct(t *testing.T, gdb *gorm.DB, userID uint, name string, images ...string) *model.Product {
	t.Helper()

	p := &model.Product{
		UserID:      userID,
		Name:        name,
		URL:         "https://shop.example.com/" + name,
		Description: name + " description",
		Images:      model.ImageList(images),
		Status:      model.ProductStatusPending,
	}
	if err := gdb.Create(p).Error; err != nil {
		t.Fatalf("create product %q: %v", name, err)
	}
	return p
}
