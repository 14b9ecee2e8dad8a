package service

import (
	"testing"

	"github.com/khaild19/10AI/internal/common"
	"github.com/khaild19/10AI/internal/repository"
	"github.com/khaild19/10AI/internal/testutils"

	"gorm.io/gorm"
)

type serviceFixture struct {
	gdb      *gorm.DB
	auth     *AuthService
	products *ProductService
	seasons  *SeasonService
}

func setupServices(t *testing.T) *serviceFixture {
	t.Helper()
	gdb := testutils.SetupDB(t)
	return &serviceFixture{
		gdb:      gdb,
		auth:     NewAuthService(repository.NewUserRepository(gdb)),
		products: NewProductService(repository.NewProductRepository(gdb)),
		seasons:  NewSeasonService(repository.NewSeasonRepository(gdb)),
	}
}

func assertServiceErrorCode(t *testing.T, err error, code common.ErrorCode) {
	t.Helper()
	serviceErr, ok := common.AsServiceError(err)
	if !ok {
		t.Fatalf("expected ServiceError with code %q, got %v", code, err)
	}
	if serviceErr.Code != code {
		t.Fatalf("expected code %q, got %q (%s)", code, serviceErr.Code, serviceErr.Message)
	}
}

func strPtr(s string) *string { return &s }
