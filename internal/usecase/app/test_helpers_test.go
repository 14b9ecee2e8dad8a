package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/khaild19/10AI/internal/config"
	"github.com/khaild19/10AI/internal/downloader"
	"github.com/khaild19/10AI/internal/model"
	"github.com/khaild19/10AI/internal/repository"
	"github.com/khaild19/10AI/internal/service"
	"github.com/khaild19/10AI/internal/testutils"

	"gorm.io/gorm"
)

type appFixture struct {
	gdb       *gorm.DB
	storage   config.StorageConfig
	products  *service.ProductService
	authUC    *AuthUseCase
	catalogUC *CatalogUseCase
}

func setupAppFixture(t *testing.T) *appFixture {
	t.Helper()

	gdb := testutils.SetupDB(t)
	storage := config.StorageConfig{Path: t.TempDir(), URLPrefix: "/saved_images/"}
	products := service.NewProductService(repository.NewProductRepository(gdb))
	dl := downloader.New(downloader.Options{
		MaxAttempts: 3,
		RetryDelay:  time.Millisecond,
		Timeout:     150 * time.Millisecond,
	}, nil)

	return &appFixture{
		gdb:       gdb,
		storage:   storage,
		products:  products,
		authUC:    NewAuthUseCase(service.NewAuthService(repository.NewUserRepository(gdb))),
		catalogUC: NewCatalogUseCase(products, dl, storage),
	}
}

// newImageServer serves /ok/<name> with image bytes and stalls on /stall/<name>.
func newImageServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ok/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("\xff\xd8\xff\xe0fake-jpeg"))
	})
	mux.HandleFunc("/stall/", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	mux.HandleFunc("/broken/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

type failingProductStore struct {
	repository.ProductStore
}

func (failingProductStore) Create(*model.Product) error {
	return errors.New("database is locked")
}
