package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/khaild19/10AI/internal/config"
	"github.com/khaild19/10AI/internal/consts"
	"github.com/khaild19/10AI/internal/downloader"
	"github.com/khaild19/10AI/internal/repository"
	"github.com/khaild19/10AI/internal/service"
	"github.com/khaild19/10AI/internal/testutils"
	"github.com/khaild19/10AI/internal/usecase/app"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type handlerFixture struct {
	gdb        *gorm.DB
	h          *Handler
	storageDir string
}

func setupHandler(t *testing.T) *handlerFixture {
	t.Helper()

	gdb := testutils.SetupDB(t)
	storage := config.StorageConfig{Path: t.TempDir(), URLPrefix: "/saved_images/"}

	authService := service.NewAuthService(repository.NewUserRepository(gdb))
	products := service.NewProductService(repository.NewProductRepository(gdb))
	seasons := service.NewSeasonService(repository.NewSeasonRepository(gdb))
	dl := downloader.New(downloader.Options{MaxAttempts: 2, RetryDelay: time.Millisecond, Timeout: time.Second}, nil)

	appUC := app.NewAppUseCase(
		app.NewAuthUseCase(authService),
		app.NewCatalogUseCase(products, dl, storage),
	)
	return &handlerFixture{
		gdb:        gdb,
		h:          NewHandler(appUC, products, seasons),
		storageDir: storage.Path,
	}
}

// asUser stands in for the JWT middleware.
func asUser(id uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(consts.ContextUserID, id)
		c.Next()
	}
}

func doJSON(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
}
