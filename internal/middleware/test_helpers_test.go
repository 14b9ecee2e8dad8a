package middleware

import (
	"sync"
	"testing"

	"github.com/khaild19/10AI/internal/config"
	"github.com/khaild19/10AI/internal/repository"
	"github.com/khaild19/10AI/internal/testutils"

	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (*gorm.DB, repository.UserStore) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	return gdb, repository.NewUserRepository(gdb)
}

func resetStatusCache() {
	statusCache = sync.Map{}
}

// withConfigEnv reloads the configuration with the given CATALOG_* overrides
// and restores the package defaults when the test ends.
func withConfigEnv(t *testing.T, env map[string]string) {
	t.Helper()

	// registered first so it runs after t.Setenv has restored the environment
	t.Cleanup(func() {
		if err := config.InitConfig(testConfigDir); err != nil {
			t.Errorf("restore config: %v", err)
		}
	})
	for k, v := range env {
		t.Setenv(k, v)
	}
	if err := config.InitConfig(testConfigDir); err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
}
