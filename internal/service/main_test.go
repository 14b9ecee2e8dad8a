package service

import (
	"os"
	"testing"

	"github.com/khaild19/10AI/internal/config"
	"github.com/khaild19/10AI/internal/testutils"
)

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "catalog-service-config-*")
	if err != nil {
		panic(err)
	}

	envs := []testutils.SavedEnv{
		testutils.SetEnv("CATALOG_SERVER_MODE", "debug"),
		testutils.SetEnv("CATALOG_JWT_SECRET", "test_secret"),
		testutils.SetEnv("CATALOG_REDIS_ENABLED", "false"),
	}
	if err := config.InitConfig(tmpDir); err != nil {
		panic(err)
	}

	code := m.Run()

	testutils.RestoreEnv(envs)
	_ = os.RemoveAll(tmpDir)
	os.Exit(code)
}
