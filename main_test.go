package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/khaild19/10AI/internal/config"
	"github.com/khaild19/10AI/internal/testutils"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "catalog-main-config-*")
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
	gin.SetMode(gin.TestMode)

	code := m.Run()

	testutils.RestoreEnv(envs)
	_ = os.RemoveAll(tmpDir)
	os.Exit(code)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldwd) })
}

func TestSplitTrustedProxyList(t *testing.T) {
	got := splitTrustedProxyList(" 1.1.1.1,2.2.2.2; 3.3.3.3 \n4.4.4.4\t")
	if len(got) != 4 {
		t.Fatalf("expected 4 parts, got %v", got)
	}
	if len(splitTrustedProxyList("")) != 0 {
		t.Fatalf("expected no parts for empty input")
	}
}

func TestExportAPI_WritesRoutesJSON(t *testing.T) {
	chdir(t, t.TempDir())

	r := gin.New()
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })
	if err := exportAPI(r, "routes.json"); err != nil {
		t.Fatalf("exportAPI: %v", err)
	}

	b, err := os.ReadFile("routes.json")
	if err != nil {
		t.Fatalf("expected routes.json: %v", err)
	}
	var routes []map[string]any
	if err := json.Unmarshal(b, &routes); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(routes) != 1 || routes[0]["path"] != "/x" {
		t.Fatalf("unexpected routes %v", routes)
	}
}

func TestCheckSecurePath(t *testing.T) {
	chdir(t, t.TempDir())

	if err := checkSecurePath("."); err == nil {
		t.Fatalf("expected working directory to be rejected")
	}
	if err := checkSecurePath("internal"); err == nil {
		t.Fatalf("expected non-allowed directory to be rejected")
	}
	if err := checkSecurePath("saved_images"); err != nil {
		t.Fatalf("expected saved_images to be allowed: %v", err)
	}
	if err := checkSecurePath(filepath.Join("static", "img")); err != nil {
		t.Fatalf("expected nested allowed dir: %v", err)
	}
	if err := checkSecurePath(t.TempDir()); err != nil {
		t.Fatalf("expected directory outside the tree to be allowed: %v", err)
	}
}

func TestEnsureStorageDir_CreatesDirectory(t *testing.T) {
	chdir(t, t.TempDir())

	path, err := ensureStorageDir("saved_images")
	if err != nil {
		t.Fatalf("ensureStorageDir: %v", err)
	}
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		t.Fatalf("expected directory %q: %v", path, err)
	}
}

func TestApplyTrustedProxies(t *testing.T) {
	getClientIP := func(r *gin.Engine) string {
		r.GET("/ip", func(c *gin.Context) {
			c.String(http.StatusOK, c.ClientIP())
		})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ip", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", "203.0.113.10, 10.0.0.1")
		r.ServeHTTP(w, req)
		return strings.TrimSpace(w.Body.String())
	}

	r := gin.New()
	applyTrustedProxies(r, "")
	if got := getClientIP(r); got != "10.0.0.1" {
		t.Fatalf("no proxies: expected remote addr, got %q", got)
	}

	r = gin.New()
	applyTrustedProxies(r, "127.0.0.1,10.0.0.0/8")
	if got := getClientIP(r); got != "203.0.113.10" {
		t.Fatalf("trusted proxy: expected forwarded ip, got %q", got)
	}

	r = gin.New()
	applyTrustedProxies(r, "not-an-ip")
	if got := getClientIP(r); got != "10.0.0.1" {
		t.Fatalf("invalid list: expected remote addr, got %q", got)
	}
}
