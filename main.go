package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/khaild19/10AI/internal/config"
	"github.com/khaild19/10AI/internal/consts"
	"github.com/khaild19/10AI/internal/db"
	"github.com/khaild19/10AI/internal/di"
	"github.com/khaild19/10AI/internal/logger"
	"github.com/khaild19/10AI/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	configDir := flag.String("config", "config", "directory containing config.yaml")
	exportRoutes := flag.Bool("export", false, "write the route table to routes.json and exit")
	flag.Parse()

	if err := config.InitConfig(*configDir); err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()

	log, err := logger.New(cfg.Server.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if config.UsedConfigFile() == "" {
		log.Warn("config.yaml not found, using defaults and environment", zap.String("dir", config.GetConfigDir()))
	}

	storagePath, err := ensureStorageDir(cfg.Storage.Path)
	if err != nil {
		log.Fatal("prepare storage directory", zap.Error(err))
	}

	gdb, err := db.InitDB(cfg.Database)
	if err != nil {
		log.Fatal("init database", zap.String("engine", cfg.Database.Type), zap.Error(err))
	}
	defer db.Close(gdb)
	defer func() { _ = service.CloseRedisClient() }()

	application, err := di.InitializeApplication(gdb)
	if err != nil {
		log.Fatal("wire application", zap.Error(err))
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	applyTrustedProxies(r, cfg.Server.TrustedProxies)
	application.Router.Init(r)

	if *exportRoutes {
		if err := exportAPI(r, "routes.json"); err != nil {
			log.Fatal("export routes", zap.Error(err))
		}
		log.Info("routes exported", zap.String("file", "routes.json"))
		return
	}

	printWelcomeMessage(cfg, storagePath)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	// wait for a signal, then give in-flight requests 5 seconds
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
		return
	}
	log.Info("server exited")
}

func printWelcomeMessage(cfg config.Config, storagePath string) {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   version  : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   database : %s\n", cfg.Database.Type)
	fmt.Printf(" │   storage  : %s\n", storagePath)
	fmt.Printf(" │   port     : %s\n", cfg.Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

type routeInfo struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Handler string `json:"handler"`
}

func exportAPI(r *gin.Engine, file string) error {
	var exportList []routeInfo
	for _, route := range r.Routes() {
		exportList = append(exportList, routeInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	data, err := json.MarshalIndent(exportList, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, data, 0644)
}

func ensureStorageDir(path string) (string, error) {
	if err := checkSecurePath(path); err != nil {
		return "", err
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", fmt.Errorf("create storage directory %q: %w", path, err)
	}
	return path, nil
}

// checkSecurePath refuses storage directories that would expose the working
// tree through the static file route.
func checkSecurePath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path %q: %w", path, err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	if absPath == cwd {
		return fmt.Errorf("storage path %q must not be the working directory", path)
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		// outside the working tree
		return nil
	}

	allowedDirs := []string{
		"saved_images",
		"uploads",
		"public",
		"static",
		"tmp",
	}
	firstComponent := strings.Split(filepath.ToSlash(rel), "/")[0]
	for _, allowed := range allowedDirs {
		if strings.EqualFold(firstComponent, allowed) {
			return nil
		}
	}
	return fmt.Errorf("storage path %q must live under one of %v inside the working directory", path, allowedDirs)
}

func splitTrustedProxyList(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		switch r {
		case ',', ';', ' ', '\n', '\t', '\r':
			return true
		}
		return false
	})
}

// applyTrustedProxies makes ClientIP honour X-Forwarded-For only from the
// configured proxies. An invalid list falls back to trusting none.
func applyTrustedProxies(r *gin.Engine, raw string) {
	proxies := splitTrustedProxyList(raw)
	if len(proxies) == 0 {
		_ = r.SetTrustedProxies(nil)
		return
	}
	if err := r.SetTrustedProxies(proxies); err != nil {
		zap.L().Warn("invalid trusted_proxies, trusting none", zap.String("value", raw), zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
}
