package di

import (
	"net/http"

	"github.com/khaild19/10AI/internal/config"
	"github.com/khaild19/10AI/internal/downloader"
	"github.com/khaild19/10AI/internal/router"
)

type Application struct {
	Router  *router.Router
	Storage config.StorageConfig
}

func NewApplication(r *router.Router, storage config.StorageConfig) *Application {
	return &Application{
		Router:  r,
		Storage: storage,
	}
}

func provideStorageConfig() config.StorageConfig {
	return config.Get().Storage
}

// provideDownloader builds the acquisition engine from the download section.
// Per-attempt timeouts live in the engine, so the client itself has none.
func provideDownloader() *downloader.Downloader {
	return downloader.New(downloader.OptionsFromConfig(config.Get().Download), &http.Client{})
}
