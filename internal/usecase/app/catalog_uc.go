package app

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/khaild19/10AI/internal/common"
	"github.com/khaild19/10AI/internal/consts"
	"github.com/khaild19/10AI/internal/service"

	"go.uber.org/zap"
)

var saveImagesSuggestions = []string{
	"Check the server's internet connection",
	"Make sure the image URLs are correct and publicly reachable",
	"Try again in a few moments",
}

type SaveImagesRequest struct {
	ProductName string
	ImageURLs   []string
	URL         string
	Description string
	Season      string
	Price       float64
}

type SavedImage struct {
	SourceURL string `json:"source_url"`
	Filename  string `json:"filename"`
	Path      string `json:"path"`
	Size      int64  `json:"size"`
}

type SaveImagesResult struct {
	Success     bool         `json:"success"`
	SavedCount  int          `json:"saved_count"`
	TotalCount  int          `json:"total_count"`
	FolderPath  string       `json:"folder_path,omitempty"`
	Images      []SavedImage `json:"images,omitempty"`
	ProductID   uint         `json:"product_id,omitempty"`
	Warning     string       `json:"warning,omitempty"`
	Message     string       `json:"message,omitempty"`
	Error       string       `json:"error,omitempty"`
	Suggestions []string     `json:"suggestions,omitempty"`
}

// SaveImagesLocally downloads the request's images and records a product
// pointing at the stored copies. The product row is written only when at
// least one image was saved. A failed insert does not undo the files; it is
// reported as a warning.
func (c *CatalogUseCase) SaveImagesLocally(ctx context.Context, ownerID uint, req SaveImagesRequest) (*SaveImagesResult, error) {
	req.ProductName = strings.TrimSpace(req.ProductName)
	if req.ProductName == "" || len(req.ImageURLs) == 0 {
		return nil, common.NewValidationError("product name and image urls are required")
	}
	if req.Price < 0 {
		return nil, common.NewValidationError("price cannot be negative")
	}
	if strings.TrimSpace(req.Season) == "" {
		req.Season = consts.DefaultSeasonName
	}

	batch, err := c.acquirer.Acquire(ctx, req.ProductName, req.ImageURLs, c.storage.Path)
	if err != nil {
		zap.L().Error("prepare image storage", zap.String("product", req.ProductName), zap.Error(err))
		return nil, common.NewInternalError("failed to prepare image storage")
	}

	result := &SaveImagesResult{
		SavedCount: batch.Succeeded(),
		TotalCount: batch.Attempted,
	}

	if batch.Succeeded() == 0 {
		result.Error = fmt.Sprintf("failed to download all %d images; check the internet connection and the image links", batch.Attempted)
		result.Suggestions = append([]string(nil), saveImagesSuggestions...)
		return result, nil
	}

	folder := path.Join(c.publicRoot(), batch.Folder)
	result.Success = true
	result.FolderPath = folder
	result.Message = fmt.Sprintf("saved %d of %d images to %s", result.SavedCount, result.TotalCount, folder)

	paths := make([]string, 0, len(batch.Results))
	for _, r := range batch.Results {
		rel := path.Join(folder, r.Filename)
		paths = append(paths, rel)
		result.Images = append(result.Images, SavedImage{
			SourceURL: r.SourceURL,
			Filename:  r.Filename,
			Path:      rel,
			Size:      r.Size,
		})
	}

	product, err := c.productService.CreateProduct(ownerID, service.CreateProductInput{
		Name:        req.ProductName,
		URL:         req.URL,
		Description: req.Description,
		Price:       req.Price,
		Images:      paths,
		Season:      req.Season,
	})
	if err != nil {
		zap.L().Error("persist product after image download",
			zap.Uint("user_id", ownerID),
			zap.String("product", req.ProductName),
			zap.Error(err),
		)
		result.Warning = "images were saved but the product could not be stored in the database"
		return result, nil
	}

	result.ProductID = product.ID
	return result, nil
}

// publicRoot is the storage-relative prefix recorded in product image paths,
// e.g. "saved_images". It matches the static route the files are served from.
func (c *CatalogUseCase) publicRoot() string {
	if p := strings.Trim(c.storage.URLPrefix, "/"); p != "" {
		return p
	}
	return filepath.ToSlash(filepath.Base(c.storage.Path))
}
