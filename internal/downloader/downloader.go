// Package downloader fetches product images by URL into a per-product
// directory, retrying each URL a bounded number of times.
package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/khaild19/10AI/internal/config"
	"github.com/khaild19/10AI/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

var errEmptyBody = errors.New("empty response body")

type Options struct {
	MaxAttempts int
	RetryDelay  time.Duration
	Timeout     time.Duration
	UserAgent   string
	ChunkSize   int
}

func OptionsFromConfig(cfg config.DownloadConfig) Options {
	return Options{
		MaxAttempts: cfg.MaxAttempts,
		RetryDelay:  cfg.RetryDelay,
		Timeout:     cfg.Timeout,
		UserAgent:   cfg.UserAgent,
		ChunkSize:   cfg.ChunkSize,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 3
	}
	if o.RetryDelay < 0 {
		o.RetryDelay = 0
	}
	if o.Timeout <= 0 {
		o.Timeout = 60 * time.Second
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUserAgent
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = 8192
	}
	return o
}

// Result describes one image written to disk.
type Result struct {
	SourceURL string `json:"source_url"`
	Filename  string `json:"filename"`
	Path      string `json:"path"`
	Size      int64  `json:"size"`
}

// Batch is the outcome of one Acquire call. Results holds only the URLs that
// were written with a non-zero size, in input order.
type Batch struct {
	Folder    string
	Dir       string
	Results   []Result
	Attempted int
}

func (b *Batch) Succeeded() int {
	return len(b.Results)
}

type Downloader struct {
	opts      Options
	client    *http.Client
	sleep     func(ctx context.Context, d time.Duration) error
	newSuffix func() string
}

// New returns a Downloader. A nil client uses a dedicated http.Client.
func New(opts Options, client *http.Client) *Downloader {
	opts = opts.withDefaults()
	if client == nil {
		client = &http.Client{}
	}
	return &Downloader{
		opts:      opts,
		client:    client,
		sleep:     sleepContext,
		newSuffix: randomSuffix,
	}
}

// Acquire downloads every URL in order into destRoot/<sanitized name>.
// Individual URL failures are logged and omitted from the result. Only a
// destination that cannot be prepared is returned as an error.
func (d *Downloader) Acquire(ctx context.Context, productName string, urls []string, destRoot string) (*Batch, error) {
	folder := SanitizeName(productName)

	if err := os.MkdirAll(destRoot, 0755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	if err := utils.EnsurePathNotSymlink(destRoot); err != nil {
		return nil, err
	}
	dir, err := utils.SecureJoin(destRoot, folder)
	if err != nil {
		return nil, fmt.Errorf("resolve product dir: %w", err)
	}
	// a product folder left behind as a symlink must not redirect writes
	if err := utils.EnsureNoSymlinkBetween(destRoot, dir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create product dir: %w", err)
	}

	batch := &Batch{
		Folder:    folder,
		Dir:       dir,
		Results:   []Result{},
		Attempted: len(urls),
	}

	for i, rawURL := range urls {
		res, ok := d.fetchWithRetry(ctx, folder, dir, i+1, rawURL)
		if ok {
			batch.Results = append(batch.Results, res)
		}
	}

	zap.L().Info("image batch finished",
		zap.String("product", productName),
		zap.Int("saved", batch.Succeeded()),
		zap.Int("attempted", batch.Attempted),
	)
	return batch, nil
}

func (d *Downloader) fetchWithRetry(ctx context.Context, folder, dir string, index int, rawURL string) (Result, bool) {
	u, err := parseImageURL(rawURL)
	if err != nil {
		zap.L().Error("image url rejected", zap.Int("index", index), zap.String("url", rawURL), zap.Error(err))
		return Result{}, false
	}

	for attempt := 1; attempt <= d.opts.MaxAttempts; attempt++ {
		res, err := d.fetchOnce(ctx, u, folder, dir, index)
		if err == nil {
			zap.L().Info("image saved",
				zap.Int("index", index),
				zap.String("file", res.Filename),
				zap.Int64("size", res.Size),
			)
			return res, true
		}

		zap.L().Warn("image download attempt failed",
			zap.Int("index", index),
			zap.Int("attempt", attempt),
			zap.String("url", rawURL),
			zap.Error(err),
		)
		if attempt == d.opts.MaxAttempts {
			break
		}
		if err := d.sleep(ctx, d.opts.RetryDelay); err != nil {
			break
		}
	}

	zap.L().Error("image download gave up",
		zap.Int("index", index),
		zap.Int("attempts", d.opts.MaxAttempts),
		zap.String("url", rawURL),
	)
	return Result{}, false
}

func (d *Downloader) fetchOnce(ctx context.Context, u *url.URL, folder, dir string, index int) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, d.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("User-Agent", d.opts.UserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	ext := ResolveExtension(u.Path, resp.Header.Get("Content-Type"))
	filename := BuildFilename(folder, index, d.newSuffix(), ext)
	dst, err := utils.SecureJoin(dir, filename)
	if err != nil {
		return Result{}, err
	}

	size, err := d.writeFile(dst, resp.Body)
	if err != nil {
		_ = os.Remove(dst)
		return Result{}, err
	}

	return Result{
		SourceURL: u.String(),
		Filename:  filename,
		Path:      dst,
		Size:      size,
	}, nil
}

// writeFile copies body to path in ChunkSize pieces and fails on an empty body.
func (d *Downloader) writeFile(path string, body io.Reader) (int64, error) {
	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return 0, err
	}

	var written int64
	buf := make([]byte, d.opts.ChunkSize)
	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			m, writeErr := out.Write(buf[:n])
			written += int64(m)
			if writeErr != nil {
				_ = out.Close()
				return written, writeErr
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			_ = out.Close()
			return written, readErr
		}
	}

	if err := out.Close(); err != nil {
		return written, err
	}
	if written == 0 {
		return 0, errEmptyBody
	}
	return written, nil
}

func parseImageURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, errors.New("missing host")
	}
	return u, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
