package textures

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/anthonynsimon/bild/transform"
	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"scenedemos/internal/download"
	"scenedemos/internal/logger"
	"scenedemos/internal/scene"
)

// Fetcher downloads a URL. *download.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (download.Result, error)
}

// Loader fetches, caches, decodes and publishes textures.
type Loader struct {
	Fetcher Fetcher
	// Cache holds downloaded bytes keyed by URL. Nil disables caching.
	Cache hackpadfs.FS
	// MaxSize is the longest edge after downscaling. Zero keeps the source size.
	MaxSize int
	Log     *logger.Logger

	wg sync.WaitGroup
}

// OpenCache returns an on-disk cache rooted at dir, creating it if needed.
func OpenCache(dir string) (hackpadfs.FS, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	root := osfs.NewFS()
	p, err := root.FromOSPath(abs)
	if err != nil {
		return nil, fmt.Errorf("texture cache %s: %w", dir, err)
	}
	if err := hackpadfs.MkdirAll(root, p, 0755); err != nil {
		return nil, fmt.Errorf("texture cache %s: %w", dir, err)
	}
	return root.Sub(p)
}

// Load starts loading tex in the background. Failures are logged and recorded on the texture;
// the texture stays unloaded and nothing retries.
func (l *Loader) Load(ctx context.Context, tex *scene.Texture) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		_ = l.LoadSync(ctx, tex)
	}()
}

// Wait blocks until every Load started so far has finished.
func (l *Loader) Wait() {
	l.wg.Wait()
}

// LoadSync loads tex on the calling goroutine.
func (l *Loader) LoadSync(ctx context.Context, tex *scene.Texture) error {
	img, err := l.image(ctx, tex.URL)
	if err != nil {
		tex.SetError(err)
		l.logf("texture %s: %v", tex.URL, err)
		return err
	}
	tex.SetImage(img)
	b := img.Bounds()
	l.logf("texture %s loaded (%dx%d)", tex.URL, b.Dx(), b.Dy())
	return nil
}

func (l *Loader) image(ctx context.Context, url string) (image.Image, error) {
	data, err := l.bytes(ctx, url)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return Downscale(img, l.MaxSize), nil
}

func (l *Loader) bytes(ctx context.Context, url string) ([]byte, error) {
	name := CacheName(url)
	if l.Cache != nil {
		data, err := hackpadfs.ReadFile(l.Cache, name)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			l.logf("texture cache read %s: %v", name, err)
		}
	}
	if l.Fetcher == nil {
		return nil, errors.New("no fetcher configured")
	}
	res, err := l.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if l.Cache != nil {
		if err := hackpadfs.WriteFullFile(l.Cache, name, res.Data, 0644); err != nil {
			l.logf("texture cache write %s: %v", name, err)
		}
	}
	return res.Data, nil
}

// CacheName is the cache file name for url: a short hash to keep distinct URLs apart, then a
// readable name.
func CacheName(url string) string {
	sum := sha1.Sum([]byte(url))
	return hex.EncodeToString(sum[:6]) + "-" + download.NameFromURL(url)
}

// Downscale shrinks img so its longest edge is at most limit, keeping the aspect ratio.
func Downscale(img image.Image, limit int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if limit <= 0 || (w <= limit && h <= limit) {
		return img
	}
	if w >= h {
		h = h * limit / w
		w = limit
	} else {
		w = w * limit / h
		h = limit
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return transform.Resize(img, w, h, transform.Linear)
}

func (l *Loader) logf(format string, args ...any) {
	if l.Log != nil {
		l.Log.Logf(format, args...)
	}
}
