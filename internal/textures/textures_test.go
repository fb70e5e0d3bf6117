package textures

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenedemos/internal/download"
	"scenedemos/internal/logger"
	"scenedemos/internal/scene"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestLoadFetchesDecodesAndCaches(t *testing.T) {
	body := pngBytes(t, 64, 32)
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	cache, err := mem.NewFS()
	require.NoError(t, err)
	l := &Loader{Fetcher: download.New(), Cache: cache, MaxSize: 16, Log: logger.New("")}

	url := srv.URL + "/wall.png"
	tex := scene.NewTexture(url)
	l.Load(context.Background(), tex)
	l.Wait()

	img, version := tex.Image()
	require.NotNil(t, img)
	assert.Equal(t, 1, version)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	cached, err := hackpadfs.ReadFile(cache, CacheName(url))
	require.NoError(t, err)
	assert.Equal(t, body, cached)

	again := scene.NewTexture(url)
	require.NoError(t, l.LoadSync(context.Background(), again))
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits))
}

func TestLoadFailureLeavesTextureUnloaded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	log := logger.New("")
	l := &Loader{Fetcher: download.New(), Log: log}
	tex := scene.NewTexture(srv.URL + "/gone.jpg")
	l.Load(context.Background(), tex)
	l.Wait()

	img, version := tex.Image()
	assert.Nil(t, img)
	assert.Zero(t, version)
	assert.ErrorContains(t, tex.Err(), "HTTP 404")
	require.NotEmpty(t, log.Lines())
	assert.Contains(t, log.Lines()[0], "gone.jpg")
}

func TestLoadRejectsUndecodableData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not an image"))
	}))
	defer srv.Close()

	l := &Loader{Fetcher: download.New()}
	tex := scene.NewTexture(srv.URL + "/x.png")
	err := l.LoadSync(context.Background(), tex)
	assert.ErrorContains(t, err, "decode")
	assert.Error(t, tex.Err())
}

func TestDownscale(t *testing.T) {
	tall := image.NewRGBA(image.Rect(0, 0, 10, 40))
	got := Downscale(tall, 20)
	assert.Equal(t, 5, got.Bounds().Dx())
	assert.Equal(t, 20, got.Bounds().Dy())

	small := image.NewRGBA(image.Rect(0, 0, 4, 4))
	assert.Same(t, small, Downscale(small, 20))
	assert.Same(t, small, Downscale(small, 0))
}

func TestCacheNameSeparatesURLs(t *testing.T) {
	a := CacheName("https://a.example/Maple.jpg?format=2500w")
	b := CacheName("https://b.example/Maple.jpg")
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "Maple.jpg")
}
