package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchDerivesName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, defaultUserAgent, r.UserAgent())
		switch r.URL.Path {
		case "/img/Maple.jpg":
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write([]byte("jpeg-bytes"))
		case "/blob":
			w.Header().Set("Content-Type", "image/png")
			w.Header().Set("Content-Disposition", `attachment; filename="stone wall.png"`)
			_, _ = w.Write([]byte("png-bytes"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New()
	res, err := c.Fetch(context.Background(), srv.URL+"/img/Maple.jpg?format=2500w")
	require.NoError(t, err)
	assert.Equal(t, "Maple.jpg", res.Name)
	assert.Equal(t, []byte("jpeg-bytes"), res.Data)

	res, err = c.Fetch(context.Background(), srv.URL+"/blob")
	require.NoError(t, err)
	assert.Equal(t, "stone_wall.png", res.Name)

	_, err = c.Fetch(context.Background(), srv.URL+"/missing")
	assert.ErrorContains(t, err, "HTTP 404")
}

func TestFetchHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Fetch(ctx, srv.URL)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNameFromURL(t *testing.T) {
	assert.Equal(t, "Maple.jpg", NameFromURL("https://cdn.example/x/Maple.jpeg?format=2500w"))
	assert.Equal(t, "a_b", NameFromURL("https://cdn.example/a b"))
	assert.Equal(t, "download", NameFromURL(""))
}
