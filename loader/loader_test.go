package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"cubeview/assets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFS(t *testing.T) {
	l := New(WithFS(fstest.MapFS{
		"src/shader/vertex.expr": {Data: []byte("Position")},
	}))

	for _, url := range []string{"/src/shader/vertex.expr", "src/shader/vertex.expr", "file://src/shader/vertex.expr"} {
		got, err := l.Load(context.Background(), url)
		require.NoError(t, err, url)
		assert.Equal(t, "Position", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	l := New(WithFS(fstest.MapFS{}))

	_, err := l.Load(context.Background(), "/nope.expr")

	var rle *ResourceLoadError
	require.True(t, errors.As(err, &rle), "err = %v", err)
	assert.Equal(t, "/nope.expr", rle.URL)
	assert.Zero(t, rle.Status)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadEmbedded(t *testing.T) {
	l := New(WithEmbedded(assets.FS))

	got, err := l.Load(context.Background(), EmbedScheme+assets.FragmentShaderPath)
	require.NoError(t, err)
	assert.Contains(t, got, "Light")
}

func TestLoadEmbeddedUnavailable(t *testing.T) {
	l := New()

	_, err := l.Load(context.Background(), EmbedScheme+assets.VertexShaderPath)
	assert.ErrorIs(t, err, ErrEmbedUnavailable)
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/vertex.expr":
			_, _ = w.Write([]byte("vec3(0, 0, 0)"))
		case "/broken.expr":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	l := New(WithHTTPClient(srv.Client()))

	got, err := l.Load(context.Background(), srv.URL+"/vertex.expr")
	require.NoError(t, err)
	assert.Equal(t, "vec3(0, 0, 0)", got)

	for path, status := range map[string]int{
		"/missing.expr": http.StatusNotFound,
		"/broken.expr":  http.StatusInternalServerError,
	} {
		_, err = l.Load(context.Background(), srv.URL+path)
		var rle *ResourceLoadError
		require.True(t, errors.As(err, &rle), "err = %v", err)
		assert.Equal(t, status, rle.Status, path)
	}
}

func TestLoadHTTPDoesNotRetryByDefault(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	l := New(WithHTTPClient(srv.Client()))
	_, err := l.Load(context.Background(), srv.URL+"/x")
	require.Error(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestLoadHTTPCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := New(WithHTTPClient(srv.Client()))
	_, err := l.Load(ctx, srv.URL+"/slow")

	var rle *ResourceLoadError
	require.True(t, errors.As(err, &rle), "err = %v", err)
}

func TestLocalPath(t *testing.T) {
	l := New(WithRoot("/srv/www"))

	p, ok := l.LocalPath("/src/shader/vertex.expr")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/srv/www", "src", "shader", "vertex.expr"), p)

	_, ok = l.LocalPath("http://example.com/vertex.expr")
	assert.False(t, ok)
	_, ok = l.LocalPath(EmbedScheme + assets.VertexShaderPath)
	assert.False(t, ok)

	_, ok = New(WithFS(fstest.MapFS{})).LocalPath("/a.expr")
	assert.False(t, ok)
}
