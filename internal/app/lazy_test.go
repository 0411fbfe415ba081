package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"cabdin/internal/config"
	"cabdin/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp() *App {
	return &App{
		log: slogdiscard.NewDiscardLogger(),
		handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}),
	}
}

func TestLazy_BuildsOnce(t *testing.T) {
	var calls atomic.Int32
	built := testApp()

	l := NewLazy(slogdiscard.NewDiscardLogger(), func() (*App, error) {
		calls.Add(1)
		return built, nil
	})

	assert.Equal(t, int32(0), calls.Load())

	const workers = 32
	var wg sync.WaitGroup
	results := make([]*App, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, err := l.Get()
			assert.NoError(t, err)
			results[i] = a
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, a := range results {
		assert.Same(t, built, a)
	}

	rec := httptest.NewRecorder()
	l.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, int32(1), calls.Load())
}

func TestLazy_SharesError(t *testing.T) {
	var calls atomic.Int32
	boom := errors.New("database unreachable")

	l := NewLazy(slogdiscard.NewDiscardLogger(), func() (*App, error) {
		calls.Add(1)
		return nil, boom
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.Get()
			assert.ErrorIs(t, err, boom)
		}()
	}
	wg.Wait()

	rec := httptest.NewRecorder()
	l.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "unavailable")
	assert.Equal(t, int32(1), calls.Load())

	// nothing was built, so Stop has nothing to release
	l.Stop()
}

func TestStaticPrefix(t *testing.T) {
	assert.Equal(t, "/uploads", staticPrefix("http://localhost:8080/uploads"))
	assert.Equal(t, "/files/public", staticPrefix("https://cabdin.example.id/files/public"))
	assert.Equal(t, "/uploads", staticPrefix("http://localhost:8080"))
}

func TestNewBlobStore(t *testing.T) {
	_, err := newBlobStore(configFor(t, "ftp"))
	assert.Error(t, err)

	s, err := newBlobStore(configFor(t, driverLocal))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/berita/a.png", s.PublicURL("berita", "a.png"))
}

func configFor(t *testing.T, driver string) config.StorageConfig {
	t.Helper()
	return config.StorageConfig{
		Driver:  driver,
		BaseDir: t.TempDir(),
		BaseURL: "http://localhost:8080/uploads",
		MaxSize: 1 << 20,
	}
}
