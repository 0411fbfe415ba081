package app

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"

	"cabdin/internal/lib/logger/sl"
	"cabdin/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// Lazy builds the App on the first request. Every caller, concurrent or not,
// gets the result of that single build, including its error.
type Lazy struct {
	log   *slog.Logger
	get   func() (*App, error)
	built atomic.Pointer[App]
}

func NewLazy(log *slog.Logger, build func() (*App, error)) *Lazy {
	l := &Lazy{log: log}
	l.get = sync.OnceValues(func() (*App, error) {
		a, err := build()
		if err != nil {
			log.Error("failed to build application", sl.Err(err))
			return nil, err
		}
		l.built.Store(a)
		return a, nil
	})
	return l
}

func (l *Lazy) Get() (*App, error) {
	return l.get()
}

func (l *Lazy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a, err := l.get()
	if err != nil {
		w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(response.ErrorResponseWithDetails("unavailable", "layanan belum siap"))
		return
	}

	a.Handler().ServeHTTP(w, r)
}

// Stop releases the App if it was ever built.
func (l *Lazy) Stop() {
	if a := l.built.Load(); a != nil {
		a.Stop()
	}
}
