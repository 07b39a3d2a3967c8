package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"patientcleaner/pkg/config"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

type routes func(*httprouter.Router)

func (f routes) RegisterRoutes(router *httprouter.Router) {
	f(router)
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

func newTestApplication() *Application {
	a := NewApplication(config.Default())
	a.SetApp(
		routes(func(r *httprouter.Router) {
			r.POST("/v1/patients/clean", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
				w.WriteHeader(http.StatusOK)
			})
			r.GET("/boom", func(http.ResponseWriter, *http.Request, httprouter.Params) {
				panic("boom")
			})
		}),
		routes(func(r *httprouter.Router) {
			r.GET("/health", func(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
				w.WriteHeader(http.StatusOK)
			})
		}),
	)
	return a
}

func TestApplication_Routing(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		path        string
		contentType string
		wantStatus  int
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{name: "clean with json", method: http.MethodPost, path: "/v1/patients/clean", contentType: "application/json", wantStatus: http.StatusOK},
		{name: "clean without json", method: http.MethodPost, path: "/v1/patients/clean", contentType: "text/plain", wantStatus: http.StatusUnsupportedMediaType},
		{name: "panic recovered", method: http.MethodGet, path: "/boom", wantStatus: http.StatusInternalServerError},
		{name: "unknown route", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	handler := newTestApplication().Handler()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader("[]"))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestApplication_CloseAll(t *testing.T) {
	a := newTestApplication()

	var order []string
	a.OnShutdown(closerFunc(func() error {
		order = append(order, "mongo")
		return errors.New("already disconnected")
	}))
	a.OnShutdown(closerFunc(func() error {
		order = append(order, "kafka")
		return nil
	}))

	a.closeAll()
	a.closeAll()

	assert.Equal(t, []string{"mongo", "kafka"}, order)
}
