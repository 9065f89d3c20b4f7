package middleware

import (
	"bank-api/internal/config"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	t.Run("defaults to any origin", func(t *testing.T) {
		h := CORS(config.CORSConfig{})(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight for configured origin", func(t *testing.T) {
		h := CORS(config.CORSConfig{AllowedOrigins: []string{"http://bank.local"}})(okHandler())

		req := httptest.NewRequest(http.MethodOptions, "/customers/1", nil)
		req.Header.Set("Origin", "http://bank.local")
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "http://bank.local", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
	})

	t.Run("foreign origin gets no grant", func(t *testing.T) {
		h := CORS(config.CORSConfig{AllowedOrigins: []string{"http://bank.local"}})(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
