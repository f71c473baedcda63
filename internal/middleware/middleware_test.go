package middleware

import (
	"bytes"
	"encoding/json"
	"lockin_backend/internal/model"
	"lockin_backend/pkg/token"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("middleware-secret")

func echoAccount(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := AccountIDFromContext(r.Context())
		require.True(t, ok)
		_ = json.NewEncoder(w).Encode(id)
	})
}

func signed(t *testing.T, id int64, ttl time.Duration) string {
	tok, err := token.GenerateAccessToken(&model.Account{ID: id, Username: "u"}, secret, ttl)
	require.NoError(t, err)
	return tok
}

func TestAuth(t *testing.T) {
	handler := Auth(secret)(echoAccount(t))

	t.Run("bearer токен", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/casino/stats", nil)
		r.Header.Set("Authorization", "Bearer "+signed(t, 42, time.Minute))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "42\n", w.Body.String())
	})

	t.Run("токен из cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/casino/stats", nil)
		r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: signed(t, 7, time.Minute)})
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "7\n", w.Body.String())
	})

	t.Run("без токена", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/casino/stats", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("просроченный токен", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/casino/stats", nil)
		r.Header.Set("Authorization", "Bearer "+signed(t, 42, -time.Minute))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("не bearer схема", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/casino/stats", nil)
		r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	handler := chimw.RequestID(AccessLog(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("hi"))
	})))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/study/session", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "POST", line["method"])
	assert.Equal(t, "/api/study/session", line["path"])
	assert.Equal(t, float64(http.StatusTeapot), line["status"])
	assert.Equal(t, float64(2), line["size"])
	assert.NotEmpty(t, line["request_id"])
	assert.Equal(t, "request", line["message"])
}
