package study

import (
	"lockin_backend/internal/middleware"
	"lockin_backend/internal/model"
	"lockin_backend/internal/service/mocks"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func router(serv *mocks.StudyService, accountID int64) http.Handler {
	h := NewHandler(HandlerDeps{Serv: serv})
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(middleware.WithAccountID(r.Context(), accountID)))
		})
	})
	r.Post("/study/session", h.RecordSession)
	r.Post("/study/session/{id}/close", h.CloseSession)
	return r
}

func TestRecordSession(t *testing.T) {
	t.Run("201 и id сессии", func(t *testing.T) {
		serv := new(mocks.StudyService)
		serv.On("RecordSession", mock.Anything, int64(3), model.RecordSession{DurationMinutes: 45}).Return(int64(12), nil).Once()

		w := httptest.NewRecorder()
		router(serv, 3).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/study/session", strings.NewReader(`{"duration_minutes":45}`)))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"session_id":12}`, w.Body.String())
	})

	t.Run("нулевая длительность", func(t *testing.T) {
		serv := new(mocks.StudyService)
		serv.On("RecordSession", mock.Anything, int64(3), model.RecordSession{}).Return(int64(0), model.ErrInvalidInput).Once()

		w := httptest.NewRecorder()
		router(serv, 3).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/study/session", strings.NewReader(`{"duration_minutes":0}`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("битый json", func(t *testing.T) {
		w := httptest.NewRecorder()
		router(new(mocks.StudyService), 3).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/study/session", strings.NewReader(`{`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCloseSession(t *testing.T) {
	serv := new(mocks.StudyService)
	serv.On("CloseSession", mock.Anything, int64(3), int64(12)).Return(nil).Once()
	serv.On("CloseSession", mock.Anything, int64(3), int64(13)).Return(model.ErrNotFound).Once()

	w := httptest.NewRecorder()
	router(serv, 3).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/study/session/12/close", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router(serv, 3).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/study/session/13/close", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router(serv, 3).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/study/session/abc/close", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
