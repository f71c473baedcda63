package account

import (
	"context"
	"errors"
	"lockin_backend/internal/middleware"
	"lockin_backend/internal/model"
	"lockin_backend/internal/service/mocks"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func withAccount(r *http.Request, id int64) *http.Request {
	return r.WithContext(middleware.WithAccountID(context.Background(), id))
}

func TestResetProgress(t *testing.T) {
	serv := new(mocks.AccountService)
	serv.On("ResetProgress", mock.Anything, int64(4)).Return(nil).Once()

	w := httptest.NewRecorder()
	NewHandler(HandlerDeps{Serv: serv}).ResetProgress(w, withAccount(httptest.NewRequest(http.MethodPost, "/api/reset_progress", nil), 4))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"progress reset"}`, w.Body.String())
}

func TestDeleteAccount(t *testing.T) {
	t.Run("cookies сбрасываются", func(t *testing.T) {
		serv := new(mocks.AccountService)
		serv.On("DeleteAccount", mock.Anything, int64(4)).Return(nil).Once()

		w := httptest.NewRecorder()
		NewHandler(HandlerDeps{Serv: serv}).DeleteAccount(w, withAccount(httptest.NewRequest(http.MethodDelete, "/api/delete_account", nil), 4))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Result().Cookies())
	})

	t.Run("ошибка хранилища - 500 без подробностей", func(t *testing.T) {
		serv := new(mocks.AccountService)
		serv.On("DeleteAccount", mock.Anything, int64(4)).Return(errors.New("tx aborted")).Once()

		w := httptest.NewRecorder()
		NewHandler(HandlerDeps{Serv: serv}).DeleteAccount(w, withAccount(httptest.NewRequest(http.MethodDelete, "/api/delete_account", nil), 4))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
	})

	t.Run("аккаунт уже удалён", func(t *testing.T) {
		serv := new(mocks.AccountService)
		serv.On("DeleteAccount", mock.Anything, int64(4)).Return(model.ErrNotFound).Once()

		w := httptest.NewRecorder()
		NewHandler(HandlerDeps{Serv: serv}).DeleteAccount(w, withAccount(httptest.NewRequest(http.MethodDelete, "/api/delete_account", nil), 4))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
