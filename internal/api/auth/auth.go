package auth

import (
	accountDTO "lockin_backend/internal/api/dto/account"
	dto "lockin_backend/internal/api/dto/auth"
	"lockin_backend/internal/api/httperr"
	"lockin_backend/internal/converter"
	"lockin_backend/internal/middleware"
	"lockin_backend/internal/model"
	"lockin_backend/internal/service"
	"lockin_backend/pkg/req"
	"lockin_backend/pkg/resp"
	"net/http"
	"time"
)

const (
	sessionIDCookie    = "session_id"
	refreshTokenCookie = "refresh_token"
)

type HandlerDeps struct {
	Serv                 service.AuthService
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
}

type Handler struct {
	serv       service.AuthService
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:       deps.Serv,
		accessTTL:  deps.AccessTokenDuration,
		refreshTTL: deps.RefreshTokenDuration,
	}
}

// Register создаёт аккаунт, открывает сессию
// и возвращает access_token, session_id и refresh_token уходят в cookies
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.Register(
		r.Context(),
		converter.RegisterRequestToAccount(&requestBody),
		requestBody.Password,
	)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	h.setSessionCookies(w, data)

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToTokenResponse(data.AccessToken))
}

// Login создаёт сессию и возвращает access_token, session_id и refresh_token уходят в cookies
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	data, err := h.serv.Login(r.Context(), requestBody.Username, requestBody.Password)
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	h.setSessionCookies(w, data)

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTokenResponse(data.AccessToken))
}

// Refresh выдаёт новый access_token по session_id и refresh_token из cookies
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	sessionID, err := r.Cookie(sessionIDCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no session_id cookie")
		return
	}

	refreshToken, err := r.Cookie(refreshTokenCookie)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "no refresh_token cookie")
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), &model.AuthData{
		SessionID:    sessionID.Value,
		RefreshToken: refreshToken.Value,
	})
	if err != nil {
		httperr.Write(w, r, err)
		return
	}

	h.setCookie(w, middleware.AccessTokenCookie, accessToken, "/", h.accessTTL)

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTokenResponse(accessToken))
}

// Logout закрывает сессию по session_id и чистит cookies
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionIDCookie); err == nil {
		if err := h.serv.Logout(r.Context(), c.Value); err != nil {
			httperr.Write(w, r, err)
			return
		}
	}

	ClearSessionCookies(w)

	resp.WriteJSONResponse(w, http.StatusOK, accountDTO.MessageResponse{Message: "logged out"})
}

func (h *Handler) setSessionCookies(w http.ResponseWriter, data *model.AuthData) {
	h.setCookie(w, sessionIDCookie, data.SessionID, "/", h.refreshTTL)
	h.setCookie(w, refreshTokenCookie, data.RefreshToken, "/api", h.refreshTTL)
	h.setCookie(w, middleware.AccessTokenCookie, data.AccessToken, "/", h.accessTTL)
}

func (h *Handler) setCookie(w http.ResponseWriter, name, value, path string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	})
}

// ClearSessionCookies удаляет все cookies авторизации
func ClearSessionCookies(w http.ResponseWriter) {
	for _, c := range []struct{ name, path string }{
		{sessionIDCookie, "/"},
		{refreshTokenCookie, "/api"},
		{middleware.AccessTokenCookie, "/"},
	} {
		http.SetCookie(w, &http.Cookie{
			Name:     c.name,
			Value:    "",
			Path:     c.path,
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
