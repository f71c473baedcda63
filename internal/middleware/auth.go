package middleware

import (
	"context"
	"lockin_backend/pkg/resp"
	"lockin_backend/pkg/token"
	"net/http"
	"strings"

	"github.com/rs/zerolog/hlog"
)

// AccessTokenCookie - cookie, из которой берётся access токен, если нет заголовка Authorization
const AccessTokenCookie = "access_token"

type accountIDKey struct{}

// Auth пропускает запрос дальше только с валидным access токеном и кладёт ID аккаунта в контекст
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := accessToken(r)
			if raw == "" {
				resp.WriteError(w, http.StatusUnauthorized, "missing access token")
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				hlog.FromRequest(r).Debug().Err(err).Msg("rejected access token")
				resp.WriteError(w, http.StatusUnauthorized, "invalid access token")
				return
			}

			accountID, err := token.AccountID(claims)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "invalid access token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccountID(r.Context(), accountID)))
		})
	}
}

func accessToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if t, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(t)
		}
		return ""
	}

	if c, err := r.Cookie(AccessTokenCookie); err == nil {
		return c.Value
	}
	return ""
}

func WithAccountID(ctx context.Context, accountID int64) context.Context {
	return context.WithValue(ctx, accountIDKey{}, accountID)
}

// AccountIDFromContext - ID аккаунта, положенный Auth
func AccountIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(accountIDKey{}).(int64)
	return id, ok
}
