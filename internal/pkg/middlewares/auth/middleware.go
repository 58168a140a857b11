package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"foodorder/internal/entities"
	"foodorder/internal/pkg/response"
	"foodorder/internal/service/user"
	"foodorder/pkg/logger"
)

type ctxKey struct{}

// Middleware резолвит текущего пользователя по Authorization: Bearer <token>.
func Middleware(log handlerLogger, authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w)
				return
			}

			current, err := authenticator.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, user.ErrUnauthenticated) {
					unauthorized(w)
					return
				}

				log.Error("authenticate request",
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				)
				_ = response.Write(w, response.Error(http.StatusInternalServerError, "Internal server error", nil))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), current)))
		})
	}
}

func WithUser(ctx context.Context, u *entities.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// UserFromContext пользователь, положенный Middleware. false если роут не под auth.
func UserFromContext(ctx context.Context) (*entities.User, bool) {
	u, ok := ctx.Value(ctxKey{}).(*entities.User)
	return u, ok && u != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter) {
	_ = response.Write(w, response.Error(http.StatusUnauthorized, "Unauthenticated", nil))
}
