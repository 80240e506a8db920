package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// Заголовки, которые выставляет сервис аутентификации перед нами
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

const (
	msgMissingIdentity = "требуется аутентификация"
	msgInvalidRole     = "некорректная роль пользователя"
	msgWrongRole       = "операция недоступна для этой роли"
)

// Identity аутентифицированный пользователь запроса
type Identity struct {
	UserID string
	Role   domain.Role
}

type identityKey struct{}

// WithIdentity кладет пользователя в контекст
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext пользователь, установленный RequireRole
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// RequireRole пропускает запросы с заголовками пользователя одной из ролей.
// Нет заголовков - 401, другая роль - 403
func RequireRole(roles ...domain.Role) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
			rawRole := strings.TrimSpace(r.Header.Get(HeaderUserRole))
			if userID == "" || rawRole == "" {
				handlers.RespondUnauthorized(w, msgMissingIdentity)
				return
			}

			role := domain.Role(strings.ToLower(rawRole))
			if !role.IsValid() {
				handlers.RespondUnauthorized(w, msgInvalidRole)
				return
			}

			if !hasRole(roles, role) {
				handlers.RespondForbidden(w, msgWrongRole)
				return
			}

			ctx := WithIdentity(r.Context(), Identity{UserID: userID, Role: role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func hasRole(allowed []domain.Role, role domain.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
