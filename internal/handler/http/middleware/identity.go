package middleware

import (
	"context"
	"net/http"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/user"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/response"
)

type contextKey string

const userContextKey contextKey = "current_user"

// ExternalIDHeader carries the chat identity asserted by the trusted gateway.
const ExternalIDHeader = "X-External-ID"

// Identity resolves the gateway-asserted external identity to a user record,
// creating it on first contact, and stores it in the request context.
func Identity(userService user.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			externalID := r.Header.Get(ExternalIDHeader)
			if externalID == "" {
				response.Unauthorized(w, "X-External-ID header is required")
				return
			}

			u, err := userService.Identify(r.Context(), externalID)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the user resolved by the Identity middleware.
func UserFromContext(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(userContextKey).(user.User)
	return u, ok
}
