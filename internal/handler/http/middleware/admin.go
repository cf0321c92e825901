package middleware

import (
	"net/http"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/user"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/response"
)

// AdminOnly rejects requests from users without the admin flag. The rejection
// is a fixed message; nothing about the underlying data leaks.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, ok := UserFromContext(r.Context())
		if !ok || !u.IsAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
