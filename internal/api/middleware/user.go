package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dom/timesheet/internal/api/response"
)

type contextKey string

const (
	UserIDKey contextKey = "userID"

	// UserIDHeader carries the caller's identity, resolved upstream.
	UserIDHeader = "X-UserId"

	missingUserMessage = "Usuário não informado"
)

// UserID reads the user from the X-UserId header, falling back to
// defaultUserID. Requests with neither are rejected.
func UserID(defaultUserID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
			if userID == "" {
				userID = defaultUserID
			}
			if userID == "" {
				response.Error(w, http.StatusBadRequest, missingUserMessage)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}
