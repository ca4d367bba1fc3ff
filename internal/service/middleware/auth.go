package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"pokedeck/internal/service/logger"
)

// Identity is the gate-verified caller attached to the request context.
// Handlers receive it through GetIdentity and never rebuild it from the
// request themselves.
type Identity struct {
	UserID uint
	Email  string
}

type identityKey int

const identityCtxKey identityKey = 0

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, identity)
}

func GetIdentity(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityCtxKey).(Identity)
	return id, ok
}

// AuthMiddleware rejects requests without a valid bearer token before any
// handler runs.
func AuthMiddleware(jwtToken JwtTokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.AccessLogger.Warn("Missing Authorization header",
					zap.String("request_id", requestID),
					zap.String("url", r.URL.String()),
				)
				writeAuthError(w, "no token provided")
				return
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				logger.AccessLogger.Warn("Malformed Authorization header",
					zap.String("request_id", requestID),
					zap.String("url", r.URL.String()),
				)
				writeAuthError(w, "no token provided")
				return
			}

			claims, err := jwtToken.Validate(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				logger.AccessLogger.Warn("Invalid or expired token",
					zap.String("request_id", requestID),
					zap.Error(err),
				)
				writeAuthError(w, "invalid or expired token")
				return
			}

			identity := Identity{UserID: claims.UserID, Email: claims.Email}
			ctx := WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
