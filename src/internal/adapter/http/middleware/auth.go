package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/payza/wallet-backend/src/internal/logger"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const userIDKey contextKey = "userID"

// UserID returns the authenticated user id placed on the context by BearerAuth.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

func BearerAuth(secret, issuer string) func(http.Handler) http.Handler {
	key := []byte(secret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(key) == 0 {
				logger.Error("bearer auth middleware missing server configuration", nil, logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				http.Error(w, "server auth configuration is missing", http.StatusInternalServerError)
				return
			}

			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				unauthorized(w, r, "missing_bearer_token")
				return
			}

			claims := &jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims,
				func(token *jwt.Token) (any, error) {
					if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
					}
					return key, nil
				},
				jwt.WithIssuer(issuer),
				jwt.WithExpirationRequired(),
			)
			if err != nil || !token.Valid || claims.Subject == "" {
				unauthorized(w, r, "invalid_token")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, claims.Subject)))
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request, reason string) {
	logger.Info("bearer auth middleware unauthorized request", logger.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"reason": reason,
	})
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}
