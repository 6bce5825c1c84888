package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/AlenaMolokova/cardauth/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
)

type ClientID string

type clientKey struct{}

func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")

			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				log.Debug("Middleware: missing or invalid Authorization header")
				utils.WriteJSONError(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})

			if err != nil || !token.Valid {
				log.WithError(err).Debug("Middleware: invalid token")
				utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid token claims")
				return
			}

			exp, ok := claims["exp"].(float64)
			if !ok || time.Unix(int64(exp), 0).Before(time.Now()) {
				utils.WriteJSONError(w, http.StatusUnauthorized, "Token expired or invalid")
				return
			}

			subject, ok := claims["sub"].(string)
			if !ok || subject == "" {
				utils.WriteJSONError(w, http.StatusUnauthorized, "Invalid token claims")
				return
			}

			ctx := context.WithValue(r.Context(), clientKey{}, ClientID(subject))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClientID(r *http.Request) (ClientID, bool) {
	clientID, ok := r.Context().Value(clientKey{}).(ClientID)
	return clientID, ok
}
