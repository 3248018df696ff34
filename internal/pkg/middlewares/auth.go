package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"backoffice/pkg/logger"
)

type staffIDKey struct{}

var ErrInvalidToken = errors.New("invalid auth token")

type authLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Auth проверяет JWT и кладет staff id (subject) в контекст запроса.
// Токен берется из Authorization: Bearer либо из query-параметра
// access_token (websocket из браузера заголовок поставить не может).
func Auth(log authLogger, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			staffID, err := parseStaffID(tokenStr, secret)
			if err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err.Error()),
				).Warn("auth token rejected")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), staffIDKey{}, staffID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func StaffIDFromContext(ctx context.Context) (int64, bool) {
	staffID, ok := ctx.Value(staffIDKey{}).(int64)
	return staffID, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.URL.Query().Get("access_token")
}

func parseStaffID(tokenStr, secret string) (int64, error) {
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, ErrInvalidToken
	}

	staffID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return staffID, nil
}
