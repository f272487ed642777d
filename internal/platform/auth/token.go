package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/healer/healer-api/internal/platform/render"
)

const subjectContextKey = "token_subject"

// AccessDeniedMessage is returned for missing or invalid bearer tokens.
const AccessDeniedMessage = "Access Denied"

// Token guards a route group with HMAC-signed bearer tokens.
func Token(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return render.Error(c, http.StatusUnauthorized, AccessDeniedMessage)
			}

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !tok.Valid {
				return render.Error(c, http.StatusUnauthorized, AccessDeniedMessage)
			}

			if sub, err := tok.Claims.GetSubject(); err == nil {
				c.Set(subjectContextKey, sub)
			}
			return next(c)
		}
	}
}

// IssueToken mints a bearer token for the given subject.
func IssueToken(secret []byte, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// TokenSubject returns the subject of the validated bearer token.
func TokenSubject(c echo.Context) string {
	sub, _ := c.Get(subjectContextKey).(string)
	return sub
}
