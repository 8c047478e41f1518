package devstub

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/techiefinder/client/internal/core/domain"
)

var errInvalidCredentials = errors.New("invalid credentials")
var errUserExists = errors.New("user already exists")
var errUserNotFound = errors.New("user not found")
var errTechnicianNotFound = errors.New("technician not found")

// issueToken signs an HS256 access token carrying the identity claims the
// client's restore path reads back.
func (s *Server) issueToken(u *domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":       u.Email,
		"uid":       u.ID,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
		"role":      string(u.Role),
		"exp":       time.Now().Add(s.cfg.TokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.cfg.JWTSecret))
}

// requireAuth validates the bearer token and injects uid/role into context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
		}

		claims := jwt.MapClaims{}
		tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(s.cfg.JWTSecret), nil
		})
		if err != nil || !tkn.Valid {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		if uid, ok := claims["uid"].(float64); ok {
			c.Set("uid", int64(uid))
		}
		c.Set("role", claims["role"])

		return next(c)
	}
}

// callerID returns the authenticated user id placed by requireAuth.
func callerID(c echo.Context) int64 {
	id, _ := c.Get("uid").(int64)
	return id
}
