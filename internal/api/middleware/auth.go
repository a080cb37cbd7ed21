package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/accountly/user-service/internal/api/metrics"
	"github.com/accountly/user-service/internal/core/ports"
)

// UserIDKey is the echo context key under which Auth stores the verified
// user id for downstream handlers.
const UserIDKey = "user_id"

// Auth gates protected routes behind a bearer token. The header is split on
// a space and the second segment is the token; a missing header or missing
// segment rejects with "Access denied.", a failed verification with
// "Invalid token.". Rejection is terminal — no handler or store code runs.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied.")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[1] == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied.")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token.")
			}

			c.Set(UserIDKey, claims.UserID)
			return next(c)
		}
	}
}
