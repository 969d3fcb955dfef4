package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/financetrack/finance-api/internal/api/metrics"
	"github.com/financetrack/finance-api/internal/core/ports"
)

// Auth gates private routes behind a bearer token. It is a single
// decision point: on success it stores the subject's user id in the
// request context and admits the request without writing anything —
// the downstream handler owns the one and only response.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get("Authorization"))
			if token == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusBadRequest, "invalid token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
			c.Set("user_id", userID)
			return next(c)
		}
	}
}

// bearerToken extracts the credential from an Authorization header.
// Returns "" when the header is absent, has no credential part, or
// uses a scheme other than Bearer.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
