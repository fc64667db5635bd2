package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcastell/product-catalog/internal/service"
	"github.com/mcastell/product-catalog/internal/session"
)

// UnauthorizedMessage is returned verbatim by every protected route when the
// session is missing or invalid.
const UnauthorizedMessage = "unauthorized access, please log in"

// RequireLogin short-circuits with 401 before any handler logic runs unless
// the request carries a valid session cookie.
func RequireLogin(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, UnauthorizedMessage)
			}

			userID, ok := auth.UserID(cookie.Value)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, UnauthorizedMessage)
			}

			c.Set("userID", userID)
			return next(c)
		}
	}
}
