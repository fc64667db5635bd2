package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mcastell/product-catalog/internal/events"
	"github.com/mcastell/product-catalog/internal/logging"
	"github.com/mcastell/product-catalog/internal/service"
	"github.com/mcastell/product-catalog/internal/session"
)

type PageHandler struct {
	Auth     *service.AuthService
	Producer *events.Producer
}

type loginPage struct {
	Message string
}

type dashboardPage struct {
	UserID uint
}

func sessionCookie(value string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     session.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if !expires.IsZero() {
		cookie.Expires = expires
	}
	return cookie
}

func (h *PageHandler) sessionUser(c echo.Context) (uint, bool) {
	cookie, err := c.Cookie(session.CookieName)
	if err != nil {
		return 0, false
	}
	return h.Auth.UserID(cookie.Value)
}

// Index sends logged-in users to the dashboard and everyone else to the login
// form.
func (h *PageHandler) Index(c echo.Context) error {
	if _, ok := h.sessionUser(c); ok {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	return c.Render(http.StatusOK, "login.html", loginPage{})
}

func (h *PageHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", loginPage{})
}

// Login handles the form POST. A failed login re-renders the form with an
// inline message and status 200.
func (h *PageHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "pages.login")

	username := c.FormValue("username")
	password := c.FormValue("password")

	token, userID, err := h.Auth.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Render(http.StatusOK, "login.html", loginPage{
				Message: "Incorrect credentials. Please try again.",
			})
		}
		l.Error("login_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error during login")
	}

	c.SetCookie(sessionCookie(token, time.Time{}))

	h.publish(c, fmt.Sprint(userID), map[string]any{
		"type":     "user_logged_in",
		"userID":   userID,
		"username": username,
	})

	return c.Redirect(http.StatusFound, "/dashboard")
}

func (h *PageHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(session.CookieName); err == nil {
		h.Auth.Logout(cookie.Value)
	}
	c.SetCookie(sessionCookie("", time.Now().Add(-time.Hour)))
	return c.Redirect(http.StatusFound, "/")
}

func (h *PageHandler) Dashboard(c echo.Context) error {
	userID, ok := h.sessionUser(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}
	return c.Render(http.StatusOK, "dashboard.html", dashboardPage{UserID: userID})
}

func (h *PageHandler) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.UserTopic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka_publish_error", "error", err)
	}
}
