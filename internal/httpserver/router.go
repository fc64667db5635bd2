package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mcastell/product-catalog/internal/handlers"
	authmw "github.com/mcastell/product-catalog/internal/middleware/auth"
	"github.com/mcastell/product-catalog/internal/service"
)

type Deps struct {
	ProductHandler *handlers.ProductHandler
	PageHandler    *handlers.PageHandler
	Auth           *service.AuthService
}

func Register(e *echo.Echo, d *Deps) {
	e.Renderer = handlers.NewRenderer()

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.GET("/", d.PageHandler.Index)
	e.GET("/login", d.PageHandler.LoginForm)
	e.POST("/login", d.PageHandler.Login)
	e.GET("/logout", d.PageHandler.Logout)
	e.GET("/dashboard", d.PageHandler.Dashboard)

	api := e.Group("/api", authmw.RequireLogin(d.Auth))
	api.GET("/products", d.ProductHandler.GetProducts)
	api.GET("/products/:id", d.ProductHandler.GetProduct)
	api.POST("/products", d.ProductHandler.CreateProduct)
	api.DELETE("/products/:id", d.ProductHandler.DeleteProduct)
}
