package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mcastell/product-catalog/internal/events"
	"github.com/mcastell/product-catalog/internal/logging"
	"github.com/mcastell/product-catalog/internal/service"
	"github.com/mcastell/product-catalog/internal/transport"
	"github.com/mcastell/product-catalog/internal/util"
)

type ProductHandler struct {
	Svc      *service.CatalogService
	Producer *events.Producer
}

func (h *ProductHandler) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.ProductTopic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka_publish_error", "error", err)
	}
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	perPage := util.ParseIntDefault(c.QueryParam("per_page"), util.DefaultPerPage)

	result, err := h.Svc.List(ctx, page, perPage)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			l.Warn("get_products_failed", "status", 404, "page", page)
			return echo.NewHTTPError(http.StatusNotFound, "no products on this page")
		}
		l.Error("get_products_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error while listing products")
	}

	l.Info("get_products_success", "page", page, "count", len(result.Products))
	return c.JSON(http.StatusOK, transport.ListProductsResponse{
		Products:   result.Products,
		Pagination: result.Pagination,
	})
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("get_product_failed", "status", 400, "reason", "id is not an integer")
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	product, err := h.Svc.Get(ctx, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			l.Warn("get_product_failed", "status", 404, "id", id)
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("product with id %d not found", id))
		}
		l.Error("get_product_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error while fetching product")
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_failed", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	prod, err := h.Svc.Create(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			l.Warn("create_product_failed", "status", 400, "reason", "missing fields")
			return echo.NewHTTPError(http.StatusBadRequest, "missing required fields: name and price")
		case errors.Is(err, service.ErrInvalidPrice):
			l.Warn("create_product_failed", "status", 400, "reason", "invalid price")
			return echo.NewHTTPError(http.StatusBadRequest, "price must be a valid number")
		default:
			l.Error("create_product_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal server error while creating product")
		}
	}

	h.publish(c, fmt.Sprint(prod.ID), map[string]any{
		"type":      "product_created",
		"productID": prod.ID,
		"name":      prod.Name,
	})

	l.Info("create_product_success", "id", prod.ID)
	return c.JSON(http.StatusCreated, transport.CreateProductResponse{
		Message: "product created successfully",
		ID:      prod.ID,
		Name:    prod.Name,
	})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		l.Warn("delete_product_failed", "status", 400, "reason", "id is not an integer")
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	if err := h.Svc.Delete(ctx, uint(id)); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			l.Warn("delete_product_failed", "status", 404, "id", id)
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("product with id %d not found", id))
		}
		l.Error("delete_product_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error while deleting product")
	}

	h.publish(c, fmt.Sprint(id), map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	l.Info("delete_product_success", "id", id)
	return c.JSON(http.StatusOK, transport.MessageResponse{
		Message: fmt.Sprintf("product with id %d deleted successfully", id),
	})
}
