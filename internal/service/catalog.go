package service

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/mcastell/product-catalog/internal/models"
	"github.com/mcastell/product-catalog/internal/repo"
	"github.com/mcastell/product-catalog/internal/transport"
	"github.com/mcastell/product-catalog/internal/util"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrPageNotFound    = errors.New("no products on this page")
	ErrMissingFields   = errors.New("missing required fields")
	ErrInvalidPrice    = errors.New("price is not a valid number")
)

type CatalogService struct {
	Repo *repo.GormRepo
}

type ListResult struct {
	Products   []models.Product
	Pagination transport.Pagination
}

// List returns one pagination window plus the totals. A window that comes back
// empty on any page after the first is a not-found, so an empty catalog is
// still a valid page 1.
func (s *CatalogService) List(ctx context.Context, page, perPage int) (*ListResult, error) {
	page, perPage = util.Clamp(page, perPage)
	offset := (page - 1) * perPage

	total, items, err := s.Repo.ListProducts(ctx, offset, perPage)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 && page > 1 {
		return nil, ErrPageNotFound
	}

	if items == nil {
		items = []models.Product{}
	}

	return &ListResult{
		Products: items,
		Pagination: transport.Pagination{
			TotalItems:  total,
			TotalPages:  (total + int64(perPage) - 1) / int64(perPage),
			CurrentPage: page,
			PerPage:     perPage,
		},
	}, nil
}

func (s *CatalogService) Get(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// Create validates the request and inserts the product. Name and price must be
// present; price must be a JSON number or a string that parses as one. A
// missing description is stored as the empty string.
func (s *CatalogService) Create(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	if req.Name == nil || req.Price == nil {
		return nil, ErrMissingFields
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	prod := models.Product{
		Name:        *req.Name,
		Description: description,
		Price:       price,
	}
	if err := s.Repo.CreateProduct(ctx, &prod); err != nil {
		return nil, err
	}
	return &prod, nil
}

func (s *CatalogService) Delete(ctx context.Context, id uint) error {
	affected, err := s.Repo.DeleteProduct(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func parsePrice(v any) (float64, error) {
	switch p := v.(type) {
	case float64:
		return p, nil
	case string:
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, ErrInvalidPrice
		}
		return f, nil
	default:
		return 0, ErrInvalidPrice
	}
}
