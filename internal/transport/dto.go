package transport

import "github.com/mcastell/product-catalog/internal/models"

// CreateProductRequest keeps name/description as pointers and price untyped so
// the service can tell a missing field from a malformed one. Price accepts a
// JSON number or a numeric string.
type CreateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       any     `json:"price"`
}

type CreateProductResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
	Name    string `json:"name"`
}

type Pagination struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int64 `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
}

type ListProductsResponse struct {
	Products   []models.Product `json:"products"`
	Pagination Pagination       `json:"pagination"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
