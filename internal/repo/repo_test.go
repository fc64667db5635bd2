package repo

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mcastell/product-catalog/internal/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, so every query sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	r := &GormRepo{DB: db}
	require.NoError(t, r.Bootstrap(context.Background()))
	return r
}

func TestBootstrapSeedsData(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	var users int64
	require.NoError(t, r.DB.Model(&models.User{}).Count(&users).Error)
	require.Equal(t, int64(1), users)

	user, err := r.FindUserByCredentials(ctx, SeedUsername, SeedPassword)
	require.NoError(t, err)
	require.Equal(t, SeedUsername, user.Username)

	total, items, err := r.ListProducts(ctx, 0, 100)
	require.NoError(t, err)
	require.Equal(t, int64(7), total)
	require.Len(t, items, 7)
	require.Equal(t, uint(1), items[0].ID)
	require.Equal(t, "Ultralight Laptop", items[0].Name)
}

func TestBootstrapIdempotent(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Bootstrap(ctx))
	require.NoError(t, r.Bootstrap(ctx))

	total, _, err := r.ListProducts(ctx, 0, 100)
	require.NoError(t, err)
	require.Equal(t, int64(7), total)
}

func TestFindUserByCredentialsRejectsMismatch(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.FindUserByCredentials(ctx, SeedUsername, "wrong")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = r.FindUserByCredentials(ctx, "nobody", SeedPassword)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListProductsWindow(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	total, items, err := r.ListProducts(ctx, 0, 5)
	require.NoError(t, err)
	require.Equal(t, int64(7), total)
	require.Len(t, items, 5)
	require.Equal(t, uint(1), items[0].ID)
	require.Equal(t, uint(5), items[4].ID)

	total, items, err = r.ListProducts(ctx, 5, 5)
	require.NoError(t, err)
	require.Equal(t, int64(7), total)
	require.Len(t, items, 2)
	require.Equal(t, uint(6), items[0].ID)

	total, items, err = r.ListProducts(ctx, 10, 5)
	require.NoError(t, err)
	require.Equal(t, int64(7), total)
	require.Empty(t, items)
}

func TestCreateAndGetProduct(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	prod := models.Product{Name: "Pen", Description: "", Price: 1.5}
	require.NoError(t, r.CreateProduct(ctx, &prod))
	require.Equal(t, uint(8), prod.ID)

	got, err := r.GetProduct(ctx, prod.ID)
	require.NoError(t, err)
	require.Equal(t, prod, *got)
}

func TestGetProductMissing(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetProduct(context.Background(), 999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteProduct(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	affected, err := r.DeleteProduct(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	_, err = r.GetProduct(ctx, 3)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	affected, err = r.DeleteProduct(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, int64(0), affected)
}
