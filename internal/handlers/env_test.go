package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mcastell/product-catalog/internal/events"
	"github.com/mcastell/product-catalog/internal/handlers"
	"github.com/mcastell/product-catalog/internal/httpserver"
	"github.com/mcastell/product-catalog/internal/repo"
	"github.com/mcastell/product-catalog/internal/service"
	"github.com/mcastell/product-catalog/internal/session"
)

type testEnv struct {
	E     *echo.Echo
	Store *repo.GormRepo
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	store := &repo.GormRepo{DB: db}
	require.NoError(t, store.Bootstrap(context.Background()))

	auth := &service.AuthService{Repo: store, Sessions: session.NewStore()}
	catalog := &service.CatalogService{Repo: store}
	producer := events.NewProducer("")

	e := echo.New()
	httpserver.Register(e, &httpserver.Deps{
		ProductHandler: &handlers.ProductHandler{Svc: catalog, Producer: producer},
		PageHandler:    &handlers.PageHandler{Auth: auth, Producer: producer},
		Auth:           auth,
	})

	return &testEnv{E: e, Store: store}
}

// doJSON sends a request through the full router, marshalling body as JSON
// when present.
func (env *testEnv) doJSON(method, target string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) doForm(method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

// login authenticates with the seed credentials and returns the session
// cookie.
func (env *testEnv) login(t *testing.T) *http.Cookie {
	form := url.Values{
		"username": {repo.SeedUsername},
		"password": {repo.SeedPassword},
	}
	rec := env.doForm(http.MethodPost, "/login", form)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName && ck.Value != "" {
			return ck
		}
	}
	t.Fatal("no session cookie issued on login")
	return nil
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	msg, ok := body["message"].(string)
	require.True(t, ok, "expected a message field")
	return msg
}
