package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/internal/domain"
)

func listFixture() []domain.Product {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	products := make([]domain.Product, 0, 15)
	for i := 0; i < 15; i++ {
		p := *storeProduct("p"+string(rune('a'+i)), "Gadget", "electronics", float64(10+i), 5)
		p.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		products = append(products, p)
	}
	return products
}

func TestListProducts_DefaultPage(t *testing.T) {
	repos := newTestRepos()
	router := setupRouter(repos)

	repos.products.On("List", mock.Anything).Return(listFixture(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Records    []domain.Product `json:"records"`
			Pagination struct {
				Page       int  `json:"page"`
				Limit      int  `json:"limit"`
				Total      int  `json:"total"`
				TotalPages int  `json:"total_pages"`
				HasNext    bool `json:"has_next"`
			} `json:"pagination"`
			Facets struct {
				Categories []string `json:"categories"`
			} `json:"facets"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	assert.Len(t, body.Data.Records, 12)
	assert.Equal(t, 1, body.Data.Pagination.Page)
	assert.Equal(t, 15, body.Data.Pagination.Total)
	assert.Equal(t, 2, body.Data.Pagination.TotalPages)
	assert.True(t, body.Data.Pagination.HasNext)
	assert.Equal(t, []string{"electronics"}, body.Data.Facets.Categories)
}

func TestListProducts_MalformedParamsDegradeGracefully(t *testing.T) {
	repos := newTestRepos()
	router := setupRouter(repos)

	repos.products.On("List", mock.Anything).Return(listFixture(), nil)

	// Unparseable numbers and an unknown sort key must not produce a 400.
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/products?minPrice=abc&maxPrice=&page=banana&limit=-3&sortBy=velocity&minRating=wild", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	assert.Nil(t, resp.Error)
}

func TestGetProduct_OK(t *testing.T) {
	repos := newTestRepos()
	router := setupRouter(repos)

	repos.products.On("GetByID", mock.Anything, "p1").Return(storeProduct("p1", "Laptop", "electronics", 999.99, 5), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/p1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Data)
}

func TestGetProduct_NotFound(t *testing.T) {
	repos := newTestRepos()
	router := setupRouter(repos)

	repos.products.On("GetByID", mock.Anything, "ghost").Return(nil, notFoundErr("product", "ghost"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/ghost", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestFeaturedProducts(t *testing.T) {
	repos := newTestRepos()
	router := setupRouter(repos)

	products := listFixture()
	products[0].Featured = true
	products[3].Featured = true
	repos.products.On("List", mock.Anything).Return(products, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/featured", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []domain.Product `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body.Data, 2)
}

func TestListCategories(t *testing.T) {
	repos := newTestRepos()
	router := setupRouter(repos)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []domain.Category `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, "electronics", body.Data[0].Slug)
}

func TestCreateProduct_RequiresAdmin(t *testing.T) {
	repos := newTestRepos()
	router := setupRouter(repos)

	payload := `{"name":"Lamp","price":39.99,"category":"home","stock":3}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	asCustomer(repos, req, "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	repos.products.AssertNotCalled(t, "Create")
}

func TestCreateProduct_AdminSuccess(t *testing.T) {
	repos := newTestRepos()
	router := setupRouter(repos)

	repos.products.On("Create", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)

	payload := `{"name":"Lamp","price":39.99,"category":"home","stock":3}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	asAdmin(repos, req, "admin-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	repos.products.AssertExpectations(t)
}

func TestCreateProduct_ValidationError(t *testing.T) {
	repos := newTestRepos()
	router := setupRouter(repos)

	// Missing price.
	payload := `{"name":"Lamp","category":"home"}`

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/products", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	asAdmin(repos, req, "admin-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestDeleteProduct_Admin(t *testing.T) {
	repos := newTestRepos()
	router := setupRouter(repos)

	repos.products.On("Delete", mock.Anything, "p1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/products/p1", nil)
	asAdmin(repos, req, "admin-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	repos.products.AssertExpectations(t)
}
