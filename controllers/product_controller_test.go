package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"inventory-service/models"
	"inventory-service/repository"
)

type fakeProductService struct {
	listCalled int
	lastTerm   string
	listFn     func(ctx context.Context, searchTerm string) ([]models.Product, error)

	getFn    func(ctx context.Context, id int) (*models.Product, error)
	createFn func(ctx context.Context, fields repository.ProductFields) (*models.Product, error)

	updateCalled int
	lastUpdateID int
	lastFields   repository.ProductFields
	updateErr    error

	deleteCalled int
	deleteErr    error
}

func (f *fakeProductService) List(ctx context.Context, searchTerm string) ([]models.Product, error) {
	f.listCalled++
	f.lastTerm = searchTerm
	if f.listFn != nil {
		return f.listFn(ctx, searchTerm)
	}
	return []models.Product{}, nil
}

func (f *fakeProductService) Get(ctx context.Context, id int) (*models.Product, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProductService) Create(ctx context.Context, fields repository.ProductFields) (*models.Product, error) {
	if f.createFn != nil {
		return f.createFn(ctx, fields)
	}
	return &models.Product{ID: 1, Name: fields.Name}, nil
}

func (f *fakeProductService) Update(ctx context.Context, id int, fields repository.ProductFields) error {
	f.updateCalled++
	f.lastUpdateID = id
	f.lastFields = fields
	return f.updateErr
}

func (f *fakeProductService) Delete(ctx context.Context, id int) error {
	f.deleteCalled++
	return f.deleteErr
}

func newTestRouter(service *fakeProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewProductController(service)

	router := gin.New()
	router.GET("/products", controller.GetProducts)
	router.GET("/products/:id", controller.GetProductByID)
	router.POST("/products", controller.CreateProduct)
	router.PUT("/products/:id", controller.UpdateProduct)
	router.DELETE("/products/:id", controller.DeleteProduct)
	return router
}

func TestGetProductsPassesSearchTerm(t *testing.T) {
	service := &fakeProductService{}
	router := newTestRouter(service)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/products?search=widget", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if service.lastTerm != "widget" {
		t.Fatalf("expected search term to reach the service, got %q", service.lastTerm)
	}

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/products", nil))

	if service.listCalled != 2 || service.lastTerm != "" {
		t.Fatalf("expected empty term without search param, got %q", service.lastTerm)
	}
}

func TestGetProductsReturnsArray(t *testing.T) {
	service := &fakeProductService{
		listFn: func(ctx context.Context, searchTerm string) ([]models.Product, error) {
			return []models.Product{{ID: 7, Name: "Widget", Category: "tools"}}, nil
		},
	}
	router := newTestRouter(service)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/products", nil))

	var products []models.Product
	if err := json.Unmarshal(recorder.Body.Bytes(), &products); err != nil {
		t.Fatalf("response is not a product array: %v", err)
	}
	if len(products) != 1 || products[0].ID != 7 {
		t.Fatalf("unexpected response body: %s", recorder.Body.String())
	}
}

func TestGetProductsStorageError(t *testing.T) {
	service := &fakeProductService{
		listFn: func(ctx context.Context, searchTerm string) ([]models.Product, error) {
			return nil, errors.New("connection refused")
		},
	}
	router := newTestRouter(service)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/products", nil))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", recorder.Code)
	}
}

func TestGetProductByID(t *testing.T) {
	service := &fakeProductService{
		getFn: func(ctx context.Context, id int) (*models.Product, error) {
			if id == 7 {
				return &models.Product{ID: 7, Name: "Widget"}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	router := newTestRouter(service)

	cases := []struct {
		path string
		want int
	}{
		{"/products/7", http.StatusOK},
		{"/products/999", http.StatusNotFound},
		{"/products/abc", http.StatusBadRequest},
	}
	for _, tc := range cases {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if recorder.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.path, tc.want, recorder.Code)
		}
	}
}

func postJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCreateProductValidation(t *testing.T) {
	service := &fakeProductService{}
	router := newTestRouter(service)

	cases := []struct {
		name string
		body string
		want int
	}{
		{"valid", `{"name":"Widget","description":"d","category":"tools","stock_quantity":5}`, http.StatusCreated},
		{"zero stock is valid", `{"name":"Widget","description":"d","category":"tools","stock_quantity":0}`, http.StatusCreated},
		{"missing stock_quantity", `{"name":"Widget","description":"d","category":"tools"}`, http.StatusBadRequest},
		{"missing name", `{"description":"d","category":"tools","stock_quantity":5}`, http.StatusBadRequest},
		{"empty description", `{"name":"Widget","description":"","category":"tools","stock_quantity":5}`, http.StatusBadRequest},
		{"missing category", `{"name":"Widget","description":"d","stock_quantity":5}`, http.StatusBadRequest},
		{"negative stock", `{"name":"Widget","description":"d","category":"tools","stock_quantity":-1}`, http.StatusBadRequest},
		{"non-numeric stock", `{"name":"Widget","description":"d","category":"tools","stock_quantity":"lots"}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		recorder := postJSON(router, http.MethodPost, "/products", tc.body)
		if recorder.Code != tc.want {
			t.Fatalf("%s: expected %d, got %d (body %s)", tc.name, tc.want, recorder.Code, recorder.Body.String())
		}
	}
}

func TestCreateProductDuplicateName(t *testing.T) {
	service := &fakeProductService{
		createFn: func(ctx context.Context, fields repository.ProductFields) (*models.Product, error) {
			return nil, repository.ErrDuplicateName
		},
	}
	router := newTestRouter(service)

	recorder := postJSON(router, http.MethodPost, "/products",
		`{"name":"Widget","description":"d","category":"tools","stock_quantity":5}`)
	if recorder.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", recorder.Code)
	}
}

func TestCreateProductReturnsAssignedID(t *testing.T) {
	service := &fakeProductService{
		createFn: func(ctx context.Context, fields repository.ProductFields) (*models.Product, error) {
			return &models.Product{
				ID:            42,
				Name:          fields.Name,
				Description:   fields.Description,
				StockQuantity: fields.StockQuantity,
				Category:      fields.Category,
			}, nil
		},
	}
	router := newTestRouter(service)

	recorder := postJSON(router, http.MethodPost, "/products",
		`{"name":"Widget","description":"d","category":"tools","stock_quantity":5}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", recorder.Code)
	}

	var created models.Product
	if err := json.Unmarshal(recorder.Body.Bytes(), &created); err != nil {
		t.Fatalf("response is not a product: %v", err)
	}
	if created.ID != 42 || created.StockQuantity != 5 {
		t.Fatalf("unexpected created product: %+v", created)
	}
}

func TestUpdateProduct(t *testing.T) {
	service := &fakeProductService{}
	router := newTestRouter(service)

	recorder := postJSON(router, http.MethodPut, "/products/7",
		`{"name":"Widget","description":"d","category":"tools","stock_quantity":0}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", recorder.Code, recorder.Body.String())
	}
	if service.updateCalled != 1 || service.lastUpdateID != 7 {
		t.Fatalf("update not forwarded: called=%d id=%d", service.updateCalled, service.lastUpdateID)
	}
	if service.lastFields.StockQuantity != 0 {
		t.Fatalf("explicit zero stock not forwarded: %+v", service.lastFields)
	}

	recorder = postJSON(router, http.MethodPut, "/products/abc",
		`{"name":"Widget","description":"d","category":"tools","stock_quantity":1}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", recorder.Code)
	}

	recorder = postJSON(router, http.MethodPut, "/products/7", `{"name":"Widget"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", recorder.Code)
	}
}

func TestUpdateProductStorageError(t *testing.T) {
	service := &fakeProductService{updateErr: errors.New("connection refused")}
	router := newTestRouter(service)

	recorder := postJSON(router, http.MethodPut, "/products/7",
		`{"name":"Widget","description":"d","category":"tools","stock_quantity":1}`)
	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", recorder.Code)
	}
}

func TestDeleteProduct(t *testing.T) {
	service := &fakeProductService{}
	router := newTestRouter(service)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/products/7", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if service.deleteCalled != 1 {
		t.Fatalf("delete not forwarded")
	}

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/products/abc", nil))
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", recorder.Code)
	}
}
