// filepath: internal/api/handlers/product_handler_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/models"
	"shopfront/internal/services"
	"shopfront/internal/services/mocks"
)

// ptr builds the pointer fields of partial payloads.
func ptr[T any](v T) *T { return &v }

// newProductRouter wires a router around a mocked product service.
func newProductRouter(svc services.ProductService) *mux.Router {
	h := &Handlers{Product: svc}
	r := mux.NewRouter()
	r.HandleFunc("/products", h.GetProducts).Methods("GET")
	r.HandleFunc("/products", h.CreateProduct).Methods("POST")
	r.HandleFunc("/products/{id}", h.GetProduct).Methods("GET")
	r.HandleFunc("/products/{id}", h.UpdateProduct).Methods("PUT")
	r.HandleFunc("/products/{id}", h.DeleteProduct).Methods("DELETE")
	return r
}

func TestGetProducts(t *testing.T) {
	svc := new(mocks.MockProductService)
	svc.On("List").Return([]models.Product{{ID: 1, Name: "Chair"}}, nil).Once()

	rr := httptest.NewRecorder()
	newProductRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Chair", products[0].Name)
	svc.AssertExpectations(t)
}

func TestCreateProduct(t *testing.T) {
	svc := new(mocks.MockProductService)
	payload := models.ProductPayload{Name: ptr("Chair"), Price: ptr("$10")}
	svc.On("Create", payload).Return(&models.Product{ID: 1, Name: "Chair", Price: "$10"}, nil).Once()

	body, _ := json.Marshal(payload)
	rr := httptest.NewRecorder()
	newProductRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, rr.Code)
	var product models.Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &product))
	assert.Equal(t, 1, product.ID)
	svc.AssertExpectations(t)
}

func TestCreateProductValidationError(t *testing.T) {
	svc := new(mocks.MockProductService)
	svc.On("Create", models.ProductPayload{}).Return(nil, services.ErrValidation).Once()

	rr := httptest.NewRecorder()
	newProductRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader([]byte(`{}`))))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertExpectations(t)
}

func TestCreateProductBadJSON(t *testing.T) {
	svc := new(mocks.MockProductService)

	rr := httptest.NewRecorder()
	newProductRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader([]byte(`{nope`))))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Create")
}

func TestGetProductNotFound(t *testing.T) {
	svc := new(mocks.MockProductService)
	svc.On("Get", 42).Return(nil, services.ErrNotFound).Once()

	rr := httptest.NewRecorder()
	newProductRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/products/42", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	svc.AssertExpectations(t)
}

func TestUpdateProductInvalidID(t *testing.T) {
	svc := new(mocks.MockProductService)

	rr := httptest.NewRecorder()
	newProductRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/products/abc", bytes.NewReader([]byte(`{}`))))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Update")
}

func TestDeleteProduct(t *testing.T) {
	svc := new(mocks.MockProductService)
	svc.On("Delete", 1).Return(nil).Once()

	rr := httptest.NewRecorder()
	newProductRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/products/1", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}
