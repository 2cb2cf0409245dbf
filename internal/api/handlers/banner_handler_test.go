// filepath: internal/api/handlers/banner_handler_test.go
package handlers

import (
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

// newBannerRouter wires a router around a mocked banner service.
func newBannerRouter(svc services.BannerService) *mux.Router {
	h := &Handlers{Banner: svc}
	r := mux.NewRouter()
	r.HandleFunc("/banners", h.GetBanners).Methods("GET")
	r.HandleFunc("/banners/{id}", h.GetBanner).Methods("GET")
	return r
}

func TestGetBanner(t *testing.T) {
	svc := new(mocks.MockBannerService)
	svc.On("Get", 7).Return(&models.Banner{ID: 7, MobileImage: "m.jpg", Duration: 5}, nil).Once()

	rr := httptest.NewRecorder()
	newBannerRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/banners/7", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var banner models.Banner
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &banner))
	assert.Equal(t, 7, banner.ID)
	assert.Equal(t, 5, banner.Duration)
	svc.AssertExpectations(t)
}

func TestGetBannerNotFound(t *testing.T) {
	svc := new(mocks.MockBannerService)
	svc.On("Get", 42).Return(nil, services.ErrNotFound).Once()

	rr := httptest.NewRecorder()
	newBannerRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/banners/42", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	svc.AssertExpectations(t)
}

func TestGetBannerInvalidID(t *testing.T) {
	svc := new(mocks.MockBannerService)

	rr := httptest.NewRecorder()
	newBannerRouter(svc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/banners/abc", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Get")
}
