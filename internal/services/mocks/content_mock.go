// filepath: internal/services/mocks/content_mock.go
package mocks

import (
	"github.com/stretchr/testify/mock"

	"shopfront/internal/models"
	"shopfront/internal/services"
)

// MockProductService is a mock implementation of services.ProductService
type MockProductService struct {
	mock.Mock
}

var _ services.ProductService = (*MockProductService)(nil)

func (m *MockProductService) List() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductService) Get(id int) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductService) Create(payload models.ProductPayload) (*models.Product, error) {
	args := m.Called(payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductService) Update(id int, payload models.ProductPayload) (*models.Product, error) {
	args := m.Called(id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductService) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPromotionService is a mock implementation of services.PromotionService
type MockPromotionService struct {
	mock.Mock
}

var _ services.PromotionService = (*MockPromotionService)(nil)

func (m *MockPromotionService) List() ([]models.Promotion, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Promotion), args.Error(1)
}

func (m *MockPromotionService) Get(id int) (*models.Promotion, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Promotion), args.Error(1)
}

func (m *MockPromotionService) Create(payload models.PromotionPayload) (*models.Promotion, error) {
	args := m.Called(payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Promotion), args.Error(1)
}

func (m *MockPromotionService) Update(id int, payload models.PromotionPayload) (*models.Promotion, error) {
	args := m.Called(id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Promotion), args.Error(1)
}

func (m *MockPromotionService) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockBannerService is a mock implementation of services.BannerService
type MockBannerService struct {
	mock.Mock
}

var _ services.BannerService = (*MockBannerService)(nil)

func (m *MockBannerService) List() ([]models.Banner, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Banner), args.Error(1)
}

func (m *MockBannerService) Get(id int) (*models.Banner, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Banner), args.Error(1)
}

func (m *MockBannerService) Create(payload models.BannerPayload) (*models.Banner, error) {
	args := m.Called(payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Banner), args.Error(1)
}

func (m *MockBannerService) Update(id int, payload models.BannerPayload) (*models.Banner, error) {
	args := m.Called(id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Banner), args.Error(1)
}

func (m *MockBannerService) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCategoryService is a mock implementation of services.CategoryService
type MockCategoryService struct {
	mock.Mock
}

var _ services.CategoryService = (*MockCategoryService)(nil)

func (m *MockCategoryService) List() ([]models.Category, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryService) Create(payload models.CategoryPayload) (*models.Category, error) {
	args := m.Called(payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) Update(id string, payload models.CategoryPayload) (*models.Category, error) {
	args := m.Called(id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryService) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}
