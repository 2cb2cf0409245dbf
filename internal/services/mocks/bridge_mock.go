// filepath: internal/services/mocks/bridge_mock.go
package mocks

import (
	"github.com/stretchr/testify/mock"

	"shopfront/internal/bridge"
	"shopfront/internal/models"
	"shopfront/internal/services"
)

// MockBridgeService is a mock implementation of services.BridgeService
type MockBridgeService struct {
	mock.Mock
}

var _ services.BridgeService = (*MockBridgeService)(nil)

func (m *MockBridgeService) Export() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockBridgeService) Import(snippet string) (*models.Document, error) {
	args := m.Called(snippet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Document), args.Error(1)
}

func (m *MockBridgeService) Backup() (*bridge.BackupPayload, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bridge.BackupPayload), args.Error(1)
}

func (m *MockBridgeService) Restore(raw []byte) (*models.Document, error) {
	args := m.Called(raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Document), args.Error(1)
}

// MockInfoService is a mock implementation of services.InfoService
type MockInfoService struct {
	mock.Mock
}

var _ services.InfoService = (*MockInfoService)(nil)

func (m *MockInfoService) GetInfo() (*models.Info, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Info), args.Error(1)
}
