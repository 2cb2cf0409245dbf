// filepath: internal/services/info_service.go
package services

import (
	"time"

	"shopfront/internal/models"
	"shopfront/internal/store"
)

type infoService struct {
	version string
	started time.Time
	store   *store.Store
}

// NewInfoService creates the service metadata provider.
func NewInfoService(version string, started time.Time, st *store.Store) InfoService {
	return &infoService{version: version, started: started, store: st}
}

var _ InfoService = (*infoService)(nil)

func (s *infoService) GetInfo() (*models.Info, error) {
	stats := s.store.Stats()
	return &models.Info{
		Version:     s.version,
		UptimeSince: s.started,
		Uptime:      time.Since(s.started).Round(time.Second).String(),
		Storage:     stats.Backend,
	}, nil
}
