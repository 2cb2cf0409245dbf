// filepath: internal/services/banner_service.go
package services

import (
	"time"

	"shopfront/internal/models"
	"shopfront/internal/store"
)

var bannerDurations = map[int]bool{2: true, 3: true, 5: true, 7: true, 10: true}

type bannerService struct {
	store *store.Store
	now   func() time.Time
}

// NewBannerService creates the banner service.
func NewBannerService(st *store.Store) BannerService {
	return &bannerService{store: st, now: time.Now}
}

var _ BannerService = (*bannerService)(nil)

func (s *bannerService) List() ([]models.Banner, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return []models.Banner{}, nil
	}
	return doc.Banners, nil
}

func (s *bannerService) Get(id int) (*models.Banner, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if doc != nil {
		for i := range doc.Banners {
			if doc.Banners[i].ID == id {
				return &doc.Banners[i], nil
			}
		}
	}
	return nil, ErrNotFound
}

func (s *bannerService) Create(payload models.BannerPayload) (*models.Banner, error) {
	banner, err := s.buildBanner(payload, models.Banner{})
	if err != nil {
		return nil, err
	}

	doc, err := s.store.Mutate(func(doc *models.Document) error {
		banner.ID = nextID(doc.Banners, func(b models.Banner) int { return b.ID })
		doc.Banners = append(doc.Banners, banner)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return findBanner(doc, banner.ID), nil
}

func (s *bannerService) Update(id int, payload models.BannerPayload) (*models.Banner, error) {
	doc, err := s.store.Mutate(func(doc *models.Document) error {
		for i := range doc.Banners {
			if doc.Banners[i].ID != id {
				continue
			}
			banner, err := s.buildBanner(payload, doc.Banners[i])
			if err != nil {
				return err
			}
			doc.Banners[i] = banner
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return findBanner(doc, id), nil
}

func (s *bannerService) Delete(id int) error {
	_, err := s.store.Mutate(func(doc *models.Document) error {
		for i := range doc.Banners {
			if doc.Banners[i].ID == id {
				doc.Banners = append(doc.Banners[:i], doc.Banners[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
	return err
}

// buildBanner merges the payload over base and validates the merged values.
// The checks run in a fixed order so the admin always sees the most
// fundamental problem first: no artwork at all, then a display option without
// its image, then no display option selected.
func (s *bannerService) buildBanner(p models.BannerPayload, base models.Banner) (models.Banner, error) {
	banner := base
	apply(&banner.MobileImage, p.MobileImage)
	apply(&banner.DesktopImage, p.DesktopImage)
	apply(&banner.Link, p.Link)
	apply(&banner.Duration, p.Duration)
	apply(&banner.Enabled, p.Enabled)
	apply(&banner.ShowOnMobile, p.ShowOnMobile)
	apply(&banner.ShowOnDesktop, p.ShowOnDesktop)

	if banner.MobileImage == "" && banner.DesktopImage == "" {
		return models.Banner{}, validationError("please upload at least one banner image (mobile or desktop)")
	}
	if banner.ShowOnMobile && banner.MobileImage == "" {
		return models.Banner{}, validationError(`mobile image is required when "Show on Mobile" is checked`)
	}
	if banner.ShowOnDesktop && banner.DesktopImage == "" {
		return models.Banner{}, validationError(`desktop image is required when "Show on Desktop" is checked`)
	}
	if !banner.ShowOnMobile && !banner.ShowOnDesktop {
		return models.Banner{}, validationError("please select at least one display option (mobile or desktop)")
	}

	if banner.Duration == 0 {
		banner.Duration = 3
	}
	if !bannerDurations[banner.Duration] {
		return models.Banner{}, validationError("banner duration must be 2, 3, 5, 7 or 10 seconds")
	}

	banner.CreatedAt = s.now().UTC().Format(time.RFC3339)
	return banner, nil
}

func findBanner(doc *models.Document, id int) *models.Banner {
	for i := range doc.Banners {
		if doc.Banners[i].ID == id {
			return &doc.Banners[i]
		}
	}
	return nil
}
