// filepath: internal/services/banner_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/models"
)

func TestBannerValidationOrder(t *testing.T) {
	svc := NewBannerService(newTestStore(t))

	// No images at all wins over every other complaint.
	_, err := svc.Create(models.BannerPayload{ShowOnMobile: ptr(true)})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "at least one banner image")

	// Mobile display checked without mobile artwork.
	_, err = svc.Create(models.BannerPayload{
		DesktopImage: ptr("d.jpg"), ShowOnMobile: ptr(true), ShowOnDesktop: ptr(true),
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Show on Mobile")

	// Desktop display checked without desktop artwork.
	_, err = svc.Create(models.BannerPayload{
		MobileImage: ptr("m.jpg"), ShowOnMobile: ptr(true), ShowOnDesktop: ptr(true),
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Show on Desktop")

	// Images present but no display option selected.
	_, err = svc.Create(models.BannerPayload{MobileImage: ptr("m.jpg"), DesktopImage: ptr("d.jpg")})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "display option")

	banners, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, banners, "rejected banners must not be stored")
}

func TestBannerDefaultsAndCreatedAt(t *testing.T) {
	st := newTestStore(t)
	fixed := time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC)
	svc := &bannerService{store: st, now: func() time.Time { return fixed }}

	banner, err := svc.Create(models.BannerPayload{
		MobileImage: ptr("m.jpg"), ShowOnMobile: ptr(true), Enabled: ptr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, banner.ID)
	assert.Equal(t, 3, banner.Duration)
	assert.Equal(t, "2026-08-30T09:30:00Z", banner.CreatedAt)
}

func TestBannerDurationValidated(t *testing.T) {
	svc := NewBannerService(newTestStore(t))

	_, err := svc.Create(models.BannerPayload{
		MobileImage: ptr("m.jpg"), ShowOnMobile: ptr(true), Duration: ptr(4),
	})
	assert.ErrorIs(t, err, ErrValidation)

	banner, err := svc.Create(models.BannerPayload{
		MobileImage: ptr("m.jpg"), ShowOnMobile: ptr(true), Duration: ptr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, 10, banner.Duration)
}

func TestBannerUpdateRefreshesCreatedAt(t *testing.T) {
	st := newTestStore(t)
	current := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	svc := &bannerService{store: st, now: func() time.Time { return current }}

	banner, err := svc.Create(models.BannerPayload{MobileImage: ptr("m.jpg"), ShowOnMobile: ptr(true)})
	require.NoError(t, err)

	current = current.Add(time.Hour)
	updated, err := svc.Update(banner.ID, models.BannerPayload{MobileImage: ptr("m2.jpg")})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30T10:00:00Z", updated.CreatedAt)
	assert.Equal(t, "m2.jpg", updated.MobileImage)
}

func TestBannerUpdateKeepsOmittedFields(t *testing.T) {
	svc := NewBannerService(newTestStore(t))

	banner, err := svc.Create(models.BannerPayload{
		MobileImage:   ptr("m.jpg"),
		DesktopImage:  ptr("d.jpg"),
		ShowOnMobile:  ptr(true),
		ShowOnDesktop: ptr(true),
		Duration:      ptr(5),
	})
	require.NoError(t, err)

	updated, err := svc.Update(banner.ID, models.BannerPayload{Link: ptr("https://example.com/sale")})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/sale", updated.Link)
	assert.Equal(t, "m.jpg", updated.MobileImage)
	assert.Equal(t, "d.jpg", updated.DesktopImage)
	assert.Equal(t, 5, updated.Duration)
	assert.True(t, updated.ShowOnDesktop)
}
