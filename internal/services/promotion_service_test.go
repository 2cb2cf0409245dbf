// filepath: internal/services/promotion_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/models"
)

func TestPromotionPrice(t *testing.T) {
	tests := []struct {
		name          string
		originalPrice string
		discount      string
		want          string
	}{
		{"quarter off", "$200", "25", "$150.00"},
		{"no discount", "$200", "0", "$200.00"},
		{"full discount", "$200", "100", "$0.00"},
		{"cents", "$19.99", "10", "$17.99"},
		{"riel symbol kept", "៛200", "25", "៛150.00"},
		{"euro suffix kept", "200€", "50", "€100.00"},
		{"symbol with space", "$ 200", "25", "$150.00"},
		{"no symbol defaults to dollar", "200", "25", "$150.00"},
		{"no number passes through", "Contact us", "25", "Contact us"},
		{"bad discount treated as zero", "$200", "abc", "$200.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PromotionPrice(tt.originalPrice, tt.discount))
		})
	}
}

func TestPromotionCreateDerivesPrice(t *testing.T) {
	svc := NewPromotionService(newTestStore(t))

	promo, err := svc.Create(models.PromotionPayload{
		Title:         ptr("Summer Sale"),
		OriginalPrice: ptr("$200"),
		Discount:      ptr("25"),
	})
	require.NoError(t, err)

	assert.Equal(t, "$150.00", promo.Price)
	assert.Equal(t, "$200", promo.OriginalPrice)
	assert.Equal(t, "25", promo.Discount)
	assert.Equal(t, "ការផ្តល់ជូន", promo.TitleKm)
	assert.Equal(t, "general", promo.Category)
}

func TestPromotionDefaultsPriceFields(t *testing.T) {
	svc := NewPromotionService(newTestStore(t))

	promo, err := svc.Create(models.PromotionPayload{Title: ptr("Sale")})
	require.NoError(t, err)

	assert.Equal(t, "$0", promo.OriginalPrice)
	assert.Equal(t, "0", promo.Discount)
	assert.Equal(t, "$0.00", promo.Price)
}

func TestPromotionUpdateRecomputesPrice(t *testing.T) {
	svc := NewPromotionService(newTestStore(t))

	promo, err := svc.Create(models.PromotionPayload{
		Title: ptr("Sale"), OriginalPrice: ptr("$100"), Discount: ptr("10"),
	})
	require.NoError(t, err)
	assert.Equal(t, "$90.00", promo.Price)

	// Sending only the discount recomputes the price against the stored
	// original price; everything else stays put.
	updated, err := svc.Update(promo.ID, models.PromotionPayload{Discount: ptr("50")})
	require.NoError(t, err)
	assert.Equal(t, "$50.00", updated.Price)
	assert.Equal(t, "$100", updated.OriginalPrice)
	assert.Equal(t, "Sale", updated.Title)
}

func TestPromotionLabelValidated(t *testing.T) {
	svc := NewPromotionService(newTestStore(t))

	_, err := svc.Create(models.PromotionPayload{Title: ptr("Sale"), PromoLabel: ptr("MEGA")})
	assert.ErrorIs(t, err, ErrValidation)

	promo, err := svc.Create(models.PromotionPayload{Title: ptr("Sale"), PromoLabel: ptr("flash")})
	require.NoError(t, err)
	assert.Equal(t, "FLASH", promo.PromoLabel)
}

func TestPromotionRequiresText(t *testing.T) {
	svc := NewPromotionService(newTestStore(t))

	_, err := svc.Create(models.PromotionPayload{OriginalPrice: ptr("$5")})
	assert.ErrorIs(t, err, ErrValidation)
}
