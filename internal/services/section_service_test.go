// filepath: internal/services/section_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/models"
)

func TestSectionCreateDefaults(t *testing.T) {
	svc := NewSectionService(newTestStore(t))

	section, err := svc.Create(models.SectionPayload{
		NameEn: "Featured", NameKm: "ពិសេស", Enabled: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, section.ID)
	assert.Equal(t, "card", section.Template)
	assert.Equal(t, 5, section.Order)
	assert.NotNil(t, section.Items)
}

func TestSectionNameValidation(t *testing.T) {
	svc := NewSectionService(newTestStore(t))

	_, err := svc.Create(models.SectionPayload{NameEn: "Featured"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "both English and Khmer")

	_, err = svc.Create(models.SectionPayload{NameEn: "F", NameKm: "ព"})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "at least 2 characters")

	// Whitespace does not count toward the minimum.
	_, err = svc.Create(models.SectionPayload{NameEn: " F ", NameKm: " ព "})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSectionUpdateKeepsItems(t *testing.T) {
	svc := NewSectionService(newTestStore(t))

	section, err := svc.Create(models.SectionPayload{NameEn: "Featured", NameKm: "ពិសេស"})
	require.NoError(t, err)
	_, err = svc.AddItem(section.ID, models.SectionItemPayload{Title: "First"})
	require.NoError(t, err)

	updated, err := svc.Update(section.ID, models.SectionPayload{
		NameEn: "Highlights", NameKm: "ចំណុចសំខាន់", Order: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Highlights", updated.NameEn)
	assert.Equal(t, 2, updated.Order)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "First", updated.Items[0].Title)
}

func TestSectionItemIDsAreSectionLocal(t *testing.T) {
	svc := NewSectionService(newTestStore(t))

	first, err := svc.Create(models.SectionPayload{NameEn: "Featured", NameKm: "ពិសេស"})
	require.NoError(t, err)
	second, err := svc.Create(models.SectionPayload{NameEn: "Deals", NameKm: "បញ្ចុះតម្លៃ"})
	require.NoError(t, err)

	a, err := svc.AddItem(first.ID, models.SectionItemPayload{Title: "A"})
	require.NoError(t, err)
	b, err := svc.AddItem(first.ID, models.SectionItemPayload{Title: "B"})
	require.NoError(t, err)
	c, err := svc.AddItem(second.ID, models.SectionItemPayload{Title: "C"})
	require.NoError(t, err)

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.Equal(t, 1, c.ID, "item numbering restarts per section")
}

func TestSectionItemValidationAndToggle(t *testing.T) {
	svc := NewSectionService(newTestStore(t))

	section, err := svc.Create(models.SectionPayload{NameEn: "Featured", NameKm: "ពិសេស"})
	require.NoError(t, err)

	_, err = svc.AddItem(section.ID, models.SectionItemPayload{Image: "x.jpg"})
	assert.ErrorIs(t, err, ErrValidation)

	item, err := svc.AddItem(section.ID, models.SectionItemPayload{Content: "Body only"})
	require.NoError(t, err)

	toggled, err := svc.ToggleItem(section.ID, item.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Enabled)

	require.NoError(t, svc.DeleteItem(section.ID, item.ID))
	assert.ErrorIs(t, svc.DeleteItem(section.ID, item.ID), ErrNotFound)
}

func TestSectionToggleAndDelete(t *testing.T) {
	svc := NewSectionService(newTestStore(t))

	section, err := svc.Create(models.SectionPayload{
		NameEn: "Featured", NameKm: "ពិសេស", Enabled: true,
	})
	require.NoError(t, err)

	toggled, err := svc.Toggle(section.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Enabled)

	require.NoError(t, svc.Delete(section.ID))
	_, err = svc.Get(section.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateSettingPatchesBuiltins(t *testing.T) {
	svc := NewSectionService(newTestStore(t))

	enabled := false
	order := 9
	setting, err := svc.UpdateSetting("promotion", models.SectionSettingPayload{
		Enabled: &enabled, Order: &order,
	})
	require.NoError(t, err)

	assert.False(t, setting.Enabled)
	assert.Equal(t, 9, setting.Order)
	// Untouched fields keep their factory values.
	assert.Equal(t, "PROMOTION", setting.NameEn)
	assert.Equal(t, "ការផ្តល់ជូន", setting.NameKm)
}

func TestUpdateSettingCreatesMissingEntry(t *testing.T) {
	svc := NewSectionService(newTestStore(t))

	name := "EXTRA"
	setting, err := svc.UpdateSetting("extra", models.SectionSettingPayload{NameEn: &name})
	require.NoError(t, err)

	assert.True(t, setting.Enabled)
	assert.Equal(t, "EXTRA", setting.NameEn)
	assert.Equal(t, 1, setting.Order)
}
