// filepath: internal/services/interfaces.go
package services

import (
	"shopfront/internal/bridge"
	"shopfront/internal/models"
)

// ProductService manages the product catalog.
type ProductService interface {
	List() ([]models.Product, error)
	Get(id int) (*models.Product, error)
	Create(payload models.ProductPayload) (*models.Product, error)
	Update(id int, payload models.ProductPayload) (*models.Product, error)
	Delete(id int) error
}

// PromotionService manages promotions. The display price is derived from the
// original price and the discount percentage on every save.
type PromotionService interface {
	List() ([]models.Promotion, error)
	Get(id int) (*models.Promotion, error)
	Create(payload models.PromotionPayload) (*models.Promotion, error)
	Update(id int, payload models.PromotionPayload) (*models.Promotion, error)
	Delete(id int) error
}

// EventService manages events.
type EventService interface {
	List() ([]models.Event, error)
	Get(id int) (*models.Event, error)
	Create(payload models.EventPayload) (*models.Event, error)
	Update(id int, payload models.EventPayload) (*models.Event, error)
	Delete(id int) error
}

// PostService manages posts.
type PostService interface {
	List() ([]models.Post, error)
	Get(id int) (*models.Post, error)
	Create(payload models.PostPayload) (*models.Post, error)
	Update(id int, payload models.PostPayload) (*models.Post, error)
	Toggle(id int) (*models.Post, error)
	Delete(id int) error
}

// BannerService manages the rotating banners.
type BannerService interface {
	List() ([]models.Banner, error)
	Get(id int) (*models.Banner, error)
	Create(payload models.BannerPayload) (*models.Banner, error)
	Update(id int, payload models.BannerPayload) (*models.Banner, error)
	Delete(id int) error
}

// CategoryService manages product categories. The "all" sentinel cannot be
// edited or deleted.
type CategoryService interface {
	List() ([]models.Category, error)
	Create(payload models.CategoryPayload) (*models.Category, error)
	Update(id string, payload models.CategoryPayload) (*models.Category, error)
	Delete(id string) error
}

// SectionService manages custom sections, their items and the built-in
// section settings.
type SectionService interface {
	List() ([]models.CustomSection, error)
	Get(id int) (*models.CustomSection, error)
	Create(payload models.SectionPayload) (*models.CustomSection, error)
	Update(id int, payload models.SectionPayload) (*models.CustomSection, error)
	Toggle(id int) (*models.CustomSection, error)
	Delete(id int) error

	AddItem(sectionID int, payload models.SectionItemPayload) (*models.SectionItem, error)
	UpdateItem(sectionID, itemID int, payload models.SectionItemPayload) (*models.SectionItem, error)
	ToggleItem(sectionID, itemID int) (*models.SectionItem, error)
	DeleteItem(sectionID, itemID int) error

	UpdateSetting(key string, payload models.SectionSettingPayload) (*models.SectionSetting, error)
}

// SettingsService manages the settings tab, language flags and uploaded
// translations.
type SettingsService interface {
	Get() (*models.Document, error)
	Update(payload models.SettingsPayload) (*models.Document, error)

	SetDefaultLanguage(lang string) error
	SetLanguageFlag(lang, icon string) error
	DeleteLanguageFlag(lang string) error
	ResetLanguageFlags() error

	UploadTranslations(raw []byte) error
	ResetTranslations() error
}

// BridgeService moves the document across the config.js and backup formats.
type BridgeService interface {
	Export() (string, error)
	Import(snippet string) (*models.Document, error)
	Backup() (*bridge.BackupPayload, error)
	Restore(raw []byte) (*models.Document, error)
}

// InfoService reports service metadata.
type InfoService interface {
	GetInfo() (*models.Info, error)
}
