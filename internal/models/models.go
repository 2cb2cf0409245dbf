// filepath: internal/models/models.go
package models

import (
	"encoding/json"
	"time"
)

// Document is the single website configuration document. Its JSON layout is
// the on-disk format, the import/export format and the API body format, so
// field tags are load-bearing.
type Document struct {
	SelectedTheme string          `json:"selectedTheme,omitempty"`
	Admin         json.RawMessage `json:"admin,omitempty"`  // credentials block, persisted verbatim
	Themes        json.RawMessage `json:"themes,omitempty"` // theme palette, persisted verbatim

	Banners        []Banner        `json:"banners"`
	Promotions     []Promotion     `json:"promotions"`
	Events         []Event         `json:"events"`
	Posts          []Post          `json:"posts"`
	Categories     []Category      `json:"categories"`
	Products       []Product       `json:"products"`
	CustomSections []CustomSection `json:"customSections"`

	SectionSettings map[string]SectionSetting `json:"sectionSettings,omitempty"`

	Contact      Contact      `json:"contact"`
	Logo         string       `json:"logo"`
	SiteSettings SiteSettings `json:"siteSettings"`

	NavigationStyle string     `json:"navigationStyle,omitempty"`
	CustomNavColors *NavColors `json:"customNavColors,omitempty"`

	ProblemSolveBanner *ProblemSolveBanner `json:"problemSolveBanner,omitempty"`
	ProblemSolveLink   string              `json:"problemSolveLink"`

	AboutUs *AboutUs `json:"aboutUs,omitempty"`

	ButtonIcons   map[string]ButtonIcon `json:"buttonIcons,omitempty"`
	LanguageFlags map[string]string     `json:"languageFlags,omitempty"`

	MenuItems []MenuItem `json:"menuItems"`

	Language        string                 `json:"language,omitempty"`
	DefaultLanguage string                 `json:"defaultLanguage,omitempty"`
	LanguageData    map[string]Translation `json:"languageData,omitempty"`
}

// Clone returns a deep copy of the document via its JSON form.
func (d *Document) Clone() (*Document, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	var out Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ItemCounts reports the number of items per collection. Surfaced in quota
// errors and storage stats.
func (d *Document) ItemCounts() map[string]int {
	return map[string]int{
		"banners":        len(d.Banners),
		"promotions":     len(d.Promotions),
		"events":         len(d.Events),
		"posts":          len(d.Posts),
		"products":       len(d.Products),
		"categories":     len(d.Categories),
		"customSections": len(d.CustomSections),
	}
}

// Product is a catalog entry.
type Product struct {
	ID            int          `json:"id"`
	Name          string       `json:"name"`
	NameKm        string       `json:"nameKm"`
	Category      string       `json:"category"`
	Price         string       `json:"price"`
	Image         string       `json:"image"`
	Images        []string     `json:"images"`
	Description   string       `json:"description"`
	DescriptionKm string       `json:"descriptionKm"`
	Contact       CardContact  `json:"contact"`
	VideoURL      string       `json:"videoUrl,omitempty"`
	EmbedURL      string       `json:"embedUrl,omitempty"`
}

// Promotion is a discounted offer. Price is derived from OriginalPrice and
// Discount, keeping the original's currency symbol.
type Promotion struct {
	ID            int         `json:"id"`
	Title         string      `json:"title"`
	TitleKm       string      `json:"titleKm"`
	Category      string      `json:"category"`
	OriginalPrice string      `json:"originalPrice"`
	Discount      string      `json:"discount"`
	Price         string      `json:"price"`
	PromoLabel    string      `json:"promoLabel"`
	Image         string      `json:"image"`
	Images        []string    `json:"images"`
	Description   string      `json:"description"`
	DescriptionKm string      `json:"descriptionKm"`
	Contact       CardContact `json:"contact"`
	VideoURL      string      `json:"videoUrl,omitempty"`
	EmbedURL      string      `json:"embedUrl,omitempty"`
}

// Event is either an image card or an embedded video.
type Event struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	TitleKm       string `json:"titleKm"`
	Description   string `json:"description"`
	DescriptionKm string `json:"descriptionKm"`
	Type          string `json:"type"` // "image" or "video"
	EmbedURL      string `json:"embedUrl"`
	AspectRatio   string `json:"aspectRatio,omitempty"`
	Image         string `json:"image"`
}

// Post is an announcement, shown in the post section when enabled.
type Post struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	TitleKm     string   `json:"titleKm"`
	Content     string   `json:"content"`
	ContentKm   string   `json:"contentKm"`
	Link        string   `json:"link"`
	Enabled     bool     `json:"enabled"`
	Type        string   `json:"type"` // "image" or "video"
	VideoURL    string   `json:"videoUrl,omitempty"`
	EmbedURL    string   `json:"embedUrl,omitempty"`
	AspectRatio string   `json:"aspectRatio,omitempty"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	Image       string   `json:"image"`
	Images      []string `json:"images,omitempty"`
}

// Banner is a rotating slide with device-specific artwork.
type Banner struct {
	ID            int    `json:"id"`
	MobileImage   string `json:"mobileImage"`
	DesktopImage  string `json:"desktopImage"`
	Link          string `json:"link"`
	Duration      int    `json:"duration"` // seconds per slide
	Enabled       bool   `json:"enabled"`
	ShowOnMobile  bool   `json:"showOnMobile"`
	ShowOnDesktop bool   `json:"showOnDesktop"`
	CreatedAt     string `json:"createdAt"`
}

// Category groups products. IDs are lowercase slugs; the "all" category is a
// fixed sentinel that always exists.
type Category struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameKm string `json:"nameKm"`
}

// AllCategoryID is the sentinel category that matches every product.
const AllCategoryID = "all"

// CustomSection is an admin-defined storefront section with its own items.
type CustomSection struct {
	ID          int           `json:"id"`
	NameEn      string        `json:"nameEn"`
	NameKm      string        `json:"nameKm"`
	Template    string        `json:"template"` // card, list, banner, custom
	Order       int           `json:"order"`
	Description string        `json:"description"`
	Enabled     bool          `json:"enabled"`
	Items       []SectionItem `json:"items"`
}

// SectionItem is one entry inside a custom section. IDs are local to the
// owning section.
type SectionItem struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
	Link    string `json:"link"`
	Enabled bool   `json:"enabled"`
}

// SectionSetting controls one of the four built-in storefront sections.
type SectionSetting struct {
	Enabled bool   `json:"enabled"`
	NameEn  string `json:"nameEn"`
	NameKm  string `json:"nameKm"`
	Order   int    `json:"order"`
}

// MenuItem is a navigation entry seeded at bootstrap.
type MenuItem struct {
	ID           string `json:"id"`
	LabelEn      string `json:"labelEn"`
	LabelKm      string `json:"labelKm"`
	Enabled      bool   `json:"enabled"`
	TemplateType string `json:"templateType"`
	Order        int    `json:"order"`
}

// Contact is the site-wide contact block.
type Contact struct {
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	WhatsApp  string `json:"whatsapp"`
	Telegram  string `json:"telegram"`
	Facebook  string `json:"facebook"`
	Messenger string `json:"messenger"`
}

// CardContact is the per-item contact block on products and promotions.
type CardContact struct {
	Phone     string `json:"phone"`
	WhatsApp  string `json:"whatsapp"`
	Telegram  string `json:"telegram"`
	Facebook  string `json:"facebook"`
	Messenger string `json:"messenger"`
}

// SiteSettings holds title and metadata for the storefront pages.
type SiteSettings struct {
	Title         string `json:"title"`
	TitleKm       string `json:"titleKm"`
	Favicon       string `json:"favicon"`
	Description   string `json:"description"`
	DescriptionKm string `json:"descriptionKm"`
	OGImage       string `json:"ogImage"`
	Keywords      string `json:"keywords"`
}

// NavColors is the palette used when navigationStyle is "custom".
type NavColors struct {
	Background   string `json:"background"`
	Text         string `json:"text"`
	ActiveButton string `json:"activeButton"`
}

// ProblemSolveBanner is the post-section banner block.
type ProblemSolveBanner struct {
	Enabled       bool   `json:"enabled"`
	Image         string `json:"image"`
	Link          string `json:"link"`
	TitleEn       string `json:"titleEn"`
	TitleKm       string `json:"titleKm"`
	DescriptionEn string `json:"descriptionEn"`
	DescriptionKm string `json:"descriptionKm"`
}

// AboutUs is the bilingual about block.
type AboutUs struct {
	TitleEn   string `json:"titleEn"`
	TitleKm   string `json:"titleKm"`
	ContentEn string `json:"contentEn"`
	ContentKm string `json:"contentKm"`
}

// ButtonIcon customizes one of the contact action buttons. Icon values are
// opaque strings (emoji, URL or data URI).
type ButtonIcon struct {
	Icon     string `json:"icon"`
	CartIcon string `json:"cartIcon"`
	Label    string `json:"label"`
}

// Info describes the running service.
type Info struct {
	Version     string    `json:"version"`
	UptimeSince time.Time `json:"uptime_since"`
	Uptime      string    `json:"uptime"`
	Storage     string    `json:"storage"` // active backend: "sqlite" or "file"
}

// Fallback returns the first non-empty string, or the placeholder when both
// are empty. This is the bilingual fallback rule: a field never renders
// empty, it borrows the other language or a fixed placeholder.
func Fallback(primary, secondary, placeholder string) string {
	if primary != "" {
		return primary
	}
	if secondary != "" {
		return secondary
	}
	return placeholder
}
