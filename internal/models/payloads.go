// filepath: internal/models/payloads.go
package models

// Request payloads for the admin CRUD services. Separate from the stored
// entities: IDs are assigned server-side and derived fields (promotion price,
// embed URLs, fallbacks) are computed on save. Card payload fields are
// pointers so an omitted field keeps the stored value on update; a nil slice
// likewise means "not provided".

// ProductPayload carries the editable fields of a product.
type ProductPayload struct {
	Name          *string      `json:"name"`
	NameKm        *string      `json:"nameKm"`
	Category      *string      `json:"category"`
	Price         *string      `json:"price"`
	Image         *string      `json:"image"`
	Images        []string     `json:"images"`
	Description   *string      `json:"description"`
	DescriptionKm *string      `json:"descriptionKm"`
	Contact       *CardContact `json:"contact"`
	VideoURL      *string      `json:"videoUrl"`
}

// PromotionPayload carries the editable fields of a promotion. Price is
// recomputed from OriginalPrice and Discount on save.
type PromotionPayload struct {
	Title         *string      `json:"title"`
	TitleKm       *string      `json:"titleKm"`
	Category      *string      `json:"category"`
	OriginalPrice *string      `json:"originalPrice"`
	Discount      *string      `json:"discount"`
	PromoLabel    *string      `json:"promoLabel"`
	Image         *string      `json:"image"`
	Images        []string     `json:"images"`
	Description   *string      `json:"description"`
	DescriptionKm *string      `json:"descriptionKm"`
	Contact       *CardContact `json:"contact"`
	VideoURL      *string      `json:"videoUrl"`
}

// EventPayload carries the editable fields of an event.
type EventPayload struct {
	Title         *string `json:"title"`
	TitleKm       *string `json:"titleKm"`
	Description   *string `json:"description"`
	DescriptionKm *string `json:"descriptionKm"`
	Type          *string `json:"type"`
	EmbedURL      *string `json:"embedUrl"`
	AspectRatio   *string `json:"aspectRatio"`
	Image         *string `json:"image"`
}

// PostPayload carries the editable fields of a post.
type PostPayload struct {
	Title       *string  `json:"title"`
	TitleKm     *string  `json:"titleKm"`
	Content     *string  `json:"content"`
	ContentKm   *string  `json:"contentKm"`
	Link        *string  `json:"link"`
	Enabled     *bool    `json:"enabled"`
	Type        *string  `json:"type"`
	VideoURL    *string  `json:"videoUrl"`
	AspectRatio *string  `json:"aspectRatio"`
	Thumbnail   *string  `json:"thumbnail"`
	Image       *string  `json:"image"`
	Images      []string `json:"images"`
}

// BannerPayload carries the editable fields of a banner.
type BannerPayload struct {
	MobileImage   *string `json:"mobileImage"`
	DesktopImage  *string `json:"desktopImage"`
	Link          *string `json:"link"`
	Duration      *int    `json:"duration"`
	Enabled       *bool   `json:"enabled"`
	ShowOnMobile  *bool   `json:"showOnMobile"`
	ShowOnDesktop *bool   `json:"showOnDesktop"`
}

// CategoryPayload carries the editable fields of a category. The ID is
// normalized to a lowercase slug on save.
type CategoryPayload struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameKm string `json:"nameKm"`
}

// SectionPayload carries the editable fields of a custom section.
type SectionPayload struct {
	NameEn      string `json:"nameEn"`
	NameKm      string `json:"nameKm"`
	Template    string `json:"template"`
	Order       int    `json:"order"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

// SectionItemPayload carries the editable fields of a custom section item.
type SectionItemPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
	Link    string `json:"link"`
	Enabled bool   `json:"enabled"`
}

// SectionSettingPayload updates one built-in section. Nil fields are left
// unchanged.
type SectionSettingPayload struct {
	Enabled *bool   `json:"enabled"`
	NameEn  *string `json:"nameEn"`
	NameKm  *string `json:"nameKm"`
	Order   *int    `json:"order"`
}

// SettingsPayload carries the settings tab as one unit, matching the
// original's save-all behavior. Nil blocks are left unchanged.
type SettingsPayload struct {
	Logo               *string               `json:"logo"`
	SiteSettings       *SiteSettings         `json:"siteSettings"`
	NavigationStyle    *string               `json:"navigationStyle"`
	CustomNavColors    *NavColors            `json:"customNavColors"`
	ProblemSolveBanner *ProblemSolveBanner   `json:"problemSolveBanner"`
	ProblemSolveLink   *string               `json:"problemSolveLink"`
	AboutUs            *AboutUs              `json:"aboutUs"`
	Contact            *Contact              `json:"contact"`
	ButtonIcons        map[string]ButtonIcon `json:"buttonIcons"`
}
