// filepath: internal/models/defaults.go
package models

import "strings"

// DefaultSectionSettings returns the four built-in storefront sections with
// their original labels and order.
func DefaultSectionSettings() map[string]SectionSetting {
	return map[string]SectionSetting{
		"promotion": {Enabled: true, NameEn: "PROMOTION", NameKm: "ការផ្តល់ជូន", Order: 1},
		"event":     {Enabled: true, NameEn: "EVENT", NameKm: "ព្រឹត្តិការណ៍", Order: 2},
		"products":  {Enabled: true, NameEn: "ALL PRODUCT", NameKm: "ផលិតផលទាំងអស់", Order: 3},
		"problem":   {Enabled: true, NameEn: "POST", NameKm: "ប្រកាស", Order: 4},
	}
}

// DefaultMenuItems returns the bootstrap navigation entries.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{ID: "promotion", LabelEn: "Promotion", LabelKm: "ការផ្តល់ជូន", Enabled: true, TemplateType: "promotion", Order: 1},
		{ID: "event", LabelEn: "Event", LabelKm: "ព្រឹត្តិការណ៍", Enabled: true, TemplateType: "event", Order: 2},
		{ID: "all-product", LabelEn: "All Product", LabelKm: "ផលិតផលទាំងអស់", Enabled: true, TemplateType: "product", Order: 3},
		{ID: "post", LabelEn: "Post", LabelKm: "ប្រកាស", Enabled: true, TemplateType: "post", Order: 4},
	}
}

// DefaultCategories returns the sentinel category list.
func DefaultCategories() []Category {
	return []Category{{ID: AllCategoryID, Name: "All", NameKm: "ទាំងអស់"}}
}

// DefaultButtonIcons returns the factory contact button icons.
func DefaultButtonIcons() map[string]ButtonIcon {
	return map[string]ButtonIcon{
		"phone":     {Icon: "📞", CartIcon: "🛒", Label: "Phone"},
		"whatsapp":  {Icon: "💬", CartIcon: "🛒", Label: "WhatsApp"},
		"telegram":  {Icon: "✈️", CartIcon: "🛒", Label: "Telegram"},
		"facebook":  {Icon: "👍", CartIcon: "🛒", Label: "Facebook"},
		"messenger": {Icon: "💬", CartIcon: "🛒", Label: "Messenger"},
	}
}

// NewDocument builds a fresh document with factory values, used when nothing
// has been stored yet.
func NewDocument() *Document {
	doc := &Document{
		SelectedTheme: "alibaba",
		Logo:          "",
		SiteSettings: SiteSettings{
			Title:         "Mobile Website",
			TitleKm:       "គេហទំព័រទូរស័ព្ទ",
			Description:   "Welcome to our online store",
			DescriptionKm: "សូមស្វាគមន៍មកកាន់ហាងអនឡាញរបស់យើង",
			Keywords:      "online store, products, shopping",
		},
		NavigationStyle: "solid",
		CustomNavColors: &NavColors{
			Background:   "#2c3e50",
			Text:         "#ffffff",
			ActiveButton: "#e74c3c",
		},
		ProblemSolveBanner: &ProblemSolveBanner{
			TitleEn:       "Latest Posts",
			TitleKm:       "ប្រកាសថ្មីៗ",
			DescriptionEn: "Check out our latest updates!",
			DescriptionKm: "មើលការអាប់ដេតថ្មីៗរបស់យើង!",
		},
		ButtonIcons:     DefaultButtonIcons(),
		Language:        "en",
		DefaultLanguage: "en",
	}
	EnsureDefaults(doc)
	return doc
}

// EnsureDefaults fills any missing or malformed parts of a loaded document.
// It is idempotent: applying it twice yields the same document.
func EnsureDefaults(doc *Document) {
	if doc.Products == nil {
		doc.Products = []Product{}
	}
	if doc.Promotions == nil {
		doc.Promotions = []Promotion{}
	}
	if doc.Events == nil {
		doc.Events = []Event{}
	}
	if doc.Banners == nil {
		doc.Banners = []Banner{}
	}
	if doc.Posts == nil {
		doc.Posts = []Post{}
	}
	if len(doc.Categories) == 0 {
		doc.Categories = DefaultCategories()
	}
	if doc.CustomSections == nil {
		doc.CustomSections = []CustomSection{}
	}

	// Drop custom sections missing an id or a usable name in either language.
	kept := doc.CustomSections[:0]
	for _, s := range doc.CustomSections {
		if s.ID == 0 {
			continue
		}
		if strings.TrimSpace(s.NameEn) == "" || strings.TrimSpace(s.NameKm) == "" {
			continue
		}
		if s.Items == nil {
			s.Items = []SectionItem{}
		}
		kept = append(kept, s)
	}
	doc.CustomSections = kept

	if doc.SectionSettings == nil {
		doc.SectionSettings = DefaultSectionSettings()
	}
	if len(doc.MenuItems) == 0 {
		doc.MenuItems = DefaultMenuItems()
	}
	if doc.Language == "" {
		doc.Language = "en"
	}
}
