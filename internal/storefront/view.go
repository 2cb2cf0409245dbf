// filepath: internal/storefront/view.go
package storefront

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"shopfront/internal/models"
)

// View is the storefront page model for one language: the enabled sections in
// display order with resolved labels, plus the visible content collections.
type View struct {
	Language           string                       `json:"language"`
	Title              string                       `json:"title"`
	Description        string                       `json:"description"`
	Logo               string                       `json:"logo"`
	NavigationStyle    string                       `json:"navigationStyle"`
	NavColors          *models.NavColors            `json:"navColors,omitempty"`
	Sections           []Section                    `json:"sections"`
	Banners            []models.Banner              `json:"banners"`
	Promotions         []PromotionCard              `json:"promotions"`
	Events             []models.Event               `json:"events"`
	Posts              []models.Post                `json:"posts"`
	Products           []ProductCard                `json:"products"`
	CustomSections     []models.CustomSection       `json:"customSections"`
	Categories         []models.Category            `json:"categories"`
	Contact            models.Contact               `json:"contact"`
	AboutUs            *models.AboutUs              `json:"aboutUs,omitempty"`
	ProblemSolveBanner *models.ProblemSolveBanner   `json:"problemSolveBanner,omitempty"`
	ButtonIcons        map[string]models.ButtonIcon `json:"buttonIcons,omitempty"`
}

// Section is one navigation entry. Built-in sections keep their settings key
// as the ID; custom sections get a "custom-" prefix so the two namespaces
// cannot collide.
type Section struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Order  int    `json:"order"`
	Custom bool   `json:"custom"`
}

// ProductCard is a product with its category label resolved for display.
type ProductCard struct {
	models.Product
	CategoryName string `json:"categoryName"`
}

// PromotionCard is a promotion with its category label resolved for display.
type PromotionCard struct {
	models.Promotion
	CategoryName string `json:"categoryName"`
}

// ProxyImageURL returns the image proxy fallback used when artwork fails to
// load directly. Only http(s) URLs can be proxied.
func ProxyImageURL(raw string) string {
	if !strings.HasPrefix(raw, "http") {
		return raw
	}
	return "https://images.weserv.nl/?url=" + url.QueryEscape(raw)
}

// buildView renders the document for one language.
func buildView(doc *models.Document, lang string) *View {
	view := &View{
		Language:        lang,
		Title:           pick(lang, doc.SiteSettings.Title, doc.SiteSettings.TitleKm),
		Description:     pick(lang, doc.SiteSettings.Description, doc.SiteSettings.DescriptionKm),
		Logo:            doc.Logo,
		NavigationStyle: doc.NavigationStyle,
		Sections:        buildSections(doc, lang),
		Banners:         enabledBanners(doc.Banners),
		Events:          doc.Events,
		Posts:           enabledPosts(doc.Posts),
		CustomSections:  enabledCustomSections(doc.CustomSections),
		Categories:      doc.Categories,
		Contact:         doc.Contact,
		AboutUs:         doc.AboutUs,
		ProblemSolveBanner: doc.ProblemSolveBanner,
		ButtonIcons:     doc.ButtonIcons,
	}
	if doc.NavigationStyle == "custom" {
		view.NavColors = doc.CustomNavColors
	}

	view.Promotions = make([]PromotionCard, 0, len(doc.Promotions))
	for _, p := range doc.Promotions {
		view.Promotions = append(view.Promotions, PromotionCard{
			Promotion:    p,
			CategoryName: categoryName(doc.Categories, p.Category, lang),
		})
	}
	view.Products = make([]ProductCard, 0, len(doc.Products))
	for _, p := range doc.Products {
		view.Products = append(view.Products, ProductCard{
			Product:      p,
			CategoryName: categoryName(doc.Categories, p.Category, lang),
		})
	}
	return view
}

// buildSections merges the built-in section settings with the enabled custom
// sections, sorted by order. Ties keep built-ins ahead of custom sections and
// are otherwise broken by ID so the order is stable across renders.
func buildSections(doc *models.Document, lang string) []Section {
	sections := make([]Section, 0, len(doc.SectionSettings)+len(doc.CustomSections))

	for key, setting := range doc.SectionSettings {
		if !setting.Enabled {
			continue
		}
		label := pick(lang, setting.NameEn, setting.NameKm)
		if strings.TrimSpace(label) == "" {
			continue
		}
		sections = append(sections, Section{
			ID:    key,
			Label: label,
			Order: setting.Order,
		})
	}

	for _, cs := range doc.CustomSections {
		if !cs.Enabled || cs.NameEn == "" || cs.NameKm == "" {
			continue
		}
		order := cs.Order
		if order == 0 {
			order = 5
		}
		sections = append(sections, Section{
			ID:     fmt.Sprintf("custom-%d", cs.ID),
			Label:  pick(lang, cs.NameEn, cs.NameKm),
			Order:  order,
			Custom: true,
		})
	}

	sort.SliceStable(sections, func(i, j int) bool {
		if sections[i].Order != sections[j].Order {
			return sections[i].Order < sections[j].Order
		}
		if sections[i].Custom != sections[j].Custom {
			return !sections[i].Custom
		}
		return sections[i].ID < sections[j].ID
	})
	return sections
}

// categoryName resolves a category ID to its display label, falling back to
// the raw ID when the category no longer exists.
func categoryName(categories []models.Category, id, lang string) string {
	for _, c := range categories {
		if c.ID == id {
			return pick(lang, c.Name, c.NameKm)
		}
	}
	return id
}

func pick(lang, en, km string) string {
	if lang == "km" && km != "" {
		return km
	}
	if en == "" {
		return km
	}
	return en
}

func enabledBanners(banners []models.Banner) []models.Banner {
	out := make([]models.Banner, 0, len(banners))
	for _, b := range banners {
		if b.Enabled {
			out = append(out, b)
		}
	}
	return out
}

func enabledPosts(posts []models.Post) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.Enabled {
			out = append(out, p)
		}
	}
	return out
}

func enabledCustomSections(sections []models.CustomSection) []models.CustomSection {
	out := make([]models.CustomSection, 0, len(sections))
	for _, s := range sections {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}
