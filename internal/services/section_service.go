// filepath: internal/services/section_service.go
package services

import (
	"strings"

	"shopfront/internal/models"
	"shopfront/internal/store"
)

var sectionTemplates = map[string]bool{
	"card": true, "list": true, "banner": true, "custom": true,
}

type sectionService struct {
	store *store.Store
}

// NewSectionService creates the section service.
func NewSectionService(st *store.Store) SectionService {
	return &sectionService{store: st}
}

var _ SectionService = (*sectionService)(nil)

func (s *sectionService) List() ([]models.CustomSection, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return []models.CustomSection{}, nil
	}
	return doc.CustomSections, nil
}

func (s *sectionService) Get(id int) (*models.CustomSection, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if doc != nil {
		for i := range doc.CustomSections {
			if doc.CustomSections[i].ID == id {
				return &doc.CustomSections[i], nil
			}
		}
	}
	return nil, ErrNotFound
}

func (s *sectionService) Create(payload models.SectionPayload) (*models.CustomSection, error) {
	section, err := buildSection(payload)
	if err != nil {
		return nil, err
	}
	section.Items = []models.SectionItem{}

	doc, err := s.store.Mutate(func(doc *models.Document) error {
		section.ID = nextID(doc.CustomSections, func(cs models.CustomSection) int { return cs.ID })
		doc.CustomSections = append(doc.CustomSections, section)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return findSection(doc, section.ID), nil
}

// Update edits a section's settings. Its items are kept as they are.
func (s *sectionService) Update(id int, payload models.SectionPayload) (*models.CustomSection, error) {
	section, err := buildSection(payload)
	if err != nil {
		return nil, err
	}
	section.ID = id

	doc, err := s.store.Mutate(func(doc *models.Document) error {
		for i := range doc.CustomSections {
			if doc.CustomSections[i].ID == id {
				section.Items = doc.CustomSections[i].Items
				doc.CustomSections[i] = section
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return findSection(doc, id), nil
}

func (s *sectionService) Toggle(id int) (*models.CustomSection, error) {
	doc, err := s.store.Mutate(func(doc *models.Document) error {
		for i := range doc.CustomSections {
			if doc.CustomSections[i].ID == id {
				doc.CustomSections[i].Enabled = !doc.CustomSections[i].Enabled
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return findSection(doc, id), nil
}

func (s *sectionService) Delete(id int) error {
	_, err := s.store.Mutate(func(doc *models.Document) error {
		for i := range doc.CustomSections {
			if doc.CustomSections[i].ID == id {
				doc.CustomSections = append(doc.CustomSections[:i], doc.CustomSections[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
	return err
}

func (s *sectionService) AddItem(sectionID int, payload models.SectionItemPayload) (*models.SectionItem, error) {
	item, err := buildSectionItem(payload)
	if err != nil {
		return nil, err
	}

	doc, err := s.store.Mutate(func(doc *models.Document) error {
		section := findSection(doc, sectionID)
		if section == nil {
			return ErrNotFound
		}
		// Item IDs are local to the owning section.
		item.ID = nextID(section.Items, func(it models.SectionItem) int { return it.ID })
		section.Items = append(section.Items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return findSectionItem(doc, sectionID, item.ID), nil
}

func (s *sectionService) UpdateItem(sectionID, itemID int, payload models.SectionItemPayload) (*models.SectionItem, error) {
	item, err := buildSectionItem(payload)
	if err != nil {
		return nil, err
	}
	item.ID = itemID

	doc, err := s.store.Mutate(func(doc *models.Document) error {
		section := findSection(doc, sectionID)
		if section == nil {
			return ErrNotFound
		}
		for i := range section.Items {
			if section.Items[i].ID == itemID {
				section.Items[i] = item
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return findSectionItem(doc, sectionID, itemID), nil
}

func (s *sectionService) ToggleItem(sectionID, itemID int) (*models.SectionItem, error) {
	doc, err := s.store.Mutate(func(doc *models.Document) error {
		section := findSection(doc, sectionID)
		if section == nil {
			return ErrNotFound
		}
		for i := range section.Items {
			if section.Items[i].ID == itemID {
				section.Items[i].Enabled = !section.Items[i].Enabled
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return findSectionItem(doc, sectionID, itemID), nil
}

func (s *sectionService) DeleteItem(sectionID, itemID int) error {
	_, err := s.store.Mutate(func(doc *models.Document) error {
		section := findSection(doc, sectionID)
		if section == nil {
			return ErrNotFound
		}
		for i := range section.Items {
			if section.Items[i].ID == itemID {
				section.Items = append(section.Items[:i], section.Items[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
	return err
}

// UpdateSetting patches one built-in section's settings. Missing entries are
// created enabled, matching how the admin panel repairs a pruned map.
func (s *sectionService) UpdateSetting(key string, payload models.SectionSettingPayload) (*models.SectionSetting, error) {
	var result models.SectionSetting
	_, err := s.store.Mutate(func(doc *models.Document) error {
		if doc.SectionSettings == nil {
			doc.SectionSettings = models.DefaultSectionSettings()
		}
		setting, ok := doc.SectionSettings[key]
		if !ok {
			setting = models.SectionSetting{Enabled: true, Order: 1}
		}
		if payload.Enabled != nil {
			setting.Enabled = *payload.Enabled
		}
		if payload.NameEn != nil {
			setting.NameEn = *payload.NameEn
		}
		if payload.NameKm != nil {
			setting.NameKm = *payload.NameKm
		}
		if payload.Order != nil {
			setting.Order = *payload.Order
		}
		doc.SectionSettings[key] = setting
		result = setting
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func buildSection(p models.SectionPayload) (models.CustomSection, error) {
	nameEn := strings.TrimSpace(p.NameEn)
	nameKm := strings.TrimSpace(p.NameKm)
	if nameEn == "" || nameKm == "" {
		return models.CustomSection{}, validationError("please provide both English and Khmer section names")
	}
	if len([]rune(nameEn)) < 2 || len([]rune(nameKm)) < 2 {
		return models.CustomSection{}, validationError("section names must be at least 2 characters long")
	}
	template := defaultString(p.Template, "card")
	if !sectionTemplates[template] {
		return models.CustomSection{}, validationError("unknown section template")
	}
	order := p.Order
	if order == 0 {
		order = 5
	}
	return models.CustomSection{
		NameEn:      nameEn,
		NameKm:      nameKm,
		Template:    template,
		Order:       order,
		Description: p.Description,
		Enabled:     p.Enabled,
	}, nil
}

func buildSectionItem(p models.SectionItemPayload) (models.SectionItem, error) {
	if p.Title == "" && p.Content == "" {
		return models.SectionItem{}, validationError("please provide at least a title or content")
	}
	return models.SectionItem{
		Title:   p.Title,
		Content: p.Content,
		Image:   p.Image,
		Link:    p.Link,
		Enabled: p.Enabled,
	}, nil
}

func findSection(doc *models.Document, id int) *models.CustomSection {
	for i := range doc.CustomSections {
		if doc.CustomSections[i].ID == id {
			return &doc.CustomSections[i]
		}
	}
	return nil
}

func findSectionItem(doc *models.Document, sectionID, itemID int) *models.SectionItem {
	section := findSection(doc, sectionID)
	if section == nil {
		return nil
	}
	for i := range section.Items {
		if section.Items[i].ID == itemID {
			return &section.Items[i]
		}
	}
	return nil
}
