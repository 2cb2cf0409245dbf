// filepath: internal/services/settings_service.go
package services

import (
	"fmt"

	"shopfront/internal/bridge"
	"shopfront/internal/models"
	"shopfront/internal/store"
)

type settingsService struct {
	store *store.Store
}

// NewSettingsService creates the settings service.
func NewSettingsService(st *store.Store) SettingsService {
	return &settingsService{store: st}
}

var _ SettingsService = (*settingsService)(nil)

// Get returns the full document for the admin panel. When nothing has been
// stored yet it returns the defaults without persisting them.
func (s *settingsService) Get() (*models.Document, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = models.NewDocument()
	}
	return doc, nil
}

// Update applies the settings tab as one unit. Nil blocks keep their current
// values; custom nav colors only take effect while the navigation style is
// "custom".
func (s *settingsService) Update(payload models.SettingsPayload) (*models.Document, error) {
	return s.store.Mutate(func(doc *models.Document) error {
		if payload.Logo != nil {
			doc.Logo = *payload.Logo
		}
		if payload.SiteSettings != nil {
			doc.SiteSettings = *payload.SiteSettings
		}
		if payload.NavigationStyle != nil {
			doc.NavigationStyle = *payload.NavigationStyle
		}
		if doc.NavigationStyle == "custom" && payload.CustomNavColors != nil {
			doc.CustomNavColors = payload.CustomNavColors
		}
		if payload.ProblemSolveBanner != nil {
			doc.ProblemSolveBanner = payload.ProblemSolveBanner
		}
		if payload.ProblemSolveLink != nil {
			doc.ProblemSolveLink = *payload.ProblemSolveLink
		}
		if payload.AboutUs != nil {
			doc.AboutUs = payload.AboutUs
		}
		if payload.Contact != nil {
			doc.Contact = *payload.Contact
		}
		if payload.ButtonIcons != nil {
			doc.ButtonIcons = payload.ButtonIcons
		}
		return nil
	})
}

func (s *settingsService) SetDefaultLanguage(lang string) error {
	if lang != "en" && lang != "km" {
		return fmt.Errorf("%w: language must be en or km", ErrValidation)
	}
	_, err := s.store.Mutate(func(doc *models.Document) error {
		doc.DefaultLanguage = lang
		return nil
	})
	return err
}

func (s *settingsService) SetLanguageFlag(lang, icon string) error {
	if lang == "" || icon == "" {
		return validationError("please provide a language and a flag icon")
	}
	_, err := s.store.Mutate(func(doc *models.Document) error {
		if doc.LanguageFlags == nil {
			doc.LanguageFlags = map[string]string{}
		}
		doc.LanguageFlags[lang] = icon
		return nil
	})
	return err
}

func (s *settingsService) DeleteLanguageFlag(lang string) error {
	_, err := s.store.Mutate(func(doc *models.Document) error {
		delete(doc.LanguageFlags, lang)
		return nil
	})
	return err
}

func (s *settingsService) ResetLanguageFlags() error {
	_, err := s.store.Mutate(func(doc *models.Document) error {
		doc.LanguageFlags = nil
		return nil
	})
	return err
}

// UploadTranslations replaces the translation table wholesale. A file with
// any malformed entry is rejected without touching the current table.
func (s *settingsService) UploadTranslations(raw []byte) error {
	data, err := bridge.ParseTranslations(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	_, err = s.store.Mutate(func(doc *models.Document) error {
		doc.LanguageData = data
		return nil
	})
	return err
}

func (s *settingsService) ResetTranslations() error {
	_, err := s.store.Mutate(func(doc *models.Document) error {
		doc.LanguageData = nil
		return nil
	})
	return err
}
