// filepath: internal/services/event_service.go
package services

import (
	"shopfront/internal/models"
	"shopfront/internal/store"
	"shopfront/internal/video"
)

var eventAspectRatios = map[string]bool{
	"1/1": true, "16/9": true, "3/4": true, "9/16": true,
}

type eventService struct {
	store *store.Store
}

// NewEventService creates the event service.
func NewEventService(st *store.Store) EventService {
	return &eventService{store: st}
}

var _ EventService = (*eventService)(nil)

func (s *eventService) List() ([]models.Event, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return []models.Event{}, nil
	}
	return doc.Events, nil
}

func (s *eventService) Get(id int) (*models.Event, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if doc != nil {
		for i := range doc.Events {
			if doc.Events[i].ID == id {
				return &doc.Events[i], nil
			}
		}
	}
	return nil, ErrNotFound
}

func (s *eventService) Create(payload models.EventPayload) (*models.Event, error) {
	event, err := buildEvent(payload, models.Event{})
	if err != nil {
		return nil, err
	}

	doc, err := s.store.Mutate(func(doc *models.Document) error {
		event.ID = nextID(doc.Events, func(e models.Event) int { return e.ID })
		doc.Events = append(doc.Events, event)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return findEvent(doc, event.ID), nil
}

func (s *eventService) Update(id int, payload models.EventPayload) (*models.Event, error) {
	doc, err := s.store.Mutate(func(doc *models.Document) error {
		for i := range doc.Events {
			if doc.Events[i].ID != id {
				continue
			}
			event, err := buildEvent(payload, doc.Events[i])
			if err != nil {
				return err
			}
			doc.Events[i] = event
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return findEvent(doc, id), nil
}

func (s *eventService) Delete(id int) error {
	_, err := s.store.Mutate(func(doc *models.Document) error {
		for i := range doc.Events {
			if doc.Events[i].ID == id {
				doc.Events = append(doc.Events[:i], doc.Events[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
	return err
}

// buildEvent merges the payload over base and validates the merged values.
// Unlike the other card types, events require all four text fields; video
// events carry an embed URL and an aspect ratio, image events carry artwork,
// and each type clears the other's fields.
func buildEvent(p models.EventPayload, base models.Event) (models.Event, error) {
	event := base
	apply(&event.Title, p.Title)
	apply(&event.TitleKm, p.TitleKm)
	apply(&event.Description, p.Description)
	apply(&event.DescriptionKm, p.DescriptionKm)
	apply(&event.Type, p.Type)
	apply(&event.EmbedURL, p.EmbedURL)
	apply(&event.AspectRatio, p.AspectRatio)
	apply(&event.Image, p.Image)

	if event.Title == "" || event.TitleKm == "" || event.Description == "" || event.DescriptionKm == "" {
		return models.Event{}, validationError("please fill in all event fields")
	}

	switch event.Type {
	case "video":
		if event.EmbedURL == "" {
			return models.Event{}, validationError("please provide a video embed URL")
		}
		ratio := defaultString(event.AspectRatio, "1/1")
		if !eventAspectRatios[ratio] {
			return models.Event{}, validationError("unsupported aspect ratio")
		}
		event.EmbedURL = video.CleanVideoURL(event.EmbedURL)
		event.AspectRatio = ratio
		event.Image = ""
	case "image":
		if event.Image == "" {
			return models.Event{}, validationError("please provide an event image")
		}
		event.EmbedURL = ""
		event.AspectRatio = ""
	default:
		return models.Event{}, validationError("event type must be image or video")
	}
	return event, nil
}

func findEvent(doc *models.Document, id int) *models.Event {
	for i := range doc.Events {
		if doc.Events[i].ID == id {
			return &doc.Events[i]
		}
	}
	return nil
}
