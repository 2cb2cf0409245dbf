// filepath: internal/services/post_service.go
package services

import (
	"shopfront/internal/models"
	"shopfront/internal/store"
	"shopfront/internal/video"
)

const (
	videoPostPlaceholder = "https://via.placeholder.com/300x200?text=Video+Post"
	imagePostPlaceholder = "https://via.placeholder.com/300x200?text=Image+Post"
)

type postService struct {
	store *store.Store
}

// NewPostService creates the post service.
func NewPostService(st *store.Store) PostService {
	return &postService{store: st}
}

var _ PostService = (*postService)(nil)

func (s *postService) List() ([]models.Post, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return []models.Post{}, nil
	}
	return doc.Posts, nil
}

func (s *postService) Get(id int) (*models.Post, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if doc != nil {
		for i := range doc.Posts {
			if doc.Posts[i].ID == id {
				return &doc.Posts[i], nil
			}
		}
	}
	return nil, ErrNotFound
}

func (s *postService) Create(payload models.PostPayload) (*models.Post, error) {
	post, err := buildPost(payload, models.Post{})
	if err != nil {
		return nil, err
	}

	doc, err := s.store.Mutate(func(doc *models.Document) error {
		post.ID = nextID(doc.Posts, func(p models.Post) int { return p.ID })
		doc.Posts = append(doc.Posts, post)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return findPost(doc, post.ID), nil
}

func (s *postService) Update(id int, payload models.PostPayload) (*models.Post, error) {
	doc, err := s.store.Mutate(func(doc *models.Document) error {
		for i := range doc.Posts {
			if doc.Posts[i].ID != id {
				continue
			}
			post, err := buildPost(payload, doc.Posts[i])
			if err != nil {
				return err
			}
			doc.Posts[i] = post
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return findPost(doc, id), nil
}

// Toggle flips a post between published and unpublished.
func (s *postService) Toggle(id int) (*models.Post, error) {
	doc, err := s.store.Mutate(func(doc *models.Document) error {
		for i := range doc.Posts {
			if doc.Posts[i].ID == id {
				doc.Posts[i].Enabled = !doc.Posts[i].Enabled
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return findPost(doc, id), nil
}

func (s *postService) Delete(id int) error {
	_, err := s.store.Mutate(func(doc *models.Document) error {
		for i := range doc.Posts {
			if doc.Posts[i].ID == id {
				doc.Posts = append(doc.Posts[:i], doc.Posts[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
	return err
}

// buildPost merges the payload over base and validates the merged values.
// Each post type clears the other's media fields on a type switch.
func buildPost(p models.PostPayload, base models.Post) (models.Post, error) {
	post := base
	apply(&post.Title, p.Title)
	apply(&post.TitleKm, p.TitleKm)
	apply(&post.Content, p.Content)
	apply(&post.ContentKm, p.ContentKm)
	apply(&post.Link, p.Link)
	apply(&post.Enabled, p.Enabled)
	apply(&post.Type, p.Type)
	apply(&post.VideoURL, p.VideoURL)
	apply(&post.AspectRatio, p.AspectRatio)
	apply(&post.Thumbnail, p.Thumbnail)
	apply(&post.Image, p.Image)
	if p.Images != nil {
		post.Images = p.Images
	}

	if post.Title == "" && post.TitleKm == "" && post.Content == "" && post.ContentKm == "" {
		return models.Post{}, validationError("please provide at least a title or content")
	}

	title, titleKm := post.Title, post.TitleKm
	post.Title = models.Fallback(title, titleKm, "Post")
	post.TitleKm = models.Fallback(titleKm, title, "ប្រកាស")
	content, contentKm := post.Content, post.ContentKm
	post.Content = models.Fallback(content, contentKm, "No content")
	post.ContentKm = models.Fallback(contentKm, content, "គ្មានមាតិកា")
	post.Link = defaultString(post.Link, "#")

	switch post.Type {
	case "video":
		if post.VideoURL == "" {
			return models.Post{}, validationError("please provide a video URL")
		}
		clean := video.CleanVideoURL(post.VideoURL)
		post.VideoURL = clean
		post.EmbedURL = video.ToEmbedURL(clean)
		post.AspectRatio = defaultString(post.AspectRatio, "1/1")
		post.Image = defaultString(post.Thumbnail, videoPostPlaceholder)
		post.Images = nil
	case "image":
		post.Image = defaultString(post.Image, imagePostPlaceholder)
		post.Images = ensureImages(post.Images)
		post.VideoURL = ""
		post.EmbedURL = ""
		post.AspectRatio = ""
		post.Thumbnail = ""
	default:
		return models.Post{}, validationError("post type must be image or video")
	}
	return post, nil
}

func findPost(doc *models.Document, id int) *models.Post {
	for i := range doc.Posts {
		if doc.Posts[i].ID == id {
			return &doc.Posts[i]
		}
	}
	return nil
}
