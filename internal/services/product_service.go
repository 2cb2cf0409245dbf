// filepath: internal/services/product_service.go
package services

import (
	"shopfront/internal/models"
	"shopfront/internal/store"
	"shopfront/internal/video"
)

type productService struct {
	store *store.Store
}

// NewProductService creates the product catalog service.
func NewProductService(st *store.Store) ProductService {
	return &productService{store: st}
}

var _ ProductService = (*productService)(nil)

func (s *productService) List() ([]models.Product, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return []models.Product{}, nil
	}
	return doc.Products, nil
}

func (s *productService) Get(id int) (*models.Product, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if doc != nil {
		for i := range doc.Products {
			if doc.Products[i].ID == id {
				return &doc.Products[i], nil
			}
		}
	}
	return nil, ErrNotFound
}

func (s *productService) Create(payload models.ProductPayload) (*models.Product, error) {
	product, err := buildProduct(payload, models.Product{})
	if err != nil {
		return nil, err
	}

	doc, err := s.store.Mutate(func(doc *models.Document) error {
		product.ID = nextID(doc.Products, func(p models.Product) int { return p.ID })
		doc.Products = append(doc.Products, product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return findProduct(doc, product.ID), nil
}

func (s *productService) Update(id int, payload models.ProductPayload) (*models.Product, error) {
	doc, err := s.store.Mutate(func(doc *models.Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID != id {
				continue
			}
			product, err := buildProduct(payload, doc.Products[i])
			if err != nil {
				return err
			}
			doc.Products[i] = product
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return findProduct(doc, id), nil
}

func (s *productService) Delete(id int) error {
	_, err := s.store.Mutate(func(doc *models.Document) error {
		for i := range doc.Products {
			if doc.Products[i].ID == id {
				doc.Products = append(doc.Products[:i], doc.Products[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
	return err
}

// buildProduct merges the payload over base, validates the merged values and
// fills in the bilingual fallbacks and derived video URLs. Omitted payload
// fields keep whatever base already holds, so a partial update never resets a
// field the admin did not touch.
func buildProduct(p models.ProductPayload, base models.Product) (models.Product, error) {
	product := base
	apply(&product.Name, p.Name)
	apply(&product.NameKm, p.NameKm)
	apply(&product.Category, p.Category)
	apply(&product.Price, p.Price)
	apply(&product.Image, p.Image)
	apply(&product.Description, p.Description)
	apply(&product.DescriptionKm, p.DescriptionKm)
	if p.Images != nil {
		product.Images = p.Images
	}
	if p.Contact != nil {
		product.Contact = *p.Contact
	}
	if p.VideoURL != nil {
		product.VideoURL = video.CleanVideoURL(*p.VideoURL)
		product.EmbedURL = ""
		if product.VideoURL != "" {
			product.EmbedURL = video.ToEmbedURL(product.VideoURL)
		}
	}

	if product.Name == "" && product.NameKm == "" && product.Description == "" && product.DescriptionKm == "" {
		return models.Product{}, validationError("please provide at least a product name or description")
	}
	if imageLooksLikeContact(product.Image) {
		return models.Product{}, validationError("main image field contains contact information instead of an image URL")
	}

	name, nameKm := product.Name, product.NameKm
	product.Name = models.Fallback(name, nameKm, "Product")
	product.NameKm = models.Fallback(nameKm, name, "ផលិតផល")
	desc, descKm := product.Description, product.DescriptionKm
	product.Description = models.Fallback(desc, descKm, "No description")
	product.DescriptionKm = models.Fallback(descKm, desc, "គ្មានការពិពណ៌នា")
	product.Category = defaultString(product.Category, "general")
	product.Price = defaultString(product.Price, "$0")
	product.Image = defaultString(product.Image, placeholderImage)
	product.Images = ensureImages(product.Images)
	return product, nil
}

func findProduct(doc *models.Document, id int) *models.Product {
	for i := range doc.Products {
		if doc.Products[i].ID == id {
			return &doc.Products[i]
		}
	}
	return nil
}
