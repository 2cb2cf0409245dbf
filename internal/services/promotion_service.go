// filepath: internal/services/promotion_service.go
package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"shopfront/internal/models"
	"shopfront/internal/store"
	"shopfront/internal/video"
)

var (
	priceNumberRe = regexp.MustCompile(`[\d.]+`)
	priceStripRe  = regexp.MustCompile(`[\d.\s]`)

	promoLabels = map[string]bool{
		"": true, "SALE": true, "HOT": true, "NEW": true,
		"LIMITED": true, "BEST": true, "FLASH": true,
	}
)

// PromotionPrice derives the display price from the original price text and
// the discount percentage. The currency symbol is whatever remains of the
// original text once digits, dots and spaces are removed, defaulting to "$".
// Text without a number passes through unchanged.
func PromotionPrice(originalPrice, discount string) string {
	number := priceNumberRe.FindString(originalPrice)
	if number == "" {
		return originalPrice
	}
	orig, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return originalPrice
	}
	pct, _ := strconv.ParseFloat(discount, 64)
	final := orig - orig*pct/100

	symbol := strings.TrimSpace(priceStripRe.ReplaceAllString(originalPrice, ""))
	if symbol == "" {
		symbol = "$"
	}
	return symbol + strconv.FormatFloat(final, 'f', 2, 64)
}

type promotionService struct {
	store *store.Store
}

// NewPromotionService creates the promotion service.
func NewPromotionService(st *store.Store) PromotionService {
	return &promotionService{store: st}
}

var _ PromotionService = (*promotionService)(nil)

func (s *promotionService) List() ([]models.Promotion, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return []models.Promotion{}, nil
	}
	return doc.Promotions, nil
}

func (s *promotionService) Get(id int) (*models.Promotion, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	if doc != nil {
		for i := range doc.Promotions {
			if doc.Promotions[i].ID == id {
				return &doc.Promotions[i], nil
			}
		}
	}
	return nil, ErrNotFound
}

func (s *promotionService) Create(payload models.PromotionPayload) (*models.Promotion, error) {
	promo, err := buildPromotion(payload, models.Promotion{})
	if err != nil {
		return nil, err
	}

	doc, err := s.store.Mutate(func(doc *models.Document) error {
		promo.ID = nextID(doc.Promotions, func(p models.Promotion) int { return p.ID })
		doc.Promotions = append(doc.Promotions, promo)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return findPromotion(doc, promo.ID), nil
}

func (s *promotionService) Update(id int, payload models.PromotionPayload) (*models.Promotion, error) {
	doc, err := s.store.Mutate(func(doc *models.Document) error {
		for i := range doc.Promotions {
			if doc.Promotions[i].ID != id {
				continue
			}
			promo, err := buildPromotion(payload, doc.Promotions[i])
			if err != nil {
				return err
			}
			doc.Promotions[i] = promo
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return findPromotion(doc, id), nil
}

func (s *promotionService) Delete(id int) error {
	_, err := s.store.Mutate(func(doc *models.Document) error {
		for i := range doc.Promotions {
			if doc.Promotions[i].ID == id {
				doc.Promotions = append(doc.Promotions[:i], doc.Promotions[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
	return err
}

// buildPromotion merges the payload over base and recomputes the derived
// price from the merged original price and discount. Omitted payload fields
// keep whatever base already holds.
func buildPromotion(p models.PromotionPayload, base models.Promotion) (models.Promotion, error) {
	promo := base
	apply(&promo.Title, p.Title)
	apply(&promo.TitleKm, p.TitleKm)
	apply(&promo.Category, p.Category)
	apply(&promo.OriginalPrice, p.OriginalPrice)
	apply(&promo.Discount, p.Discount)
	apply(&promo.PromoLabel, p.PromoLabel)
	apply(&promo.Image, p.Image)
	apply(&promo.Description, p.Description)
	apply(&promo.DescriptionKm, p.DescriptionKm)
	if p.Images != nil {
		promo.Images = p.Images
	}
	if p.Contact != nil {
		promo.Contact = *p.Contact
	}
	if p.VideoURL != nil {
		promo.VideoURL = video.CleanVideoURL(*p.VideoURL)
		promo.EmbedURL = ""
		if promo.VideoURL != "" {
			promo.EmbedURL = video.ToEmbedURL(promo.VideoURL)
		}
	}

	if promo.Title == "" && promo.TitleKm == "" && promo.Description == "" && promo.DescriptionKm == "" {
		return models.Promotion{}, validationError("please provide at least a title or description")
	}
	if imageLooksLikeContact(promo.Image) {
		return models.Promotion{}, validationError("main image field contains contact information instead of an image URL")
	}
	label := strings.ToUpper(strings.TrimSpace(promo.PromoLabel))
	if !promoLabels[label] {
		return models.Promotion{}, fmt.Errorf("%w: unknown promo label %q", ErrValidation, promo.PromoLabel)
	}
	promo.PromoLabel = label

	title, titleKm := promo.Title, promo.TitleKm
	promo.Title = models.Fallback(title, titleKm, "Promotion")
	promo.TitleKm = models.Fallback(titleKm, title, "ការផ្តល់ជូន")
	desc, descKm := promo.Description, promo.DescriptionKm
	promo.Description = models.Fallback(desc, descKm, "No description")
	promo.DescriptionKm = models.Fallback(descKm, desc, "គ្មានការពិពណ៌នា")
	promo.Category = defaultString(promo.Category, "general")
	promo.OriginalPrice = defaultString(promo.OriginalPrice, "$0")
	promo.Discount = defaultString(promo.Discount, "0")
	promo.Price = defaultString(PromotionPrice(promo.OriginalPrice, promo.Discount), "$0")
	promo.Image = defaultString(promo.Image, placeholderImage)
	promo.Images = ensureImages(promo.Images)
	return promo, nil
}

func findPromotion(doc *models.Document, id int) *models.Promotion {
	for i := range doc.Promotions {
		if doc.Promotions[i].ID == id {
			return &doc.Promotions[i]
		}
	}
	return nil
}
