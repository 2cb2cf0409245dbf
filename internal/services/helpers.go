// filepath: internal/services/helpers.go
package services

import (
	"fmt"
	"strings"
)

// placeholderImage stands in for items saved without artwork.
const placeholderImage = "https://via.placeholder.com/300x200?text=No+Image"

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// nextID assigns monotonically increasing IDs: one past the current maximum.
// Deleting the latest item can release its ID, gaps elsewhere are never
// reused.
func nextID[T any](items []T, id func(T) int) int {
	max := 0
	for _, item := range items {
		if v := id(item); v > max {
			max = v
		}
	}
	return max + 1
}

// imageLooksLikeContact flags image fields that hold a pasted contact link or
// phone number instead of an image URL, a common admin panel mix-up.
func imageLooksLikeContact(image string) bool {
	if image == "" {
		return false
	}
	if strings.Contains(image, "t.me/") ||
		strings.Contains(image, "facebook.com/") ||
		strings.Contains(image, "m.me/") {
		return true
	}
	return strings.Contains(image, "+") && len(image) < 50
}

// apply copies a payload field over the entity field when it was provided.
// Nil means the field was omitted and the stored value stays.
func apply[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func ensureImages(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}
