// filepath: internal/api/handlers/main.go
package handlers

import (
	"shopfront/internal/config"
	"shopfront/internal/services"
	"shopfront/internal/services/auth"
	"shopfront/internal/storefront"
)

// Handlers provides a struct to hold shared dependencies for API handlers.
type Handlers struct {
	// --- Depend on interfaces, not concrete structs ---
	Info      services.InfoService
	Product   services.ProductService
	Promotion services.PromotionService
	Event     services.EventService
	Post      services.PostService
	Banner    services.BannerService
	Category  services.CategoryService
	Section   services.SectionService
	Settings  services.SettingsService
	Bridge    services.BridgeService

	Renderer *storefront.Renderer
	Token    auth.TokenService
	Creds    auth.Credentials
	Cfg      *config.Config
}
