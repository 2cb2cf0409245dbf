// filepath: internal/api/router.go
package api

import (
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"shopfront/internal/api/handlers"
	"shopfront/internal/services/auth"
)

// SetupRouter configures the main router and its sub-routers. The storefront
// endpoints are public; everything under /api/admin requires authentication.
func SetupRouter(h *handlers.Handlers, am *auth.Middleware) *mux.Router {
	r := mux.NewRouter()

	// Public Endpoints
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/api/info", h.GetInfo).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public Token Endpoint (Not protected by authMiddleware)
	r.HandleFunc("/api/token", h.GetToken).Methods("POST")

	// Public storefront
	r.HandleFunc("/api/storefront", h.GetStorefront).Methods("GET")
	r.HandleFunc("/api/storefront/detail/open", h.OpenDetail).Methods("POST")
	r.HandleFunc("/api/storefront/detail/close", h.CloseDetail).Methods("POST")

	// Authenticated admin routes
	adminRouter := r.PathPrefix("/api/admin").Subrouter()
	adminRouter.Use(am.AuthMiddleware) // This will check for JWT *or* Basic

	addContentRoutes(adminRouter, h)
	addCategoryRoutes(adminRouter, h)
	addSectionRoutes(adminRouter, h)
	addSettingsRoutes(adminRouter, h)
	addBridgeRoutes(adminRouter, h)

	return r
}

// addContentRoutes configures the card-type CRUD routes.
func addContentRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/products", h.GetProducts).Methods("GET")
	r.HandleFunc("/products", h.CreateProduct).Methods("POST")
	r.HandleFunc("/products/{id}", h.GetProduct).Methods("GET")
	r.HandleFunc("/products/{id}", h.UpdateProduct).Methods("PUT")
	r.HandleFunc("/products/{id}", h.DeleteProduct).Methods("DELETE")

	r.HandleFunc("/promotions", h.GetPromotions).Methods("GET")
	r.HandleFunc("/promotions", h.CreatePromotion).Methods("POST")
	r.HandleFunc("/promotions/{id}", h.GetPromotion).Methods("GET")
	r.HandleFunc("/promotions/{id}", h.UpdatePromotion).Methods("PUT")
	r.HandleFunc("/promotions/{id}", h.DeletePromotion).Methods("DELETE")

	r.HandleFunc("/events", h.GetEvents).Methods("GET")
	r.HandleFunc("/events", h.CreateEvent).Methods("POST")
	r.HandleFunc("/events/{id}", h.GetEvent).Methods("GET")
	r.HandleFunc("/events/{id}", h.UpdateEvent).Methods("PUT")
	r.HandleFunc("/events/{id}", h.DeleteEvent).Methods("DELETE")

	r.HandleFunc("/posts", h.GetPosts).Methods("GET")
	r.HandleFunc("/posts", h.CreatePost).Methods("POST")
	r.HandleFunc("/posts/{id}", h.GetPost).Methods("GET")
	r.HandleFunc("/posts/{id}", h.UpdatePost).Methods("PUT")
	r.HandleFunc("/posts/{id}/toggle", h.TogglePost).Methods("POST")
	r.HandleFunc("/posts/{id}", h.DeletePost).Methods("DELETE")

	r.HandleFunc("/banners", h.GetBanners).Methods("GET")
	r.HandleFunc("/banners", h.CreateBanner).Methods("POST")
	r.HandleFunc("/banners/{id}", h.GetBanner).Methods("GET")
	r.HandleFunc("/banners/{id}", h.UpdateBanner).Methods("PUT")
	r.HandleFunc("/banners/{id}", h.DeleteBanner).Methods("DELETE")
}

// addCategoryRoutes configures category management.
func addCategoryRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/categories", h.GetCategories).Methods("GET")
	r.HandleFunc("/categories", h.CreateCategory).Methods("POST")
	r.HandleFunc("/categories/{id}", h.UpdateCategory).Methods("PUT")
	r.HandleFunc("/categories/{id}", h.DeleteCategory).Methods("DELETE")
}

// addSectionRoutes configures custom sections, their items and the built-in
// section settings.
func addSectionRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/sections", h.GetSections).Methods("GET")
	r.HandleFunc("/sections", h.CreateSection).Methods("POST")
	r.HandleFunc("/sections/{id}", h.UpdateSection).Methods("PUT")
	r.HandleFunc("/sections/{id}/toggle", h.ToggleSection).Methods("POST")
	r.HandleFunc("/sections/{id}", h.DeleteSection).Methods("DELETE")

	r.HandleFunc("/sections/{id}/items", h.CreateSectionItem).Methods("POST")
	r.HandleFunc("/sections/{id}/items/{itemId}", h.UpdateSectionItem).Methods("PUT")
	r.HandleFunc("/sections/{id}/items/{itemId}/toggle", h.ToggleSectionItem).Methods("POST")
	r.HandleFunc("/sections/{id}/items/{itemId}", h.DeleteSectionItem).Methods("DELETE")

	r.HandleFunc("/section-settings/{key}", h.UpdateSectionSetting).Methods("PATCH")
}

// addSettingsRoutes configures the settings tab, languages and translations.
func addSettingsRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/settings", h.GetSettings).Methods("GET")
	r.HandleFunc("/settings", h.UpdateSettings).Methods("PUT")
	r.HandleFunc("/settings/language", h.SetDefaultLanguage).Methods("PUT")
	r.HandleFunc("/settings/flags", h.ResetLanguageFlags).Methods("DELETE")
	r.HandleFunc("/settings/flags/{lang}", h.SetLanguageFlag).Methods("PUT")
	r.HandleFunc("/settings/flags/{lang}", h.DeleteLanguageFlag).Methods("DELETE")
	r.HandleFunc("/settings/translations", h.UploadTranslations).Methods("PUT")
	r.HandleFunc("/settings/translations", h.ResetTranslations).Methods("DELETE")
}

// addBridgeRoutes configures import, export and backups.
func addBridgeRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/export", h.ExportConfig).Methods("GET")
	r.HandleFunc("/import", h.ImportConfig).Methods("POST")
	r.HandleFunc("/backup", h.DownloadBackup).Methods("GET")
	r.HandleFunc("/backup", h.RestoreBackup).Methods("POST")
}
