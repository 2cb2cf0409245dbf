// filepath: cmd/shopfront/main.go
package main

import (
	"shopfront/internal/cli"

	// Import docs for Swagger
	_ "shopfront/docs"
)

// @title Shopfront API
// @version 1.0.0
// @description Storefront rendering and admin back-office for a bilingual shop website config.
// @BasePath /
// @schemes http
// @securityDefinitions.basic BasicAuth
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a JWT token.

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
