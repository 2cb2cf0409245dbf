// filepath: internal/bridge/export.go
// Package bridge moves the config document in and out of the deployable
// config.js format: a CONFIG constant assignment plus a bootstrap block that
// seeds menu items and language on first load.
package bridge

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"shopfront/internal/models"
)

// ExportDocument renders the document as a complete config.js file. The
// output of ExportDocument is always importable by ImportSnippet, and a
// round trip yields an equivalent document.
func ExportDocument(doc *models.Document, now time.Time) (string, error) {
	cp, err := doc.Clone()
	if err != nil {
		return "", err
	}
	models.EnsureDefaults(cp)

	raw, err := json.Marshal(cp)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	lines := []string{
		"// Configuration file - Production Ready",
		"// All data is managed via Admin Panel and stored in localStorage",
		"// Last updated: " + now.Format("1/2/2006, 3:04:05 PM"),
		"const CONFIG = " + string(raw) + ";",
		"",
		"// Initialize menu items and language if not present in localStorage",
		"(function initializeMenuConfig() {",
		"  const savedConfig = localStorage.getItem('websiteConfig');",
		"  if (savedConfig) {",
		"    try {",
		"      const parsed = JSON.parse(savedConfig);",
		"      if (!parsed.menuItems || !Array.isArray(parsed.menuItems)) {",
		"        parsed.menuItems = CONFIG.menuItems;",
		"      }",
		"      if (!parsed.language) {",
		"        parsed.language = \"en\";",
		"      }",
		"      localStorage.setItem('websiteConfig', JSON.stringify(parsed));",
		"    } catch (error) {",
		"      console.error('Error initializing menu config:', error);",
		"    }",
		"  }",
		"})();",
	}
	return strings.Join(lines, "\n"), nil
}
