// filepath: internal/bridge/bridge_test.go
package bridge

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/models"
	"shopfront/internal/shared"
)

func TestExportImportRoundTrip(t *testing.T) {
	doc := models.NewDocument()
	doc.Products = []models.Product{{ID: 1, Name: "Chair", Price: "$10", Category: "all"}}
	doc.Promotions = []models.Promotion{{ID: 3, Title: "Sale", OriginalPrice: "$200", Discount: "25", Price: "$150.00"}}
	doc.Categories = append(doc.Categories, models.Category{ID: "toys", Name: "Toys", NameKm: "ល្បែងក្មេង"})

	snippet, err := ExportDocument(doc, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(snippet, "// Configuration file - Production Ready"))
	assert.Contains(t, snippet, "const CONFIG = {")
	assert.Contains(t, snippet, "initializeMenuConfig")

	imported, err := ImportSnippet(snippet, nil)
	require.NoError(t, err)

	models.EnsureDefaults(doc)
	want, _ := json.Marshal(doc)
	got, _ := json.Marshal(imported)
	assert.JSONEq(t, string(want), string(got))
}

func TestExtractConfigJSONBraceInString(t *testing.T) {
	// The lazy regex would stop at the "};" inside the description; the
	// string-aware brace scan must not.
	snippet := `const CONFIG = {"products":[{"id":1,"description":"curly }; brace"}],"logo":""};`

	raw, err := ExtractConfigJSON(snippet)
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Contains(t, m, "products")
	assert.Contains(t, m, "logo")
}

func TestExtractConfigJSONStripsComments(t *testing.T) {
	snippet := strings.Join([]string{
		"// header comment",
		"/* block",
		"   comment */",
		`const CONFIG = {"logo":"x"};`,
		"// trailer",
	}, "\n")

	raw, err := ExtractConfigJSON(snippet)
	require.NoError(t, err)
	assert.JSONEq(t, `{"logo":"x"}`, string(raw))
}

func TestExtractConfigJSONNoSemicolon(t *testing.T) {
	raw, err := ExtractConfigJSON(`const CONFIG = {"logo":"x"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"logo":"x"}`, string(raw))
}

func TestExtractConfigJSONMissingObject(t *testing.T) {
	_, err := ExtractConfigJSON(`var settings = {"logo":"x"};`)
	assert.ErrorIs(t, err, shared.ErrNoConfigObject)
}

func TestImportSnippetBadJSON(t *testing.T) {
	_, err := ImportSnippet(`const CONFIG = {"logo": nope};`, nil)
	assert.Error(t, err)
}

func TestImportSnippetShallowMerge(t *testing.T) {
	current := models.NewDocument()
	current.Logo = "old-logo"
	current.Products = []models.Product{{ID: 1, Name: "Chair"}}
	current.Contact.Phone = "012345678"
	current.Contact.Email = "shop@example.com"

	// Snippet replaces contact wholesale (losing email) and products, but
	// does not mention logo.
	snippet := `const CONFIG = {"products":[{"id":7,"name":"Table"}],"contact":{"phone":"099999999"}};`

	merged, err := ImportSnippet(snippet, current)
	require.NoError(t, err)

	assert.Equal(t, "old-logo", merged.Logo)
	require.Len(t, merged.Products, 1)
	assert.Equal(t, 7, merged.Products[0].ID)

	// Shallow: the contact object was replaced, not deep-merged.
	assert.Equal(t, "099999999", merged.Contact.Phone)
	assert.Equal(t, "", merged.Contact.Email)

	// The failed fields of current are untouched.
	assert.Equal(t, "shop@example.com", current.Contact.Email)
}

func TestBackupRoundTrip(t *testing.T) {
	doc := models.NewDocument()
	doc.Logo = "logo.png"

	payload := NewBackup(doc, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "1.0", payload.Version)
	assert.Equal(t, "2026-08-30T12:00:00Z", payload.Timestamp)

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	restored, err := ParseBackup(raw)
	require.NoError(t, err)
	assert.Equal(t, "logo.png", restored.Logo)
}

func TestParseBackupRejectsMissingConfig(t *testing.T) {
	_, err := ParseBackup([]byte(`{"timestamp":"2026-08-30T12:00:00Z","version":"1.0"}`))
	assert.Error(t, err)
}

func TestParseTranslations(t *testing.T) {
	raw := []byte(`{"welcome":{"en":"Welcome","km":"សូមស្វាគមន៍"},"brand":"ACME"}`)

	data, err := ParseTranslations(raw)
	require.NoError(t, err)
	assert.Equal(t, "Welcome", data["welcome"].En)
	assert.Equal(t, "ACME", data["brand"].Km)
}

func TestParseTranslationsRejectsWholeFile(t *testing.T) {
	// One malformed entry rejects everything.
	_, err := ParseTranslations([]byte(`{"welcome":"hi","count":42}`))
	assert.Error(t, err)

	// Top-level must be an object.
	_, err = ParseTranslations([]byte(`["hi"]`))
	assert.Error(t, err)
}
