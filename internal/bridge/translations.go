// filepath: internal/bridge/translations.go
package bridge

import (
	"encoding/json"
	"fmt"

	"shopfront/internal/models"
)

// ParseTranslations decodes an uploaded language file: a JSON object whose
// values are either plain strings or {en, km} objects. Any entry of another
// shape rejects the whole file, so a bad upload never half-applies.
func ParseTranslations(raw []byte) (map[string]models.Translation, error) {
	var probe interface{}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("invalid language file: %w", err)
	}
	if _, ok := probe.(map[string]interface{}); !ok {
		return nil, fmt.Errorf("language file must be a JSON object")
	}

	var data map[string]models.Translation
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("invalid language file: %w", err)
	}
	return data, nil
}
