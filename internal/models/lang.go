// filepath: internal/models/lang.go
package models

import (
	"encoding/json"
	"fmt"
)

// Translation is one entry of an uploaded language file. The file format
// allows either a plain string (same text for every language) or an object
// with "en" and "km" keys. Plain entries marshal back to a plain string so
// the uploaded file survives a round trip unchanged.
type Translation struct {
	En    string
	Km    string
	Plain bool
}

type translationObject struct {
	En string `json:"en"`
	Km string `json:"km"`
}

// UnmarshalJSON accepts a string or an {en, km} object. Anything else is an
// error, which rejects the whole language file.
func (t *Translation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.En = s
		t.Km = s
		t.Plain = true
		return nil
	}

	var obj translationObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("translation entry must be a string or an object with en/km keys: %w", err)
	}
	t.En = obj.En
	t.Km = obj.Km
	t.Plain = false
	return nil
}

// MarshalJSON writes plain entries back as strings and split entries as
// objects.
func (t Translation) MarshalJSON() ([]byte, error) {
	if t.Plain {
		return json.Marshal(t.En)
	}
	return json.Marshal(translationObject{En: t.En, Km: t.Km})
}

// Resolve returns the text for a language code, falling back to the other
// language when the requested one is empty.
func (t Translation) Resolve(lang string) string {
	if lang == "km" {
		if t.Km != "" {
			return t.Km
		}
		return t.En
	}
	if t.En != "" {
		return t.En
	}
	return t.Km
}
