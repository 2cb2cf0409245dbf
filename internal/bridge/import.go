// filepath: internal/bridge/import.go
package bridge

import (
	"encoding/json"
	"fmt"
	"regexp"

	"shopfront/internal/models"
	"shopfront/internal/shared"
)

var (
	lineCommentRe  = regexp.MustCompile(`(?m)^//.*$`)
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)

	configAssignRe     = regexp.MustCompile(`(?s)const\s+CONFIG\s*=\s*(\{.*?\});`)
	configAssignBareRe = regexp.MustCompile(`(?s)const\s+CONFIG\s*=\s*(\{.*?\})\s*(;|$)`)
	configStartRe      = regexp.MustCompile(`const\s+CONFIG\s*=\s*\{`)
)

// ExtractConfigJSON pulls the JSON object out of a config.js snippet. It
// strips comments, tries the assignment patterns with and without the
// trailing semicolon, and finally falls back to brace matching. The brace
// scan is string-aware, so braces inside string values (descriptions, data
// URIs) do not truncate the document.
func ExtractConfigJSON(snippet string) ([]byte, error) {
	clean := lineCommentRe.ReplaceAllString(snippet, "")
	clean = blockCommentRe.ReplaceAllString(clean, "")

	for _, re := range []*regexp.Regexp{configAssignRe, configAssignBareRe} {
		if m := re.FindStringSubmatch(clean); len(m) > 1 && json.Valid([]byte(m[1])) {
			return []byte(m[1]), nil
		}
	}

	loc := configStartRe.FindStringIndex(clean)
	if loc == nil {
		return nil, shared.ErrNoConfigObject
	}
	start := loc[1] - 1 // position of the opening brace

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(clean); i++ {
		c := clean[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return []byte(clean[start : i+1]), nil
			}
		}
	}
	return nil, shared.ErrNoConfigObject
}

// ImportSnippet extracts the CONFIG object from snippet and merges it over
// current, field by field at the top level. Fields absent from the snippet
// keep their current values; fields present replace wholesale, never
// deep-merge. Nothing is applied on any error.
func ImportSnippet(snippet string, current *models.Document) (*models.Document, error) {
	raw, err := ExtractConfigJSON(snippet)
	if err != nil {
		return nil, err
	}

	var imported map[string]json.RawMessage
	if err := json.Unmarshal(raw, &imported); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrNotAnObject, err)
	}

	base := current
	if base == nil {
		base = models.NewDocument()
	}
	currentRaw, err := json.Marshal(base)
	if err != nil {
		return nil, err
	}
	var merged map[string]json.RawMessage
	if err := json.Unmarshal(currentRaw, &merged); err != nil {
		return nil, err
	}
	for k, v := range imported {
		merged[k] = v
	}

	mergedRaw, err := json.Marshal(merged)
	if err != nil {
		return nil, err
	}
	var doc models.Document
	if err := json.Unmarshal(mergedRaw, &doc); err != nil {
		return nil, fmt.Errorf("invalid config document: %w", err)
	}
	models.EnsureDefaults(&doc)
	return &doc, nil
}
