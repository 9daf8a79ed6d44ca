package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ActionEntry is one keyword→config pair of an action map.
type ActionEntry struct {
	Keyword string
	Config  ActionConfig
}

// ActionMap is a JSON object of keyword→ActionConfig pairs decoded into an
// explicitly ordered sequence. Keyword matching is substring-based and
// overlapping keywords can both match; preserving document order makes the
// first-match-wins tie-break deterministic.
type ActionMap []ActionEntry

// Get returns the config for an exact keyword.
func (m ActionMap) Get(keyword string) (ActionConfig, bool) {
	for _, e := range m {
		if e.Keyword == keyword {
			return e.Config, true
		}
	}
	return ActionConfig{}, false
}

// UnmarshalJSON walks the object tokens so entry order follows the document.
func (m *ActionMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("action map: expected object, got %v", tok)
	}

	var entries ActionMap
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("action map: expected string key, got %v", keyTok)
		}
		var cfg ActionConfig
		if err := dec.Decode(&cfg); err != nil {
			return fmt.Errorf("action map entry %q: %w", key, err)
		}
		entries = append(entries, ActionEntry{Keyword: key, Config: cfg})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = entries
	return nil
}

// MarshalJSON re-encodes the map as an object in entry order, so an exported
// document round-trips byte-structure-compatible with the imported one.
func (m ActionMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Keyword)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Config)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
