// Package i18n defines the multi-language field types stored as JSON columns.
// Every translatable field is a map from language code to its value; absent
// languages are filled with empty values so rendering code never sees nil.
package i18n

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Languages lists the language codes every multilang field carries.
var Languages = []string{"en", "ar"}

// Text maps a language code to a translated string.
type Text map[string]string

// Tags maps a language code to a list of tag strings.
type Tags map[string][]string

// Normalize fills in missing languages with empty strings and trims values.
func (t Text) Normalize() Text {
	out := Text{}
	for _, lang := range Languages {
		out[lang] = strings.TrimSpace(t[lang])
	}
	return out
}

// HasValue reports whether at least one language has a non-empty value.
func (t Text) HasValue() bool {
	for _, v := range t {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer, serializing the map as JSON.
func (t Text) Value() (driver.Value, error) {
	if t == nil {
		t = Text{}
	}
	return json.Marshal(t.Normalize())
}

// Scan implements sql.Scanner.
func (t *Text) Scan(src interface{}) error {
	if src == nil {
		*t = Text{}.Normalize()
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("i18n: cannot scan %T into Text", src)
	}
	var m map[string]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}
	*t = Text(m).Normalize()
	return nil
}

// Normalize fills in missing languages with empty lists.
func (t Tags) Normalize() Tags {
	out := Tags{}
	for _, lang := range Languages {
		if t[lang] == nil {
			out[lang] = []string{}
		} else {
			out[lang] = t[lang]
		}
	}
	return out
}

// HasValue reports whether at least one language has at least one tag.
func (t Tags) HasValue() bool {
	for _, v := range t {
		if len(v) > 0 {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer.
func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		t = Tags{}
	}
	return json.Marshal(t.Normalize())
}

// Scan implements sql.Scanner.
func (t *Tags) Scan(src interface{}) error {
	if src == nil {
		*t = Tags{}.Normalize()
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("i18n: cannot scan %T into Tags", src)
	}
	var m map[string][]string
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}
	*t = Tags(m).Normalize()
	return nil
}
