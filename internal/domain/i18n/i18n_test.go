package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextNormalizeBackfillsLanguages(t *testing.T) {
	text := Text{"en": "Hello"}.Normalize()
	assert.Equal(t, "Hello", text["en"])
	assert.Equal(t, "", text["ar"])

	empty := Text(nil).Normalize()
	assert.Equal(t, "", empty["en"])
	assert.Equal(t, "", empty["ar"])
}

func TestTextHasValue(t *testing.T) {
	assert.True(t, Text{"ar": "مرحبا"}.HasValue())
	assert.False(t, Text{"en": "", "ar": "  "}.HasValue())
	assert.False(t, Text(nil).HasValue())
}

func TestTextScanRoundTrip(t *testing.T) {
	original := Text{"en": "Hello", "ar": "مرحبا"}
	value, err := original.Value()
	require.NoError(t, err)

	var scanned Text
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)

	var fromString Text
	require.NoError(t, fromString.Scan(`{"en":"x","ar":""}`))
	assert.Equal(t, "x", fromString["en"])
}

func TestTagsNormalizeAndHasValue(t *testing.T) {
	tags := Tags{"en": {"go", "backend"}}.Normalize()
	assert.Equal(t, []string{"go", "backend"}, tags["en"])
	assert.Empty(t, tags["ar"])

	assert.True(t, Tags{"en": {"go"}}.HasValue())
	assert.False(t, Tags{"en": {}}.HasValue())
}
