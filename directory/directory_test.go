package directory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStates_ValidCodes(t *testing.T) {
	list := States()
	require.Len(t, list, 8)

	for _, s := range list {
		assert.True(t, IsValidStateCode(s.Code), s.Code)
		got, ok := GetStateByCode(s.Code)
		require.True(t, ok, s.Code)
		assert.Equal(t, s.Code, got.Code)
		assert.NotEmpty(t, got.Name)
		assert.NotEmpty(t, got.ShortName)
	}
}

func TestStates_InvalidCodes(t *testing.T) {
	invalid := []string{"", "xx", "QLD", "Qld", " qld", "qld ", "queensland", "family-law", "litigation"}
	for _, code := range invalid {
		assert.False(t, IsValidStateCode(code), "%q", code)
		_, ok := GetStateByCode(code)
		assert.False(t, ok, "%q", code)
	}
}

func TestPracticeAreas_ValidSlugs(t *testing.T) {
	list := PracticeAreas()
	require.Len(t, list, 14)

	seen := make(map[string]bool)
	for _, pa := range list {
		require.False(t, seen[pa.Slug], "duplicate slug %s", pa.Slug)
		seen[pa.Slug] = true

		assert.True(t, IsValidPracticeAreaSlug(pa.Slug), pa.Slug)
		got, ok := GetPracticeAreaBySlug(pa.Slug)
		require.True(t, ok, pa.Slug)
		assert.Equal(t, pa.Slug, got.Slug)
		assert.NotEmpty(t, got.Name)
		assert.True(t, IsValidCategory(got.Category), got.Category)
	}
}

func TestPracticeAreas_InvalidSlugs(t *testing.T) {
	invalid := []string{"", "nonexistent-slug", "Family-Law", "FAMILY-LAW", "family_law", "qld", "nsw"}
	for _, slug := range invalid {
		assert.False(t, IsValidPracticeAreaSlug(slug), "%q", slug)
		_, ok := GetPracticeAreaBySlug(slug)
		assert.False(t, ok, "%q", slug)
	}
}

func TestListsAreCopies(t *testing.T) {
	list := States()
	list[0].Name = "changed"
	assert.NotEqual(t, "changed", States()[0].Name)

	areas := PracticeAreas()
	areas[0].Slug = "changed"
	assert.True(t, IsValidPracticeAreaSlug(PracticeAreas()[0].Slug))
}

func TestStaticParams(t *testing.T) {
	params := StaticParams()
	require.Len(t, params, len(States())*len(PracticeAreas()))
	assert.Len(t, params, 112)

	seen := make(map[string]bool, len(params))
	for _, p := range params {
		key := p.State + "/" + p.PracticeArea
		assert.False(t, seen[key], "duplicate pair %s", key)
		seen[key] = true
		assert.True(t, IsValidStateCode(p.State))
		assert.True(t, IsValidPracticeAreaSlug(p.PracticeArea))
	}

	assert.Equal(t, "act", params[0].State)
	assert.Equal(t, "family-law", params[0].PracticeArea)
	assert.True(t, strings.HasPrefix(params[len(params)-1].State, "wa"))
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory("family"))
	assert.True(t, IsValidCategory("criminal"))
	assert.False(t, IsValidCategory(""))
	assert.False(t, IsValidCategory("family-law"))
}
