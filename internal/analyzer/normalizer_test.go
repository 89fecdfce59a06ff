package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSpecificationPlainJSON(t *testing.T) {
	raw := `{"framework": {"primary": "react", "css": "tailwind"}, "components": ["Header", "Footer"]}`

	s, err := ExtractSpecification(raw)
	require.NoError(t, err)
	assert.Equal(t, "react", s.Framework.Primary)
	assert.Equal(t, "tailwind", s.Framework.CSS)
	assert.Equal(t, []string{"Header", "Footer"}, s.Components)
}

func TestExtractSpecificationFencedJSON(t *testing.T) {
	raw := "Here is the analysis:\n```json\n{\"framework\": {\"primary\": \"vue\"}}\n```\nHope that helps!"

	s, err := ExtractSpecification(raw)
	require.NoError(t, err)
	assert.Equal(t, "vue", s.Framework.Primary)
}

func TestExtractSpecificationProseWrapped(t *testing.T) {
	raw := `The site looks like a portfolio. {"framework": {"primary": "next"}, "layout": {"type": "grid"}} That is my assessment.`

	s, err := ExtractSpecification(raw)
	require.NoError(t, err)
	assert.Equal(t, "next", s.Framework.Primary)
	assert.Equal(t, "grid", s.Layout.Type)
}

func TestExtractSpecificationNoJSON(t *testing.T) {
	_, err := ExtractSpecification("I could not analyze this website, sorry.")
	assert.ErrorIs(t, err, ErrNoJSON)
}

func TestExtractSpecificationMistypedFieldIsDropped(t *testing.T) {
	// framework arrives as a bare string instead of an object; the rest of
	// the response must survive.
	raw := `{"framework": "react", "layout": {"type": "flexbox"}}`

	s, err := ExtractSpecification(raw)
	require.NoError(t, err)
	assert.Empty(t, s.Framework.Primary)
	assert.Equal(t, "flexbox", s.Layout.Type)
}

func TestExtractSpecificationRejectsNonObjectJSON(t *testing.T) {
	_, err := ExtractSpecification(`["just", "an", "array"]`)
	assert.ErrorIs(t, err, ErrNoJSON)
}
