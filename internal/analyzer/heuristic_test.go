package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeuristicSpecificationBucketsLines(t *testing.T) {
	response := strings.Join([]string{
		"The page opens with a large banner",
		"short",
		"Most of the body talks about the product features",
		"A small legal notice closes the page",
	}, "\n")

	s := HeuristicSpecification(response, &FrameworkHints{})

	text := s.ContentStructure.TextContent
	assert.Equal(t, "The page opens with a large banner", text["header"])
	assert.Equal(t, "Most of the body talks about the product features", text["main"])
	assert.Equal(t, "A small legal notice closes the page", text["footer"])
}

func TestHeuristicSpecificationDefaultsOnEmptyResponse(t *testing.T) {
	s := HeuristicSpecification("", &FrameworkHints{})

	text := s.ContentStructure.TextContent
	assert.Equal(t, "Welcome to Our Site", text["header"])
	assert.Equal(t, "About Us Content", text["main"])
	assert.Equal(t, "Copyright 2025", text["footer"])
	assert.Equal(t, "vanilla", s.Framework.Primary)
	assert.Empty(t, s.Framework.BuildTools)
}

func TestHeuristicSpecificationHintedFrameworkGetsVite(t *testing.T) {
	s := HeuristicSpecification("anything", &FrameworkHints{Frameworks: []string{"react"}})
	assert.Equal(t, "react", s.Framework.Primary)
	assert.Equal(t, []string{"vite"}, s.Framework.BuildTools)
}

func TestHeuristicSpecificationTruncatesLongLines(t *testing.T) {
	long := strings.Repeat("©", 150)
	s := HeuristicSpecification(long, &FrameworkHints{})

	header := s.ContentStructure.TextContent["header"]
	assert.Equal(t, 100, len([]rune(header)))
}

func TestHeuristicSpecificationIsCompleteWithoutCompleter(t *testing.T) {
	s := HeuristicSpecification("", &FrameworkHints{})

	assert.NotEmpty(t, s.Components)
	assert.NotEmpty(t, s.CloningRequirements.ComponentFiles)
	assert.Contains(t, s.CloningRequirements.Pages, "index.html")
	assert.Contains(t, s.CloningRequirements.Styles, "style.css")
	assert.False(t, s.CloningRequirements.PackageJSON.IsZero())
	assert.NotEmpty(t, s.Colors.Primary)
	assert.NotEmpty(t, s.Typography.PrimaryFont)
}
