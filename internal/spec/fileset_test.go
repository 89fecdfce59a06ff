package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileSetPreservesInsertionOrder(t *testing.T) {
	fs := NewFileSet()
	fs.Set("src/index.jsx", "a")
	fs.Set("src/App.jsx", "b")
	fs.Set("public/index.html", "c")

	assert.Equal(t, []string{"src/index.jsx", "src/App.jsx", "public/index.html"}, fs.Paths())
	assert.Equal(t, 3, fs.Len())
}

func TestFileSetReplaceKeepsPosition(t *testing.T) {
	fs := NewFileSet()
	fs.Set("a.js", "old")
	fs.Set("b.js", "x")
	fs.Set("a.js", "new")

	assert.Equal(t, []string{"a.js", "b.js"}, fs.Paths())
	content, ok := fs.Get("a.js")
	assert.True(t, ok)
	assert.Equal(t, "new", content)
}

func TestFileSetSuffixAndContainsFold(t *testing.T) {
	fs := NewFileSet()
	fs.Set("src/Pages/Index.JSX", "x")

	assert.True(t, fs.HasSuffixFold("index.jsx"))
	assert.False(t, fs.HasSuffixFold("index.html"))
	assert.True(t, fs.HasContainsFold("page"))
	assert.False(t, fs.HasContainsFold("style"))
}

func TestPackageJSONIsZero(t *testing.T) {
	assert.True(t, PackageJSON{}.IsZero())
	assert.True(t, PackageJSON{Description: "only description"}.IsZero())
	assert.False(t, PackageJSON{Name: "x"}.IsZero())
	assert.False(t, PackageJSON{Dependencies: map[string]string{"react": "*"}}.IsZero())
}
