package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"site_clone_server/internal/spec"
)

// findProjectDir locates the single timestamped project directory written
// under outputDir.
func findProjectDir(t *testing.T, outputDir string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(outputDir, "*", "project"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	return matches[0]
}

func TestGenerateVanillaSkeletonFromEmptySpec(t *testing.T) {
	outputDir := t.TempDir()
	g := New(nil, outputDir)

	project, err := g.Generate(context.Background(), spec.Specification{}, "vanilla")
	require.NoError(t, err)

	assert.Equal(t, "vanilla", project.Framework)
	assert.True(t, project.ProjectStructure.Has("index.html"))
	assert.True(t, project.ProjectStructure.Has("main.js"))
	assert.Contains(t, project.ConfigFiles, ".gitignore")
	assert.Contains(t, project.ConfigFiles, "README.md")
	assert.Contains(t, project.ConfigFiles, "package.json")
	assert.NotEmpty(t, project.PackageJSON.Dependencies)

	projectDir := findProjectDir(t, outputDir)
	for _, name := range []string{"index.html", "main.js", "package.json", ".gitignore", "README.md"} {
		_, err := os.Stat(filepath.Join(projectDir, name))
		assert.NoError(t, err, "expected %s on disk", name)
	}
}

func TestGenerateHonorsNuxtOverride(t *testing.T) {
	g := New(nil, t.TempDir())

	// The requested framework carries through even when the specification
	// declared a different one.
	s := spec.Specification{}
	s.Framework.Primary = "react"

	project, err := g.Generate(context.Background(), s, "nuxt")
	require.NoError(t, err)

	assert.Equal(t, "nuxt", project.Framework)
	assert.True(t, project.ProjectStructure.Has("app.vue"))
	assert.True(t, project.ProjectStructure.Has("pages/index.vue"))
	assert.Contains(t, project.PackageJSON.Dependencies, "nuxt")
}

func TestGenerateReactEntryPointFallbacks(t *testing.T) {
	s := spec.Specification{}
	s.CloningRequirements.Pages = []string{"pages/index.jsx"}
	s.CloningRequirements.PagesDescription = map[string]string{"pages/index.jsx": "Landing page"}

	g := New(nil, t.TempDir())
	project, err := g.Generate(context.Background(), s, "react")
	require.NoError(t, err)

	files := project.ProjectStructure
	// index.jsx exists, so the src/index.jsx placeholder must not appear.
	assert.True(t, files.Has("pages/index.jsx"))
	assert.False(t, files.Has("src/index.jsx"))
	// The other entry points were still missing and get placeholders.
	assert.True(t, files.Has("src/App.jsx"))
	assert.True(t, files.Has("public/index.html"))
}

func TestGenerateStubEmbedsDescription(t *testing.T) {
	s := spec.Specification{}
	s.CloningRequirements.ComponentFiles = []string{"components/Header.jsx"}
	s.CloningRequirements.ComponentsDescription = map[string]string{
		"components/Header.jsx": "Site header with logo and navigation",
	}

	g := New(nil, t.TempDir())
	project, err := g.Generate(context.Background(), s, "react")
	require.NoError(t, err)

	content, ok := project.ProjectStructure.Get("components/Header.jsx")
	require.True(t, ok)
	assert.Contains(t, content, "Site header with logo and navigation")
	assert.Contains(t, content, "export default function Header")
}

func TestGenerateKeepsDeclaredPackageJSON(t *testing.T) {
	s := spec.Specification{}
	s.CloningRequirements.PackageJSON = spec.PackageJSON{
		Name:         "my-clone",
		Version:      "2.0.0",
		Dependencies: map[string]string{"react": "^18.2.0"},
	}

	g := New(nil, t.TempDir())
	project, err := g.Generate(context.Background(), s, "react")
	require.NoError(t, err)

	assert.Equal(t, "my-clone", project.PackageJSON.Name)
	assert.Equal(t, "^18.2.0", project.PackageJSON.Dependencies["react"])
}

func TestGenerateCopiesConfigFilesVerbatim(t *testing.T) {
	s := spec.Specification{}
	s.CloningRequirements.ConfigFiles = map[string]any{
		"vite.config.js": "export default {}",
		".gitignore":     "node_modules/",
	}

	outputDir := t.TempDir()
	g := New(nil, outputDir)
	project, err := g.Generate(context.Background(), s, "react")
	require.NoError(t, err)

	// The declared .gitignore wins over the synthesized one.
	assert.Equal(t, "node_modules/", project.ConfigFiles[".gitignore"])

	projectDir := findProjectDir(t, outputDir)
	data, err := os.ReadFile(filepath.Join(projectDir, "vite.config.js"))
	require.NoError(t, err)
	assert.Equal(t, "export default {}", string(data))
}

func TestGenerateWritesNestedPaths(t *testing.T) {
	s := spec.Specification{}
	s.CloningRequirements.Styles = []string{"src/styles/theme.css"}
	s.CloningRequirements.StylesDescription = map[string]string{
		"src/styles/theme.css": "Theme variables",
	}

	outputDir := t.TempDir()
	g := New(nil, outputDir)
	_, err := g.Generate(context.Background(), s, "vanilla")
	require.NoError(t, err)

	projectDir := findProjectDir(t, outputDir)
	data, err := os.ReadFile(filepath.Join(projectDir, "src/styles/theme.css"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Theme variables")
}

func TestResolveFramework(t *testing.T) {
	tests := []struct {
		override string
		declared string
		want     string
	}{
		{"react", "", "react"},
		{"nextjs", "", "next"},
		{"VueJS", "", "vue"},
		{"nuxt", "", "nuxt"},
		{"NuxtJS", "react", "nuxt"},
		{"", "angular", "angular"},
		{"", "unknown", "react"},
		{"", "", "react"},
		{"gatsby", "", "gatsby"},
		{"vanilla", "svelte", "vanilla"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, resolveFramework(tt.override, tt.declared),
			"override=%q declared=%q", tt.override, tt.declared)
	}
}

func TestMergeAssetsDeduplicates(t *testing.T) {
	out := mergeAssets([]string{"logo.png", "banner.jpg", "logo.png"})
	assert.Equal(t, "logo.png", out[0])
	assert.Equal(t, "banner.jpg", out[1])
	seen := map[string]int{}
	for _, a := range out {
		seen[a]++
	}
	for a, n := range seen {
		assert.Equal(t, 1, n, "asset %s duplicated", a)
	}
}
