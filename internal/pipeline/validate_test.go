package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"site_clone_server/internal/spec"
)

func validProject() *spec.GeneratedProject {
	files := spec.NewFileSet()
	files.Set("index.html", "<html></html>")
	files.Set("style.css", "body {}")
	return &spec.GeneratedProject{
		Framework:        "vanilla",
		ProjectStructure: files,
		PackageJSON: spec.PackageJSON{
			Name:         "clone",
			Version:      "1.0.0",
			Dependencies: map[string]string{"serve": "^14.2.0"},
		},
		ConfigFiles: map[string]any{
			"package.json": spec.PackageJSON{},
			".gitignore":   "node_modules/",
			"README.md":    "# Clone",
		},
	}
}

func TestValidateAcceptsCompleteProject(t *testing.T) {
	assert.NoError(t, Validate(validProject()))
}

func TestValidateRejectsMissingRequiredFiles(t *testing.T) {
	p := validProject()
	delete(p.ConfigFiles, ".gitignore")
	delete(p.ConfigFiles, "README.md")

	err := Validate(p)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Issues, 2)
}

func TestValidateRejectsEmptyDependencies(t *testing.T) {
	p := validProject()
	p.PackageJSON.Dependencies = nil

	err := Validate(p)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Issues, "package.json has no dependencies")
}

func TestValidateRequiresEntryPage(t *testing.T) {
	p := validProject()
	files := spec.NewFileSet()
	files.Set("components/Header.jsx", "x")
	p.ProjectStructure = files

	err := Validate(p)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Issues, "no page or index file found in project structure")
}

func TestValidateAcceptsPageFileInsteadOfIndex(t *testing.T) {
	p := validProject()
	files := spec.NewFileSet()
	files.Set("pages/Home.jsx", "x")
	p.ProjectStructure = files

	assert.NoError(t, Validate(p))
}

func TestValidateFindsRequiredFilesInFileSet(t *testing.T) {
	p := validProject()
	p.ConfigFiles = map[string]any{}
	p.ProjectStructure.Set("package.json", "{}")
	p.ProjectStructure.Set(".gitignore", "node_modules/")
	p.ProjectStructure.Set("README.md", "# hi")

	assert.NoError(t, Validate(p))
}

func TestValidateNilProjectNeverPanics(t *testing.T) {
	err := Validate(nil)
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}
