package pipeline

import (
	"fmt"
	"strings"

	"site_clone_server/internal/spec"
)

// ValidationError reports why a generated project was rejected. It is a
// client-visible failure, distinct from internal pipeline errors.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("generated code validation failed: %s", strings.Join(e.Issues, "; "))
}

var requiredFiles = []string{"package.json", ".gitignore", "README.md"}

// Validate checks the structural floor every generated project must meet
// before it is reported as a successful clone. It inspects the project only
// and never panics on missing pieces.
func Validate(project *spec.GeneratedProject) error {
	var issues []string
	if project == nil {
		return &ValidationError{Issues: []string{"no project was generated"}}
	}

	for _, name := range requiredFiles {
		if !hasFile(project, name) {
			issues = append(issues, fmt.Sprintf("missing required file: %s", name))
		}
	}

	if len(project.PackageJSON.Dependencies) == 0 {
		issues = append(issues, "package.json has no dependencies")
	}

	if !hasEntryPage(project) {
		issues = append(issues, "no page or index file found in project structure")
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

// hasFile looks across both the rendered file tree and the config file set.
func hasFile(project *spec.GeneratedProject, name string) bool {
	if project.ProjectStructure != nil && project.ProjectStructure.HasSuffixFold(name) {
		return true
	}
	for path := range project.ConfigFiles {
		if strings.EqualFold(path, name) || strings.HasSuffix(strings.ToLower(path), "/"+strings.ToLower(name)) {
			return true
		}
	}
	return false
}

func hasEntryPage(project *spec.GeneratedProject) bool {
	if project.ProjectStructure == nil {
		return false
	}
	return project.ProjectStructure.HasContainsFold("page") ||
		project.ProjectStructure.HasContainsFold("index")
}
