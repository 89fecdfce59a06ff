package analyzer

import (
	"sort"

	"site_clone_server/internal/spec"
)

// Complete fills every required specification field with a sensible default
// so downstream consumers never see a missing value. Fields already present
// are left untouched, with one exception: the framework and CSS framework
// are overwritten from hints when their value is absent or "unknown".
//
// Ordering matters here: text_content is finalized before the three
// description maps are synthesized, because they quote it.
func Complete(s spec.Specification, hints *FrameworkHints) spec.Specification {
	if s.Framework.Primary == "" || s.Framework.Primary == "unknown" {
		s.Framework.Primary = hints.PrimaryFramework("vanilla")
	}
	if s.Framework.CSS == "" || s.Framework.CSS == "unknown" {
		s.Framework.CSS = hints.PrimaryCSS("vanilla")
	}

	if s.CloningRequirements.PackageJSON.IsZero() {
		s.CloningRequirements.PackageJSON = minimalPackageJSON()
	}

	if s.ContentStructure.TextContent == nil {
		s.ContentStructure.TextContent = map[string]string{}
	}
	textDefaults := map[string]string{
		"header": "Default header text",
		"main":   "Default main content",
		"footer": "Default footer text",
	}
	for key, def := range textDefaults {
		if s.ContentStructure.TextContent[key] == "" {
			s.ContentStructure.TextContent[key] = def
		}
	}

	// Description maps quote the now-final text_content. Synthesized file
	// descriptions must name files the generator will actually emit, so the
	// matching file lists pick up any described paths they lack.
	if len(s.CloningRequirements.ComponentsDescription) == 0 {
		s.CloningRequirements.ComponentsDescription = describeComponents(s.ContentStructure.TextContent)
	}
	if len(s.CloningRequirements.PagesDescription) == 0 {
		s.CloningRequirements.PagesDescription = describePages(s.ContentStructure.TextContent)
	}
	if len(s.CloningRequirements.StylesDescription) == 0 {
		s.CloningRequirements.StylesDescription = map[string]string{
			"style.css": "Main stylesheet with layout, typography, and component styles, including text styling",
		}
	}
	s.CloningRequirements.ComponentFiles = unionPaths(
		s.CloningRequirements.ComponentFiles, orderedKeys(s.CloningRequirements.ComponentsDescription))
	s.CloningRequirements.Pages = unionPaths(
		s.CloningRequirements.Pages, orderedKeys(s.CloningRequirements.PagesDescription))
	s.CloningRequirements.Styles = unionPaths(
		s.CloningRequirements.Styles, orderedKeys(s.CloningRequirements.StylesDescription))

	if s.InteractiveElements == nil {
		s.InteractiveElements = map[string][]string{}
	}
	if s.CloningRequirements.ConfigFiles == nil {
		s.CloningRequirements.ConfigFiles = map[string]any{}
	}
	if s.Components == nil {
		s.Components = []string{}
	}
	return s
}

func orderedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// unionPaths appends the entries of extra that existing lacks, keeping
// existing order stable.
func unionPaths(existing, extra []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[p] = true
	}
	for _, p := range extra {
		if !seen[p] {
			existing = append(existing, p)
			seen[p] = true
		}
	}
	return existing
}
