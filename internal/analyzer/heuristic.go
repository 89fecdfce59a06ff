package analyzer

import (
	"strings"

	"site_clone_server/internal/spec"
)

// HeuristicSpecification builds a fully-populated specification from model
// output that contained no parseable JSON. Lines from the response are
// bucketed positionally into header, main and footer text; everything else
// falls back to the built-in defaults. This path has no failure mode of its
// own.
func HeuristicSpecification(responseText string, hints *FrameworkHints) spec.Specification {
	framework := hints.PrimaryFramework("vanilla")
	cssFramework := hints.PrimaryCSS("vanilla")

	textContent := map[string]string{
		"header": "Welcome to Our Site",
		"main":   "About Us Content",
		"footer": "Copyright 2025",
	}
	lines := strings.Split(responseText, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= 5 {
			continue
		}
		switch {
		case float64(i) < float64(len(lines))*0.3:
			textContent["header"] = truncate(line, 100)
		case float64(i) < float64(len(lines))*0.7:
			textContent["main"] = truncate(line, 100)
		default:
			textContent["footer"] = truncate(line, 100)
		}
	}

	buildTools := []string{}
	if framework != "vanilla" {
		buildTools = []string{"vite"}
	}

	return spec.Specification{
		Framework: spec.Framework{
			Primary:           framework,
			CSS:               cssFramework,
			BuildTools:        buildTools,
			BackendIndicators: []string{},
		},
		Layout:              defaultLayout(),
		Colors:              defaultColors(),
		Typography:          defaultTypography(),
		Components:          []string{"header", "main", "footer"},
		InteractiveElements: defaultInteractiveElements(),
		ContentStructure: spec.ContentStructure{
			Sections:      defaultContentSections(),
			TextHierarchy: []string{"h1", "h2", "p"},
			TextContent:   textContent,
			Images:        []string{"hero-bg", "content-images"},
			Icons:         []string{"fontawesome"},
		},
		CloningRequirements: standardCloningRequirements(framework, cssFramework, textContent),
	}
}

// standardCloningRequirements is the fixed header/main/footer file layout
// used by both non-model analysis paths.
func standardCloningRequirements(framework, cssFramework string, textContent map[string]string) spec.CloningRequirements {
	return spec.CloningRequirements{
		NpmPackages:           packagesForFramework(framework, cssFramework),
		ComponentFiles:        []string{"components/Header.html", "components/Main.html", "components/Footer.html"},
		ComponentsDescription: describeComponents(textContent),
		Pages:                 []string{"index.html"},
		PagesDescription:      describePages(textContent),
		Styles:                []string{"style.css"},
		StylesDescription: map[string]string{
			"style.css": "Global CSS with reset, typography, layout, and component-specific styles",
		},
		ConfigFiles:     map[string]any{},
		Assets:          []string{"images/", "icons/", "fonts/"},
		PerformanceTips: []string{"lazy-loading", "image-optimization"},
		PackageJSON:     minimalPackageJSON(),
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		return string(runes[:n])
	}
	return s
}
