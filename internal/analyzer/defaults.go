package analyzer

import "site_clone_server/internal/spec"

// Built-in defaults shared by the completer, the heuristic fallback and the
// rule-based analyzer. Values mirror the analysis stage's fixed tables.

func defaultLayout() spec.Layout {
	return spec.Layout{
		Type:               "flexbox",
		Structure:          "header-main-footer",
		Breakpoints:        []string{"sm:640px", "md:768px", "lg:1024px", "xl:1280px"},
		ComponentHierarchy: []string{"Header", "Main", "Footer"},
	}
}

func defaultColors() spec.Colors {
	return spec.Colors{
		Primary:    "#3b82f6",
		Secondary:  "#f8fafc",
		Accent:     "#10b981",
		Background: "#ffffff",
		Text:       "#111827",
	}
}

func defaultTypography() spec.Typography {
	return spec.Typography{
		PrimaryFont: "system-ui",
		FontSizes:   []string{"14px", "16px", "18px", "24px", "32px"},
		FontWeights: []int{400, 500, 600, 700},
		LineHeights: []string{"1.4", "1.6", "1.8"},
	}
}

func defaultInteractiveElements() map[string][]string {
	return map[string][]string{
		"navigation": {"hamburger"},
		"buttons":    {"primary"},
		"forms":      {"text-input"},
		"animations": {"fade"},
	}
}

func defaultContentSections() []string { return []string{"hero", "main", "footer"} }

// minimalPackageJSON is the manifest synthesized when the model produced
// none: a static file server is the only thing a skeleton clone needs.
func minimalPackageJSON() spec.PackageJSON {
	return spec.PackageJSON{
		Name:        "cloned-website",
		Version:     "1.0.0",
		Description: "Cloned website",
		Scripts: map[string]string{
			"start": "live-server",
			"build": "echo 'No build step required'",
		},
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{"live-server": "^1.2.2"},
	}
}

// packagesForFramework lists the npm packages a clone needs for the detected
// framework and CSS framework combination.
func packagesForFramework(framework, cssFramework string) []string {
	var base []string
	switch framework {
	case "react":
		base = []string{"react", "react-dom"}
	case "next":
		base = []string{"next", "react", "react-dom"}
	case "vue":
		base = []string{"vue"}
	case "angular":
		base = []string{"@angular/core", "@angular/common"}
	case "vanilla":
		base = []string{"live-server"}
	}
	switch cssFramework {
	case "tailwind":
		base = append(base, "tailwindcss", "autoprefixer", "postcss")
	case "bootstrap":
		base = append(base, "bootstrap")
	}
	if len(base) == 0 {
		return []string{"live-server"}
	}
	return base
}

// describeComponents builds the three standard component descriptions from
// live extracted text, so downstream prose reflects the actual site rather
// than placeholder copy.
func describeComponents(textContent map[string]string) map[string]string {
	return map[string]string{
		"components/Header.html": "Header with text '" + textContent["header"] + "', blue background, flexbox layout",
		"components/Main.html":   "Main section with text '" + textContent["main"] + "', centered content",
		"components/Footer.html": "Footer with text '" + textContent["footer"] + "', dark background",
	}
}

func describePages(textContent map[string]string) map[string]string {
	return map[string]string{
		"index.html": "Main page with header ('" + textContent["header"] + "'), main ('" +
			textContent["main"] + "'), and footer ('" + textContent["footer"] + "')",
	}
}
