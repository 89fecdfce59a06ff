package analyzer

import "strings"

// FrameworkHints are framework names inferred from raw HTML keyword
// matching, independent of any model call. They feed the completer when the
// model left the framework fields absent or "unknown".
type FrameworkHints struct {
	Frameworks    []string
	CSSFrameworks []string
	CMS           []string
}

// PrimaryFramework returns the first detected JS framework, or fallback.
func (h *FrameworkHints) PrimaryFramework(fallback string) string {
	if h != nil && len(h.Frameworks) > 0 {
		return h.Frameworks[0]
	}
	return fallback
}

// PrimaryCSS returns the first detected CSS framework, or fallback.
func (h *FrameworkHints) PrimaryCSS(fallback string) string {
	if h != nil && len(h.CSSFrameworks) > 0 {
		return h.CSSFrameworks[0]
	}
	return fallback
}

type hintEntry struct {
	name       string
	category   string
	indicators []string
}

// Detection table ported from the analysis stage: one hit on any indicator
// claims the framework for its category. Order is fixed so the first
// detected hint is deterministic.
var hintTable = []hintEntry{
	{"react", "js", []string{"react", "_react", "jsx", "data-reactroot", "__react_devtools"}},
	{"vue", "js", []string{"vue", "_vue", "v-", "@click", "data-v-"}},
	{"angular", "js", []string{"ng-", "[ng", "angular", "_angular"}},
	{"next", "js", []string{"_next", "__next", "next.js"}},
	{"nuxt", "js", []string{"_nuxt", "__nuxt", "nuxt.js"}},
	{"svelte", "js", []string{"svelte", "_svelte"}},
	{"bootstrap", "css", []string{"bootstrap", "btn-", "col-", "container-fluid"}},
	{"tailwind", "css", []string{"tailwind", "tw-", "text-", "bg-", "flex", "grid"}},
	{"material-ui", "css", []string{"mui", "material-ui", "makestyles"}},
	{"chakra", "css", []string{"chakra-ui", "css-"}},
	{"wordpress", "cms", []string{"wp-content", "wordpress", "wp-"}},
	{"shopify", "cms", []string{"shopify", "liquid", "theme_id"}},
}

// DetectHints scans raw HTML for framework indicator substrings,
// case-insensitively.
func DetectHints(htmlContent string) *FrameworkHints {
	hints := &FrameworkHints{}
	lower := strings.ToLower(htmlContent)
	for _, entry := range hintTable {
		for _, ind := range entry.indicators {
			if strings.Contains(lower, ind) {
				switch entry.category {
				case "js":
					hints.Frameworks = append(hints.Frameworks, entry.name)
				case "css":
					hints.CSSFrameworks = append(hints.CSSFrameworks, entry.name)
				case "cms":
					hints.CMS = append(hints.CMS, entry.name)
				}
				break
			}
		}
	}
	return hints
}
