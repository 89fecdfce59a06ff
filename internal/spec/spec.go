package spec

// Specification is the normalized description of a website's design and
// content that drives code generation. It is produced by exactly one of the
// analysis paths (model output + completion, or the rule-based fallback) and
// is never mutated after completion.
type Specification struct {
	Framework           Framework           `json:"framework"`
	Layout              Layout              `json:"layout"`
	Colors              Colors              `json:"colors"`
	Typography          Typography          `json:"typography"`
	Components          []string            `json:"components"`
	InteractiveElements map[string][]string `json:"interactive_elements"`
	ContentStructure    ContentStructure    `json:"content_structure"`
	CloningRequirements CloningRequirements `json:"cloning_requirements"`
}

type Framework struct {
	Primary           string   `json:"primary"`
	CSS               string   `json:"css"`
	BuildTools        []string `json:"build_tools"`
	BackendIndicators []string `json:"backend_indicators"`
}

type Layout struct {
	Type               string   `json:"type"`
	Structure          string   `json:"structure"`
	Breakpoints        []string `json:"breakpoints"`
	ComponentHierarchy []string `json:"component_hierarchy"`
}

// Colors maps the five semantic roles to hex color strings.
type Colors struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

type Typography struct {
	PrimaryFont string   `json:"primary_font"`
	FontSizes   []string `json:"font_sizes"`
	FontWeights []int    `json:"font_weights"`
	LineHeights []string `json:"line_heights"`
}

type ContentStructure struct {
	Sections      []string          `json:"sections"`
	TextHierarchy []string          `json:"text_hierarchy"`
	TextContent   map[string]string `json:"text_content"`
	Images        []string          `json:"images"`
	Icons         []string          `json:"icons"`
}

// CloningRequirements lists the concrete files and packages a generated
// project needs. Description maps are keyed by the file paths they describe.
type CloningRequirements struct {
	NpmPackages           []string          `json:"npm_packages"`
	ComponentFiles        []string          `json:"component_files"`
	ComponentsDescription map[string]string `json:"components_description"`
	Pages                 []string          `json:"pages"`
	PagesDescription      map[string]string `json:"pages_description"`
	Styles                []string          `json:"styles"`
	StylesDescription     map[string]string `json:"styles_description"`
	ConfigFiles           map[string]any    `json:"config_files"`
	Assets                []string          `json:"assets"`
	PerformanceTips       []string          `json:"performance_tips"`
	PackageJSON           PackageJSON       `json:"package_json"`
}

// PackageJSON is the npm manifest shape carried through the pipeline.
type PackageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description,omitempty"`
	Main            string            `json:"main,omitempty"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// IsZero reports whether the manifest carries no content at all.
func (p PackageJSON) IsZero() bool {
	return p.Name == "" && p.Version == "" && len(p.Scripts) == 0 &&
		len(p.Dependencies) == 0 && len(p.DevDependencies) == 0
}

// GeneratedProject is the output file set plus manifest produced for one
// target framework. It lives for a single pipeline run.
type GeneratedProject struct {
	Framework        string
	ProjectStructure *FileSet
	PackageJSON      PackageJSON
	ConfigFiles      map[string]any
	Assets           []string
	BuildCommands    []string
	DevCommands      []string
	DeploymentConfig map[string]any
}
