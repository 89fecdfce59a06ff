package generator

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"site_clone_server/internal/llm"
	"site_clone_server/internal/spec"
)

// Generator expands a completed specification into a project file set for
// one target framework and persists it under a fresh timestamped directory.
type Generator struct {
	renderer  *ContentRenderer
	outputDir string
}

func New(model llm.Model, outputDir string) *Generator {
	return &Generator{renderer: NewContentRenderer(model), outputDir: outputDir}
}

// Generate maps the specification onto a GeneratedProject and writes it to
// disk. The specification is read-only here; all patching happens on the
// output file set.
func (g *Generator) Generate(ctx context.Context, s spec.Specification, frameworkOverride string) (spec.GeneratedProject, error) {
	framework := resolveFramework(frameworkOverride, s.Framework.Primary)
	log.Printf("Generating project: framework=%s components=%d pages=%d styles=%d",
		framework, len(s.CloningRequirements.ComponentFiles),
		len(s.CloningRequirements.Pages), len(s.CloningRequirements.Styles))

	files := spec.NewFileSet()
	req := s.CloningRequirements

	for _, path := range req.ComponentFiles {
		files.Set(path, g.renderer.Render(ctx, path, req.ComponentsDescription[path], framework, KindComponent))
	}
	for _, path := range req.Pages {
		files.Set(path, g.renderer.Render(ctx, path, req.PagesDescription[path], framework, KindPage))
	}
	for _, path := range req.Styles {
		files.Set(path, g.renderer.Render(ctx, path, req.StylesDescription[path], framework, KindStyle))
	}

	// Config files from the specification are copied verbatim.
	configFiles := make(map[string]any, len(req.ConfigFiles))
	for path, content := range req.ConfigFiles {
		configFiles[path] = content
	}

	// Per-framework completeness fallback: inject a placeholder for each
	// missing entry point so every project is runnable in skeleton form.
	for _, ep := range entryPoints[framework] {
		if !hasAnySuffix(files, ep.suffixes) {
			files.Set(ep.path, ep.content)
		}
	}

	packageJSON := req.PackageJSON
	if packageJSON.IsZero() {
		packageJSON = frameworkPackageJSON(framework)
	}

	if !files.Has(".gitignore") {
		if _, ok := configFiles[".gitignore"]; !ok {
			configFiles[".gitignore"] = gitignoreContent(framework)
		}
	}
	if !files.Has("README.md") {
		if _, ok := configFiles["README.md"]; !ok {
			configFiles["README.md"] = readmeContent(framework)
		}
	}
	if !files.Has("package.json") {
		if _, ok := configFiles["package.json"]; !ok {
			configFiles["package.json"] = packageJSON
		}
	}

	build, dev := projectCommands(framework)
	project := spec.GeneratedProject{
		Framework:        framework,
		ProjectStructure: files,
		PackageJSON:      packageJSON,
		ConfigFiles:      configFiles,
		Assets:           mergeAssets(req.Assets),
		BuildCommands:    build,
		DevCommands:      dev,
		DeploymentConfig: deploymentConfig(framework),
	}

	dir, err := g.save(project)
	if err != nil {
		return spec.GeneratedProject{}, err
	}
	log.Printf("Project saved to %s (%d files)", dir, files.Len())
	return project, nil
}

func resolveFramework(override, declared string) string {
	name := strings.ToLower(strings.TrimSpace(override))
	if name == "" {
		name = strings.ToLower(strings.TrimSpace(declared))
	}
	if name == "" {
		return "react"
	}
	if canonical, ok := frameworkAliases[name]; ok {
		return canonical
	}
	return name
}

func hasAnySuffix(files *spec.FileSet, suffixes []string) bool {
	for _, s := range suffixes {
		if files.HasSuffixFold(s) {
			return true
		}
	}
	return false
}

func mergeAssets(declared []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, a := range append(append([]string{}, declared...), defaultAssets...) {
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}

// marshalManifest pretty-prints a manifest or config object for persistence.
func marshalManifest(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
