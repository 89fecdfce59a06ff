package generator

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"site_clone_server/internal/llm"
)

// FileKind tags a generated file with its role in the project.
type FileKind string

const (
	KindComponent FileKind = "component"
	KindPage      FileKind = "page"
	KindStyle     FileKind = "style"
)

// Styling and icon conventions are pinned in the prompt so per-file
// generations stay mutually consistent.
const fileContentPrompt = `
You are an expert senior front-end developer.

For all components, pages, and styles you generate, make them beautiful, not cookie-cutter. Make webpages that are fully featured and worthy for production.

By default, use Tailwind CSS utility classes for styling and lucide-react for icons. Do not install other packages for UI themes or icon sets unless absolutely necessary.

Use stock photos from Unsplash where appropriate, only valid URLs you know exist; link to them in image tags, do not download them.

Use 2 spaces for code indentation.

Generate a %s %s named %s with the following description:
%s

Return only the code, no explanations or comments outside the code. The code should be ready for production use, clean, and idiomatic. If generating a React component, export it as default. If generating a CSS file, include all necessary styles for the described component or page.
`

// ContentRenderer produces source file content for a single project file.
// With a model configured it asks for real code; otherwise, or on any model
// failure, it falls back to a deterministic stub keyed by file extension, so
// rendering never stalls and never emits an empty file.
type ContentRenderer struct {
	model llm.Model
}

func NewContentRenderer(model llm.Model) *ContentRenderer {
	return &ContentRenderer{model: model}
}

func (r *ContentRenderer) Render(ctx context.Context, path, description, framework string, kind FileKind) string {
	if description == "" {
		return "// No description provided for " + path
	}
	if r.model != nil {
		prompt := fmt.Sprintf(fileContentPrompt, framework, kind, path, description)
		code, err := r.model.Generate(ctx, prompt, nil)
		if err == nil {
			return stripFences(code)
		}
		log.Printf("Model code generation failed for %s, using stub: %v", path, err)
	}
	return stubContent(path, description, framework)
}

// stripFences removes a surrounding markdown code fence from model output.
func stripFences(code string) string {
	code = strings.TrimSpace(code)
	if !strings.HasPrefix(code, "```") {
		return code
	}
	code = strings.TrimPrefix(code, "```")
	// Drop a language tag on the opening fence line.
	if idx := strings.Index(code, "\n"); idx >= 0 && !strings.ContainsAny(code[:idx], " {}<") {
		code = code[idx+1:]
	}
	code = strings.TrimSuffix(strings.TrimSpace(code), "```")
	return strings.TrimSpace(code)
}

// stubContent is the deterministic floor: a trivial but syntactically
// plausible file embedding the description, chosen by extension.
func stubContent(path, description, framework string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".js", ".jsx", ".ts", ".tsx":
		name := capitalize(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		return fmt.Sprintf("// %s for %s\n// %s\nexport default function %s() {\n  return (<div>%s</div>);\n}",
			path, framework, description, name, description)
	case ".css", ".scss", ".less":
		return fmt.Sprintf("/* %s for %s\n%s\n*/", path, framework, description)
	case ".json":
		if description == "" {
			return "{}"
		}
		return description
	default:
		return fmt.Sprintf("# %s for %s\n# %s", path, framework, description)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
