package analyzer

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"site_clone_server/internal/analyzer/prompts"
	"site_clone_server/internal/llm"
	"site_clone_server/internal/spec"
)

// Analyzer derives a completed specification from a captured page. The
// analysis cascade is an explicit ordered strategy list: vision first
// because it sees rendered layout and color that markup alone may not
// reveal, then text-only as a degraded but still model-driven attempt, with
// the rule-based floor last. The first strategy to succeed wins; the
// rule-based strategy cannot fail, so Analyze always returns a complete
// specification.
type Analyzer struct {
	model llm.Model
	rules *RuleBased
}

func New(model llm.Model, rules *RuleBased) *Analyzer {
	if rules == nil {
		rules = &RuleBased{}
	}
	return &Analyzer{model: model, rules: rules}
}

type strategy struct {
	name string
	run  func(ctx context.Context) (spec.Specification, error)
}

// Analyze produces a fully-completed specification for the captured page.
func (a *Analyzer) Analyze(ctx context.Context, imagePath, htmlContent string) spec.Specification {
	log.Printf("Starting analysis: image=%s htmlLen=%d", imagePath, len(htmlContent))

	hints := DetectHints(htmlContent)
	log.Printf("Framework hints: js=%v css=%v cms=%v", hints.Frameworks, hints.CSSFrameworks, hints.CMS)

	var strategies []strategy
	if a.model != nil {
		strategies = append(strategies,
			strategy{"vision", func(ctx context.Context) (spec.Specification, error) {
				return a.visionAnalysis(ctx, imagePath, htmlContent, hints)
			}},
			strategy{"text-only", func(ctx context.Context) (spec.Specification, error) {
				return a.textOnlyAnalysis(ctx, htmlContent, hints)
			}},
		)
	} else {
		log.Println("No model configured, analysis runs on the rule-based path")
	}
	strategies = append(strategies, strategy{"rule-based", func(ctx context.Context) (spec.Specification, error) {
		return a.rules.Analyze(htmlContent, imagePath, hints), nil
	}})

	for _, s := range strategies {
		result, err := s.run(ctx)
		if err != nil {
			log.Printf("Analysis strategy %q failed: %v", s.name, err)
			continue
		}
		log.Printf("Completed %s analysis: framework=%s css=%s components=%d",
			s.name, result.Framework.Primary, result.Framework.CSS, len(result.Components))
		return result
	}
	// Unreachable: the rule-based strategy never errors.
	return a.rules.Analyze(htmlContent, imagePath, hints)
}

func (a *Analyzer) visionAnalysis(ctx context.Context, imagePath, htmlContent string, hints *FrameworkHints) (spec.Specification, error) {
	image, err := os.ReadFile(imagePath)
	if err != nil {
		return spec.Specification{}, fmt.Errorf("read screenshot: %w", err)
	}
	prompt := fmt.Sprintf(prompts.GetVisionAnalysisPrompt(),
		strings.Join(hints.Frameworks, ", "),
		strings.Join(hints.CSSFrameworks, ", "),
		strings.Join(hints.CMS, ", "),
		truncate(htmlContent, 3000))

	response, err := a.model.Generate(ctx, prompt, image)
	if err != nil {
		return spec.Specification{}, fmt.Errorf("vision analysis: %w", err)
	}
	return a.normalize(response, hints), nil
}

func (a *Analyzer) textOnlyAnalysis(ctx context.Context, htmlContent string, hints *FrameworkHints) (spec.Specification, error) {
	prompt := fmt.Sprintf(prompts.GetTextOnlyAnalysisPrompt(),
		fmt.Sprintf("js=%v css=%v cms=%v", hints.Frameworks, hints.CSSFrameworks, hints.CMS),
		truncate(htmlContent, 5000))

	response, err := a.model.Generate(ctx, prompt, nil)
	if err != nil {
		return spec.Specification{}, fmt.Errorf("text-only analysis: %w", err)
	}
	return a.normalize(response, hints), nil
}

// normalize turns raw model output into a completed specification: JSON
// extraction plus completion when a structured object is present, heuristic
// text segmentation otherwise. Parse failures never propagate.
func (a *Analyzer) normalize(response string, hints *FrameworkHints) spec.Specification {
	parsed, err := ExtractSpecification(response)
	if err != nil {
		log.Printf("Response normalization fell back to text segmentation: %v", err)
		return HeuristicSpecification(response, hints)
	}
	return Complete(parsed, hints)
}

// Summary renders a human-readable digest of an analysis result for logs.
func Summary(s spec.Specification) string {
	text := s.ContentStructure.TextContent
	return fmt.Sprintf(`Website Analysis Summary:
Framework: %s
CSS Framework: %s
Layout Type: %s
Components Found: %s
Extracted Text:
- Header: %s
- Main: %s
- Footer: %s
Required Packages: %s`,
		s.Framework.Primary,
		s.Framework.CSS,
		s.Layout.Type,
		strings.Join(s.Components, ", "),
		text["header"], text["main"], text["footer"],
		strings.Join(s.CloningRequirements.NpmPackages, ", "))
}
