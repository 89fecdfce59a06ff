package pipeline

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"site_clone_server/internal/analyzer"
	"site_clone_server/internal/browser"
	"site_clone_server/internal/detector"
	"site_clone_server/internal/generator"
	"site_clone_server/internal/llm"
)

// State tracks where a clone request is in its lifecycle. Transitions are
// strictly forward; any step may move to StateFailed.
type State int

const (
	StateCreated State = iota
	StateNavigated
	StateCaptured
	StateAnalyzed
	StateGenerated
	StateValidated
	StateCompared
	StateDone
	StateFailed
)

var stateNames = map[State]string{
	StateCreated:   "created",
	StateNavigated: "navigated",
	StateCaptured:  "captured",
	StateAnalyzed:  "analyzed",
	StateGenerated: "generated",
	StateValidated: "validated",
	StateCompared:  "compared",
	StateDone:      "done",
	StateFailed:    "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Options carries the optional knobs of a clone request.
type Options struct {
	GeneratedURL  string `json:"generated_url"`
	RunLighthouse bool   `json:"run_lighthouse"`
}

// Request is a fully-resolved clone request.
type Request struct {
	URL       string
	Framework string
	Options   Options
}

// Result is what a completed clone reports back.
type Result struct {
	Status          string             `json:"status"`
	SimilarityScore float64            `json:"similarity_score"`
	DeployedURL     string             `json:"deployed_url,omitempty"`
	GenerationTime  float64            `json:"generation_time"`
	LighthouseScore map[string]float64 `json:"lighthouse_score,omitempty"`
}

// Config bundles the pipeline's tunables.
type Config struct {
	OutputDir         string
	NavigationTimeout time.Duration
	ViewportWidth     int
	ViewportHeight    int
}

// Pipeline orchestrates a full clone: capture, analyze, generate, validate
// and optionally compare against a deployed copy. A single Pipeline serves
// many requests; each request gets its own browser.
type Pipeline struct {
	model llm.Model
	cfg   Config
	gen   *generator.Generator
}

func New(model llm.Model, cfg Config) *Pipeline {
	if cfg.NavigationTimeout <= 0 {
		cfg.NavigationTimeout = 30 * time.Second
	}
	return &Pipeline{
		model: model,
		cfg:   cfg,
		gen:   generator.New(model, cfg.OutputDir),
	}
}

// Clone runs the whole pipeline for one request. Validation problems come
// back as *ValidationError; anything else is an internal failure.
func (p *Pipeline) Clone(ctx context.Context, req Request) (Result, error) {
	requestID := uuid.New().String()
	start := time.Now()
	state := StateCreated
	log.Printf("[%s] Clone started: url=%s framework=%s", requestID, req.URL, req.Framework)

	capturer := browser.NewCapturer(p.cfg.ViewportWidth, p.cfg.ViewportHeight)
	defer capturer.Cleanup()

	fail := func(err error) (Result, error) {
		log.Printf("[%s] Clone failed in state %s: %v", requestID, state, err)
		return Result{Status: StateFailed.String(), GenerationTime: time.Since(start).Seconds()}, err
	}
	advance := func(next State) {
		state = next
		log.Printf("[%s] State: %s", requestID, state)
	}

	page, err := capturer.Navigate(ctx, req.URL, p.cfg.NavigationTimeout)
	if err != nil {
		return fail(err)
	}
	advance(StateNavigated)

	screenshotPath := filepath.Join(p.cfg.OutputDir, "screenshots", fmt.Sprintf("%s_original.png", requestID))
	if _, err := capturer.Screenshot(ctx, screenshotPath); err != nil {
		return fail(err)
	}
	advance(StateCaptured)

	a := analyzer.New(p.model, nil)
	specification := a.Analyze(ctx, screenshotPath, page.HTMLContent)
	log.Printf("[%s] %s", requestID, analyzer.Summary(specification))
	advance(StateAnalyzed)

	project, err := p.gen.Generate(ctx, specification, req.Framework)
	if err != nil {
		return fail(fmt.Errorf("code generation failed: %w", err))
	}
	advance(StateGenerated)

	if err := Validate(&project); err != nil {
		return fail(err)
	}
	advance(StateValidated)

	result := Result{
		Status:          "success",
		SimilarityScore: detector.NeutralScore,
	}
	if req.Options.GeneratedURL != "" {
		generatedShot := filepath.Join(p.cfg.OutputDir, "screenshots", fmt.Sprintf("%s_generated.png", requestID))
		if _, err := capturer.CaptureURL(ctx, req.Options.GeneratedURL, generatedShot, p.cfg.NavigationTimeout); err != nil {
			log.Printf("[%s] Generated site capture failed, keeping neutral similarity: %v", requestID, err)
		} else {
			result.SimilarityScore = detector.Compare(screenshotPath, generatedShot)
		}
		result.DeployedURL = req.Options.GeneratedURL
		advance(StateCompared)
	}

	result.LighthouseScore = lighthouseAudit(requestID, req.Options)

	advance(StateDone)
	result.GenerationTime = time.Since(start).Seconds()
	log.Printf("[%s] Clone finished in %.2fs (similarity=%.2f)", requestID, result.GenerationTime, result.SimilarityScore)
	return result, nil
}

// lighthouseAudit reports the audit scores for a run. Lighthouse itself
// needs a node toolchain on the host; until that lands a requested audit is
// acknowledged with an empty score set so callers see the field in the
// response.
func lighthouseAudit(requestID string, opts Options) map[string]float64 {
	if !opts.RunLighthouse {
		return nil
	}
	log.Printf("[%s] Lighthouse audit requested but not configured", requestID)
	return map[string]float64{}
}
