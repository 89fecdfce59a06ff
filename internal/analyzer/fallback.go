package analyzer

import (
	"fmt"
	"log"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"site_clone_server/internal/spec"
)

// TextRecognizer is an optional OCR capability. When configured, recognized
// screenshot text overrides the HTML-derived section text in the rule-based
// path. It is gated independently and absent by default.
type TextRecognizer interface {
	RecognizeText(imagePath string) (string, error)
}

// RuleBased builds a complete specification directly from raw HTML using
// pattern matching. It is the deterministic floor of the analysis cascade:
// invoked when no model is configured or every model path failed, and it is
// its own completer, so it never returns a partial specification.
type RuleBased struct {
	Recognizer TextRecognizer
}

// Analyze derives a fully-completed specification from raw markup.
// imagePath is consulted only when an OCR recognizer is configured; pass ""
// otherwise. Each extraction rule is independent and keeps its built-in
// default on error.
func (r *RuleBased) Analyze(htmlContent, imagePath string, hints *FrameworkHints) spec.Specification {
	log.Println("Using rule-based fallback analysis")

	framework := hints.PrimaryFramework("vanilla")
	cssFramework := hints.PrimaryCSS("vanilla")

	textContent := map[string]string{
		"header": "Welcome to Our Site",
		"main":   "Main Content",
		"footer": "Copyright 2025",
	}
	extractSectionText(htmlContent, textContent)

	if r.Recognizer != nil && imagePath != "" {
		if ocrText, err := r.Recognizer.RecognizeText(imagePath); err == nil {
			applyRecognizedText(ocrText, textContent)
		} else {
			log.Printf("OCR text recognition failed, keeping HTML text: %v", err)
		}
	}

	return spec.Specification{
		Framework: spec.Framework{
			Primary:           framework,
			CSS:               cssFramework,
			BuildTools:        []string{},
			BackendIndicators: []string{},
		},
		Layout:              defaultLayout(),
		Colors:              extractColors(htmlContent),
		Typography:          extractTypography(htmlContent),
		Components:          detectComponents(htmlContent),
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

// applyRecognizedText buckets OCR lines positionally, same as the heuristic
// text segmentation.
func applyRecognizedText(ocrText string, textContent map[string]string) {
	lines := strings.Split(ocrText, "\n")
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
}

// extractSectionText fills header/main/footer with visible text from the
// first matching element: the semantic tag itself, or failing that the
// first element whose class attribute contains the section name.
func extractSectionText(htmlContent string, textContent map[string]string) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		log.Printf("HTML parse failed, keeping default section text: %v", err)
		return
	}

	sections := []struct {
		key          string
		tag          string
		classMatches []string
	}{
		{"header", "header", []string{"header"}},
		{"main", "main", []string{"main", "content"}},
		{"footer", "footer", []string{"footer"}},
	}
	for _, s := range sections {
		node := findElement(doc, s.tag, s.classMatches)
		if node == nil {
			continue
		}
		if text := truncate(visibleText(node), 100); text != "" {
			textContent[s.key] = text
		}
	}
}

// findElement walks the tree depth-first and returns the first element with
// the wanted tag name, or failing that the first element whose class
// attribute contains one of the substrings, case-insensitively.
func findElement(doc *html.Node, tag string, classMatches []string) *html.Node {
	if n := findByTag(doc, tag); n != nil {
		return n
	}
	return findByClass(doc, classMatches)
}

func findByTag(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func findByClass(n *html.Node, classMatches []string) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key != "class" {
				continue
			}
			class := strings.ToLower(attr.Val)
			for _, m := range classMatches {
				if strings.Contains(class, m) {
					return n
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, classMatches); found != nil {
			return found
		}
	}
	return nil
}

// visibleText concatenates trimmed text nodes under n, skipping script and
// style subtrees.
func visibleText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && (node.Data == "script" || node.Data == "style") {
			return
		}
		if node.Type == html.TextNode {
			b.WriteString(strings.TrimSpace(node.Data))
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

var colorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)color:\s*(#[0-9a-f]{3,6}|\w+)`),
	regexp.MustCompile(`(?i)background-color:\s*(#[0-9a-f]{3,6}|\w+)`),
	regexp.MustCompile(`(?i)border-color:\s*(#[0-9a-f]{3,6}|\w+)`),
	regexp.MustCompile(`(?i)#([0-9a-f]{3,6})`),
}

var rgbPattern = regexp.MustCompile(`(?i)rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*(?:,\s*[\d.]+\s*)?\)`)

// extractColors scans inline styles for color declarations and bare hex
// values. The first two distinct values become primary and secondary; the
// remaining roles keep their defaults.
func extractColors(htmlContent string) spec.Colors {
	colors := defaultColors()

	var found []string
	for _, pattern := range colorPatterns {
		for _, m := range pattern.FindAllStringSubmatch(htmlContent, -1) {
			found = append(found, normalizeColor(m[1]))
		}
	}
	for _, m := range rgbPattern.FindAllStringSubmatch(htmlContent, -1) {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		if r <= 255 && g <= 255 && b <= 255 {
			found = append(found, fmt.Sprintf("#%02x%02x%02x", r, g, b))
		}
	}

	seen := map[string]bool{}
	var distinct []string
	for _, c := range found {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		distinct = append(distinct, c)
	}
	if len(distinct) >= 1 {
		colors.Primary = distinct[0]
	}
	if len(distinct) >= 2 {
		colors.Secondary = distinct[1]
	}
	return colors
}

var hexColorPattern = regexp.MustCompile(`^[0-9a-fA-F]{3}$|^[0-9a-fA-F]{6}$`)

var namedColors = map[string]string{
	"black": "#000000",
	"white": "#ffffff",
	"red":   "#ff0000",
	"green": "#008000",
	"blue":  "#0000ff",
	"gray":  "#808080",
	"grey":  "#808080",
}

// normalizeColor turns a captured declaration value into a lowercase hex
// string. Non-color tokens (rgb prefixes, inherit, transparent) are dropped;
// the rgb pattern picks the functional notations up separately.
func normalizeColor(c string) string {
	c = strings.ToLower(strings.TrimSpace(c))
	if c == "" {
		return ""
	}
	if strings.HasPrefix(c, "#") {
		c = strings.TrimPrefix(c, "#")
	}
	if hexColorPattern.MatchString(c) {
		return "#" + c
	}
	if hex, ok := namedColors[c]; ok {
		return hex
	}
	return ""
}

var (
	fontFamilyPattern = regexp.MustCompile(`(?i)font-family:\s*([^;}]+)`)
	fontSizePattern   = regexp.MustCompile(`(?i)font-size:\s*(\d+(?:px|em|rem|%))`)
	fontWeightPattern = regexp.MustCompile(`(?i)font-weight:\s*(\d+)`)
	lineHeightPattern = regexp.MustCompile(`(?i)line-height:\s*([\d.]+)`)
)

// extractTypography scans for font declarations; any rule with zero matches
// keeps its built-in default.
func extractTypography(htmlContent string) spec.Typography {
	typo := defaultTypography()

	if m := fontFamilyPattern.FindStringSubmatch(htmlContent); m != nil {
		family := strings.TrimSpace(m[1])
		family = strings.NewReplacer(`"`, "", "'", "").Replace(family)
		if family != "" {
			typo.PrimaryFont = family
		}
	}
	if sizes := distinctMatches(fontSizePattern, htmlContent, 5); len(sizes) > 0 {
		typo.FontSizes = sizes
	}
	if weights := distinctWeights(htmlContent); len(weights) > 0 {
		typo.FontWeights = weights
	}
	if heights := distinctMatches(lineHeightPattern, htmlContent, 3); len(heights) > 0 {
		typo.LineHeights = heights
	}
	return typo
}

// distinctMatches returns up to limit distinct first-group matches, in
// source order.
func distinctMatches(pattern *regexp.Regexp, text string, limit int) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range pattern.FindAllStringSubmatch(text, -1) {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		out = append(out, m[1])
		if len(out) == limit {
			break
		}
	}
	return out
}

func distinctWeights(text string) []int {
	seen := map[int]bool{}
	var weights []int
	for _, m := range fontWeightPattern.FindAllStringSubmatch(text, -1) {
		w, err := strconv.Atoi(m[1])
		if err != nil || seen[w] {
			continue
		}
		seen[w] = true
		weights = append(weights, w)
	}
	sort.Ints(weights)
	return weights
}

type componentEntry struct {
	name     string
	patterns []*regexp.Regexp
}

func compilePatterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// Thirteen component categories tested against lowercased markup. A
// category is included once any of its patterns matches.
var componentTable = []componentEntry{
	{"header", compilePatterns(`<header`, `class.*header`, `id.*header`)},
	{"navigation", compilePatterns(`<nav`, `class.*nav`, `navbar`, `menu`)},
	{"hero", compilePatterns(`class.*hero`, `class.*banner`, `class.*jumbotron`)},
	{"main", compilePatterns(`<main`, `class.*main`, `id.*main`)},
	{"content", compilePatterns(`class.*content`, `class.*article`)},
	{"sidebar", compilePatterns(`class.*sidebar`, `class.*aside`, `<aside`)},
	{"footer", compilePatterns(`<footer`, `class.*footer`, `id.*footer`)},
	{"card", compilePatterns(`class.*card`, `class.*tile`)},
	{"form", compilePatterns(`<form`, `class.*form`)},
	{"button", compilePatterns(`<button`, `class.*btn`)},
	{"modal", compilePatterns(`class.*modal`, `class.*popup`)},
	{"carousel", compilePatterns(`class.*carousel`, `class.*slider`)},
	{"gallery", compilePatterns(`class.*gallery`, `class.*grid`)},
}

// detectComponents matches markup and class-name patterns against the fixed
// component table, then guarantees the minimum viable header/main/footer
// set.
func detectComponents(htmlContent string) []string {
	lower := strings.ToLower(htmlContent)
	var components []string
	for _, entry := range componentTable {
		for _, p := range entry.patterns {
			if p.MatchString(lower) {
				components = append(components, entry.name)
				break
			}
		}
	}
	for _, basic := range []string{"header", "main", "footer"} {
		if !containsString(components, basic) {
			components = append(components, basic)
		}
	}
	return components
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
