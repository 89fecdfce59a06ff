package prompts

// Shared JSON output contract for both analysis prompts. The normalizer
// tolerates deviations, but spelling the shape out keeps model output close
// enough for the first extraction pattern to win.
const specificationFormat = `
{
    "framework": {
        "primary": "react|vue|angular|next|nuxt|svelte|vanilla|unknown",
        "css": "tailwind|bootstrap|material-ui|chakra|styled-components|css-modules|vanilla|unknown",
        "build_tools": ["vite", "webpack", "parcel"],
        "backend_indicators": ["api", "graphql", "rest"]
    },
    "layout": {
        "type": "grid|flexbox|float|modern",
        "structure": "header-main-footer|sidebar-main|full-width|dashboard",
        "breakpoints": ["sm:640px", "md:768px", "lg:1024px", "xl:1280px"],
        "component_hierarchy": ["Header", "Navigation", "Main", "Footer"]
    },
    "colors": {
        "primary": "#hexcode",
        "secondary": "#hexcode",
        "accent": "#hexcode",
        "background": "#hexcode",
        "text": "#hexcode"
    },
    "typography": {
        "primary_font": "font-family-name",
        "font_sizes": ["12px", "14px", "16px", "18px", "24px"],
        "font_weights": [300, 400, 500, 600, 700],
        "line_heights": ["1.2", "1.4", "1.6"]
    },
    "components": ["header", "navigation", "hero", "cards", "forms", "footer"],
    "interactive_elements": {
        "navigation": ["dropdown", "hamburger", "tabs"],
        "buttons": ["primary", "secondary", "outline"],
        "forms": ["text-input", "select", "checkbox"],
        "animations": ["fade", "slide", "scale"]
    },
    "content_structure": {
        "sections": ["hero", "features", "testimonials", "cta", "footer"],
        "text_hierarchy": ["h1", "h2", "h3", "p"],
        "text_content": {"header": "Extracted text", "main": "Extracted text", "footer": "Extracted text"},
        "images": ["hero-bg", "thumbnails", "icons"],
        "icons": ["fontawesome", "heroicons", "custom"]
    },
    "cloning_requirements": {
        "npm_packages": ["react", "react-dom", "next", "tailwindcss"],
        "component_files": ["components/Header.html", "components/Main.html"],
        "components_description": {
            "components/Header.html": "Header with text 'Welcome to Our Site', blue background, flexbox layout"
        },
        "pages": ["index.html"],
        "pages_description": {
            "index.html": "Main page with header ('Welcome'), main ('About'), and footer ('Copyright')"
        },
        "styles": ["style.css"],
        "styles_description": {
            "style.css": "Styles for layout, typography, and colors, including text styling"
        },
        "config_files": {"package.json": {}},
        "assets": ["images/", "icons/"],
        "performance_tips": ["lazy-loading", "code-splitting"],
        "package_json": {
            "name": "cloned-website",
            "version": "1.0.0",
            "scripts": {"start": "live-server"},
            "dependencies": {},
            "devDependencies": {"live-server": "^1.2.2"}
        }
    }
}`

// GetVisionAnalysisPrompt returns the screenshot+HTML analysis prompt
// template. Slots, in order: JS framework hints, CSS framework hints, CMS
// hints, truncated HTML content.
func GetVisionAnalysisPrompt() string {
	return `
Analyze the provided website screenshot and HTML content to generate a detailed specification for cloning the website. Extract ALL VISIBLE TEXT from the screenshot and map it to specific components (header, main, footer). Combine this with design elements (layout, colors, typography) from both the screenshot and HTML to produce a comprehensive cloning specification.

FRAMEWORK DETECTION HINTS:
- JS Frameworks: %s
- CSS Frameworks: %s
- CMS: %s

HTML CONTENT (first 3000 chars):
%s

INSTRUCTIONS:
1. Extract all text visible in the screenshot, including headings, paragraphs, buttons, navigation items, and footer text.
2. Map extracted text to components (e.g., "Header: Welcome to Our Site", "Main: About Us").
3. Identify design elements: framework, CSS framework, colors (hex codes), typography (font-family, sizes, weights), layout (grid/flexbox), and components (header, navigation, etc.).
4. Provide detailed descriptions in components_description, pages_description, and styles_description, including exact text content for each component.
5. Ensure content_structure.text_content maps components to their text content.
6. Return a valid JSON object with the structure below, ensuring all fields are populated with accurate data.

OUTPUT FORMAT:` + specificationFormat + `

CONSTRAINTS:
- Return ONLY valid JSON without markdown or extra text.
- Ensure text_content includes all extracted text, mapped to components.
- Use reasonable defaults for missing information (e.g., "unknown" for framework).
- Include exact hex codes for colors and precise typography details.
`
}

// GetTextOnlyAnalysisPrompt returns the HTML-only analysis prompt template.
// Slots, in order: framework hints summary, truncated HTML content.
func GetTextOnlyAnalysisPrompt() string {
	return `
Analyze this HTML content to generate a website cloning specification. Extract all text content from the HTML and map it to components (header, main, footer). Infer design elements from HTML structure, class names, and inline styles.

FRAMEWORK HINTS: %s
HTML CONTENT: %s

Return ONLY a valid JSON object with this structure:` + specificationFormat + `

Ensure content_structure.text_content carries the extracted text mapped to components, and that components_description and pages_description quote the exact text content. Populate every field, using reasonable defaults where information is missing.
`
}
