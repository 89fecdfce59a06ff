package generator

import "site_clone_server/internal/spec"

// frameworkAliases folds known synonym spellings onto their canonical
// names. Names with no alias entry pass through as supplied; only the
// literal "unknown" collapses to the react default.
var frameworkAliases = map[string]string{
	"nextjs":  "next",
	"next.js": "next",
	"vuejs":   "vue",
	"vue.js":  "vue",
	"nuxtjs":  "nuxt",
	"nuxt.js": "nuxt",
	"unknown": "react",
}

// entryPoint is one per-framework completeness rule: when no generated path
// ends with any of the suffixes (case-insensitively), the placeholder file
// is injected. The fallback activates per missing pattern, not
// per-framework-wholesale, so partially-populated specifications keep their
// real content and only gaps are patched.
type entryPoint struct {
	suffixes []string
	path     string
	content  string
}

var entryPoints = map[string][]entryPoint{
	"react": {
		{[]string{"index.js", "index.jsx"}, "src/index.jsx",
			"import React from 'react';\nimport ReactDOM from 'react-dom/client';\nimport App from './App';\nimport './index.css';\n\nReactDOM.createRoot(document.getElementById('root')).render(<App />);"},
		{[]string{"app.js", "app.jsx"}, "src/App.jsx",
			"export default function App() {\n  return <div>Hello from App!</div>;\n}"},
		{[]string{"index.html"}, "public/index.html",
			"<!DOCTYPE html>\n<html lang='en'>\n  <head>\n    <meta charset='UTF-8' />\n    <meta name='viewport' content='width=device-width, initial-scale=1.0' />\n    <title>Cloned React App</title>\n  </head>\n  <body>\n    <div id='root'></div>\n  </body>\n</html>"},
	},
	"next": {
		{[]string{"_app.js", "_app.jsx"}, "pages/_app.js",
			"export default function MyApp({ Component, pageProps }) {\n  return <Component {...pageProps} />;\n}"},
		{[]string{"index.js", "index.jsx"}, "pages/index.js",
			"export default function Home() {\n  return <div>Hello from Next.js Home!</div>;\n}"},
	},
	"vue": {
		{[]string{"main.js"}, "src/main.js",
			"import { createApp } from 'vue';\nimport App from './App.vue';\ncreateApp(App).mount('#app');"},
		{[]string{"app.vue"}, "src/App.vue",
			"<template>\n  <div>Hello from Vue App!</div>\n</template>\n<script>\nexport default { name: 'App' }\n</script>"},
		{[]string{"index.html"}, "public/index.html",
			"<!DOCTYPE html>\n<html lang='en'>\n  <head>\n    <meta charset='UTF-8' />\n    <meta name='viewport' content='width=device-width, initial-scale=1.0' />\n    <title>Cloned Vue App</title>\n  </head>\n  <body>\n    <div id='app'></div>\n  </body>\n</html>"},
	},
	"nuxt": {
		{[]string{"app.vue"}, "app.vue",
			"<template>\n  <NuxtPage />\n</template>"},
		{[]string{"index.vue"}, "pages/index.vue",
			"<template>\n  <div>Hello from Nuxt Home!</div>\n</template>"},
	},
	"vanilla": {
		{[]string{"index.html"}, "index.html",
			"<!DOCTYPE html>\n<html lang='en'>\n  <head>\n    <meta charset='UTF-8' />\n    <meta name='viewport' content='width=device-width, initial-scale=1.0' />\n    <title>Cloned Vanilla App</title>\n  </head>\n  <body>\n    <h1>Hello from Vanilla JS!</h1>\n    <script src='main.js'></script>\n  </body>\n</html>"},
		{[]string{"main.js"}, "main.js", "console.log('Hello from Vanilla JS!');"},
	},
}

// frameworkPackageJSON synthesizes a complete manifest for the target
// framework, used when the specification carried none.
func frameworkPackageJSON(framework string) spec.PackageJSON {
	base := spec.PackageJSON{
		Name:            "generated-website",
		Version:         "1.0.0",
		Description:     "Generated website clone",
		Main:            "index.js",
		Scripts:         map[string]string{},
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{},
	}
	switch framework {
	case "react":
		base.Scripts = map[string]string{
			"start": "react-scripts start",
			"build": "react-scripts build",
			"test":  "react-scripts test",
		}
		base.Dependencies = map[string]string{
			"react":            "^18.2.0",
			"react-dom":        "^18.2.0",
			"react-router-dom": "^6.8.0",
			"react-scripts":    "5.0.1",
		}
		base.DevDependencies = map[string]string{
			"tailwindcss":  "^3.2.0",
			"autoprefixer": "^10.4.0",
			"postcss":      "^8.4.0",
		}
	case "next":
		base.Scripts = map[string]string{
			"dev":   "next dev",
			"build": "next build",
			"start": "next start",
			"lint":  "next lint",
		}
		base.Dependencies = map[string]string{
			"next":      "^13.1.0",
			"react":     "^18.2.0",
			"react-dom": "^18.2.0",
		}
		base.DevDependencies = map[string]string{
			"tailwindcss":  "^3.2.0",
			"autoprefixer": "^10.4.0",
			"postcss":      "^8.4.0",
			"eslint":       "^8.0.0",
		}
	case "vue":
		base.Scripts = map[string]string{
			"serve": "vue-cli-service serve",
			"build": "vue-cli-service build",
			"lint":  "vue-cli-service lint",
		}
		base.Dependencies = map[string]string{
			"vue":        "^3.2.0",
			"vue-router": "^4.1.0",
		}
		base.DevDependencies = map[string]string{
			"@vue/cli-service": "^5.0.0",
			"tailwindcss":      "^3.2.0",
		}
	case "nuxt":
		base.Scripts = map[string]string{
			"dev":      "nuxt dev",
			"build":    "nuxt build",
			"generate": "nuxt generate",
			"preview":  "nuxt preview",
		}
		base.Dependencies = map[string]string{
			"nuxt": "^3.2.0",
			"vue":  "^3.2.0",
		}
		base.DevDependencies = map[string]string{
			"tailwindcss": "^3.2.0",
		}
	case "angular":
		base.Scripts = map[string]string{
			"ng":    "ng",
			"start": "ng serve",
			"build": "ng build",
			"test":  "ng test",
		}
		base.Dependencies = map[string]string{
			"@angular/core":             "^15.0.0",
			"@angular/common":           "^15.0.0",
			"@angular/platform-browser": "^15.0.0",
			"@angular/router":           "^15.0.0",
		}
		base.DevDependencies = map[string]string{
			"@angular/cli": "^15.0.0",
			"typescript":   "^4.8.0",
		}
	case "vanilla":
		base.Scripts = map[string]string{"start": "serve ."}
		base.Dependencies = map[string]string{"serve": "^14.2.0"}
	}
	return base
}

func gitignoreContent(framework string) string {
	base := `# Dependencies
node_modules/
npm-debug.log*
yarn-debug.log*
yarn-error.log*

# Production builds
/build
/dist
/.next
/out

# Environment variables
.env
.env.local
.env.development.local
.env.test.local
.env.production.local

# IDE and editor files
.vscode/
.idea/
*.swp
*.swo

# OS generated files
.DS_Store
Thumbs.db

# Logs
logs
*.log

# Coverage
coverage/

# Temporary folders
tmp/
temp/`
	if framework == "angular" {
		base += "\n\n# Angular specific\n/e2e\n/coverage\n/.nyc_output"
	}
	return base
}

func readmeContent(framework string) string {
	devCommand := "npm start"
	switch framework {
	case "next", "nuxt":
		devCommand = "npm run dev"
	case "vue":
		devCommand = "npm run serve"
	}
	return `# Generated Website Clone

This is a website clone generated from a live URL.

## Framework
- **` + capitalize(framework) + `**

## Getting Started

1. Install dependencies:

` + "```bash\nnpm install\n```" + `

2. Start the development server:

` + "```bash\n" + devCommand + "\n```" + `

3. Open your browser to http://localhost:3000

### Building for Production

` + "```bash\nnpm run build\n```" + `

## Technologies Used

- ` + capitalize(framework) + `
- CSS3/Tailwind CSS
- Modern JavaScript (ES6+)
`
}

// projectCommands returns the build and dev command lists per framework.
func projectCommands(framework string) (build, dev []string) {
	switch framework {
	case "next", "nuxt":
		return []string{"npm run build"}, []string{"npm run dev"}
	case "vue":
		return []string{"npm run build"}, []string{"npm run serve"}
	case "angular":
		return []string{"ng build --prod"}, []string{"ng serve"}
	case "vanilla":
		return []string{"# No build step required for vanilla HTML/CSS/JS"},
			[]string{"# Serve files using a local server like http-server"}
	default:
		return []string{"npm run build"}, []string{"npm start"}
	}
}

// deploymentConfig returns vercel and netlify deployment blocks for the
// framework.
func deploymentConfig(framework string) map[string]any {
	vercel := map[string]any{"name": "generated-website", "version": 2, "builds": []any{}}
	netlify := map[string]any{"build": map[string]any{"command": "npm run build", "publish": ""}}

	switch framework {
	case "react":
		vercel["builds"] = []any{map[string]any{"src": "package.json", "use": "@vercel/static-build"}}
		netlify["build"].(map[string]any)["publish"] = "build"
	case "next":
		vercel["builds"] = []any{map[string]any{"src": "next.config.js", "use": "@vercel/next"}}
		netlify["build"].(map[string]any)["publish"] = ".next"
	case "vue":
		vercel["builds"] = []any{map[string]any{"src": "package.json", "use": "@vercel/static-build"}}
		netlify["build"].(map[string]any)["publish"] = "dist"
	case "nuxt":
		vercel["builds"] = []any{map[string]any{"src": "nuxt.config.ts", "use": "@vercel/static-build"}}
		netlify["build"].(map[string]any)["publish"] = ".output/public"
	}
	return map[string]any{"vercel": vercel, "netlify": netlify}
}

// defaultAssets are merged into every project's asset list.
var defaultAssets = []string{"favicon.ico", "logo.png", "hero-image.jpg", "placeholder-image.jpg"}
