package spec

import "strings"

// FileSet is an insertion-ordered mapping of relative file path to content.
// Write order when persisting a project equals insertion order, and a path
// can only appear once: setting an existing path replaces its content in
// place without moving it.
type FileSet struct {
	paths   []string
	content map[string]string
}

func NewFileSet() *FileSet {
	return &FileSet{content: make(map[string]string)}
}

func (fs *FileSet) Set(path, content string) {
	if _, ok := fs.content[path]; !ok {
		fs.paths = append(fs.paths, path)
	}
	fs.content[path] = content
}

func (fs *FileSet) Get(path string) (string, bool) {
	c, ok := fs.content[path]
	return c, ok
}

func (fs *FileSet) Has(path string) bool {
	_, ok := fs.content[path]
	return ok
}

// Paths returns the file paths in insertion order. The returned slice is
// shared; callers must not modify it.
func (fs *FileSet) Paths() []string { return fs.paths }

func (fs *FileSet) Len() int { return len(fs.paths) }

// HasSuffixFold reports whether any stored path ends with suffix,
// case-insensitively. Used by the per-framework completeness fallbacks.
func (fs *FileSet) HasSuffixFold(suffix string) bool {
	suffix = strings.ToLower(suffix)
	for _, p := range fs.paths {
		if strings.HasSuffix(strings.ToLower(p), suffix) {
			return true
		}
	}
	return false
}

// HasContainsFold reports whether any stored path contains sub,
// case-insensitively.
func (fs *FileSet) HasContainsFold(sub string) bool {
	sub = strings.ToLower(sub)
	for _, p := range fs.paths {
		if strings.Contains(strings.ToLower(p), sub) {
			return true
		}
	}
	return false
}
