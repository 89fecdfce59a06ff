package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"site_clone_server/internal/spec"
)

// save writes every project entry under a fresh timestamped directory:
// {outputDir}/{framework}_{unixTimestamp}/project/. Manifest and map-valued
// config entries are serialized as pretty-printed JSON, everything else is
// written as-is.
func (g *Generator) save(project spec.GeneratedProject) (string, error) {
	dirName := fmt.Sprintf("%s_%d", project.Framework, time.Now().Unix())
	outputDir := filepath.Join(g.outputDir, dirName, "project")
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create project directory: %w", err)
	}

	for _, path := range project.ProjectStructure.Paths() {
		content, _ := project.ProjectStructure.Get(path)
		if err := writeFile(outputDir, path, []byte(content)); err != nil {
			return "", err
		}
	}

	manifest, err := marshalManifest(project.PackageJSON)
	if err != nil {
		return "", fmt.Errorf("failed to serialize package.json: %w", err)
	}
	if err := writeFile(outputDir, "package.json", manifest); err != nil {
		return "", err
	}

	for path, content := range project.ConfigFiles {
		var data []byte
		switch c := content.(type) {
		case string:
			data = []byte(c)
		default:
			data, err = marshalManifest(c)
			if err != nil {
				return "", fmt.Errorf("failed to serialize config file %s: %w", path, err)
			}
		}
		if err := writeFile(outputDir, path, data); err != nil {
			return "", err
		}
	}
	return outputDir, nil
}

func writeFile(root, relPath string, data []byte) error {
	fullPath := filepath.Join(root, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create subdirectories for %s: %w", relPath, err)
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", relPath, err)
	}
	return nil
}
