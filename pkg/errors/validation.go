package errors

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// SceneExtensions lists the file extensions a scene can be loaded from.
var SceneExtensions = []string{".toml", ".yaml", ".yml", ".json"}

// ValidateFormat checks that format is one of allowed.
func ValidateFormat(format string, allowed []string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(allowed, format) {
		return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidateSheet checks the dimensions handed to a sheet exporter.
// The projection divides by the graph dimensions, so all four must be positive.
func ValidateSheet(graphWidth, graphHeight, width, height int) error {
	if graphWidth <= 0 || graphHeight <= 0 {
		return New(ErrCodeInvalidDimensions, "graph size must be positive, got %dx%d", graphWidth, graphHeight)
	}
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidDimensions, "sheet size must be positive, got %dx%d", width, height)
	}
	return nil
}

// ValidateSceneFilename checks that path names a scene file with a supported
// extension and no control characters.
func ValidateSceneFilename(path string) error {
	if path == "" {
		return New(ErrCodeInvalidScene, "scene path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidScene, "scene path contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(SceneExtensions, ext) {
		return New(ErrCodeInvalidScene, "unsupported scene file %q (use %s)", filepath.Base(path), strings.Join(SceneExtensions, ", "))
	}
	return nil
}
