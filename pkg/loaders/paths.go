package loaders

import (
	"fmt"
	"path/filepath"
	"strings"
)

// validateFilePath validates a file path for security issues and extension
func validateFilePath(filename string, extensions ...string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}

	// Check for null bytes (could indicate path manipulation)
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}

	// Clean the path to resolve . and .. components
	cleanPath := filepath.Clean(filename)

	// Check for extremely long paths that could cause issues
	if len(cleanPath) > 512 {
		return fmt.Errorf("file path too long: maximum 512 characters allowed")
	}

	if len(extensions) > 0 {
		ext := strings.ToLower(filepath.Ext(cleanPath))
		for _, allowed := range extensions {
			if ext == allowed {
				return nil
			}
		}
		return fmt.Errorf("invalid file type %q: only %s files are allowed", ext, strings.Join(extensions, ", "))
	}

	return nil
}

// resolveAsset joins a file name referenced by a scene onto its asset directory.
// Names may not escape the directory.
func resolveAsset(dir, name string, extensions ...string) (string, error) {
	if err := validateFilePath(name, extensions...); err != nil {
		return "", err
	}
	if filepath.IsAbs(name) {
		return "", fmt.Errorf("invalid file path %q: must be relative to %q", name, dir)
	}

	cleanName := filepath.Clean(name)
	if cleanName == ".." || strings.HasPrefix(cleanName, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid file path %q: directory traversal not allowed", name)
	}

	return filepath.Join(dir, cleanName), nil
}
