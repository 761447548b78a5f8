package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CheckPath expands a leading "~" and verifies that path exists. When
// makeAbsolute is set the returned path is absolute.
func CheckPath(path string, makeAbsolute bool) (string, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(expanded); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrPathNotFound, expanded)
		}
		return "", fmt.Errorf("stat %s: %w", expanded, err)
	}

	if makeAbsolute {
		abs, err := filepath.Abs(expanded)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", expanded, err)
		}
		return abs, nil
	}
	return expanded, nil
}

// CheckFiles resolves each pattern (shell wildcards allowed) to exactly one
// existing file and returns the resolved names in input order.
func CheckFiles(patterns ...string) ([]string, error) {
	resolved := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		expanded, err := expandHome(pattern)
		if err != nil {
			return nil, err
		}

		matches, err := filepath.Glob(expanded)
		if err != nil {
			return nil, fmt.Errorf("pattern %s: %w", pattern, err)
		}

		switch len(matches) {
		case 0:
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, pattern)
		case 1:
			resolved = append(resolved, matches[0])
		default:
			return nil, fmt.Errorf("%w: %s (%d matches)", ErrAmbiguousFile, pattern, len(matches))
		}
	}
	return resolved, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
