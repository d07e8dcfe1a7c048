// Package resolver turns a user-supplied path into the root of the Go module
// that the contract analysis should load.
package resolver

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Resolve returns the module root for input: the nearest go.mod at or above
// input, or failing that the shallowest go.mod below it. Remote inputs are
// rejected.
func Resolve(ctx context.Context, input string, logger *slog.Logger) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if isRemote(input) {
		return "", fmt.Errorf("remote inputs are not supported: %s", input)
	}

	absPath, err := filepath.Abs(input)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", absPath, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", absPath)
	}

	modRoot, err := findModuleRoot(absPath)
	if err != nil {
		logger.Debug("no go.mod above input, searching below", "input", absPath)
		modRoot, err = findModuleRootInTree(absPath)
		if err != nil {
			return "", err
		}
	}

	logger.Info("resolved local directory", "input", input, "module_root", modRoot)
	return modRoot, nil
}

func isRemote(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

func findModuleRoot(dir string) (string, error) {
	current := dir
	for {
		if _, err := os.Stat(filepath.Join(current, "go.mod")); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", fmt.Errorf("no go.mod found in %s or any parent directory", dir)
		}
		current = parent
	}
}

// findModuleRootInTree walks root and returns the shallowest directory holding a
// go.mod. Ties at the same depth go to the lexically first path. Hidden
// directories, vendor and testdata are skipped.
func findModuleRootInTree(root string) (string, error) {
	var found []string
	bestDepth := -1

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != root && (strings.HasPrefix(name, ".") || name == "vendor" || name == "testdata") {
			return filepath.SkipDir
		}

		rel, _ := filepath.Rel(root, path)
		depth := 0
		if rel != "." {
			depth = strings.Count(rel, string(filepath.Separator)) + 1
		}
		if bestDepth >= 0 && depth > bestDepth {
			return filepath.SkipDir
		}

		if _, statErr := os.Stat(filepath.Join(path, "go.mod")); statErr == nil {
			if bestDepth < 0 || depth < bestDepth {
				bestDepth = depth
				found = found[:0]
			}
			found = append(found, path)
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("walking %s: %w", root, err)
	}
	if len(found) == 0 {
		return "", fmt.Errorf("no go.mod found in %s or its subdirectories", root)
	}

	sort.Strings(found)
	return found[0], nil
}
