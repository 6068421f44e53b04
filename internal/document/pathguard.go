package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathGuard confines document access to a configured claims directory.
// Symlinks are resolved so a link inside the directory cannot reach out.
type PathGuard struct {
	claimsDirectory string
}

// NewPathGuard creates a guard for the given claims directory
func NewPathGuard(claimsDirectory string) (*PathGuard, error) {
	if claimsDirectory == "" {
		return nil, fmt.Errorf("claims directory cannot be empty")
	}

	// The directory is allowed to not exist yet; it may be created later
	return &PathGuard{claimsDirectory: claimsDirectory}, nil
}

// ClaimsDirectory returns the configured claims directory
func (g *PathGuard) ClaimsDirectory() string {
	return g.claimsDirectory
}

// CheckPath verifies that a path resolves inside the claims directory
func (g *PathGuard) CheckPath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	// Nothing to confine against until the directory exists
	if _, err := os.Stat(g.claimsDirectory); os.IsNotExist(err) {
		return nil
	}

	within, err := g.isWithinClaimsDirectory(path)
	if err != nil {
		return fmt.Errorf("path validation failed: %w", err)
	}
	if !within {
		return fmt.Errorf("path is outside claims directory: %s", path)
	}
	return nil
}

// CheckDirectory verifies that a directory path resolves inside the claims directory
func (g *PathGuard) CheckDirectory(dirPath string) error {
	if err := g.CheckPath(dirPath); err != nil {
		return err
	}

	info, err := os.Stat(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", dirPath)
	}
	return nil
}

func (g *PathGuard) isWithinClaimsDirectory(path string) (bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("failed to resolve path: %w", err)
	}

	absDir, err := filepath.Abs(g.claimsDirectory)
	if err != nil {
		return false, fmt.Errorf("failed to resolve claims directory: %w", err)
	}

	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(absDir)

	realPath := cleanPath
	if info, err := os.Lstat(cleanPath); err == nil && info.Mode()&os.ModeSymlink != 0 {
		if resolved, err := filepath.EvalSymlinks(cleanPath); err == nil {
			realPath = resolved
		}
	}

	realDir := cleanDir
	if resolved, err := filepath.EvalSymlinks(cleanDir); err == nil {
		realDir = resolved
	}

	pathOK := isUnder(cleanPath, cleanDir) || isUnder(cleanPath, realDir)
	realOK := isUnder(realPath, cleanDir) || isUnder(realPath, realDir)
	return pathOK && realOK, nil
}

func isUnder(path, dir string) bool {
	if path == dir {
		return true
	}
	if !strings.HasSuffix(dir, string(filepath.Separator)) {
		dir += string(filepath.Separator)
	}
	return strings.HasPrefix(path, dir)
}
