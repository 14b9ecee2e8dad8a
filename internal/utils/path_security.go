package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// SecureJoin joins relativePath under basePath and returns the absolute
// result. Absolute input, ".." escapes and symlinks anywhere between the base
// and the target are rejected. Missing path components are allowed so the
// result can name something about to be created.
func SecureJoin(basePath, relativePath string) (string, error) {
	baseAbs, err := filepath.Abs(basePath)
	if err != nil {
		return "", fmt.Errorf("resolve base path: %w", err)
	}

	cleanRel := filepath.Clean(relativePath)
	if cleanRel == "." {
		cleanRel = ""
	}
	if filepath.IsAbs(cleanRel) {
		return "", fmt.Errorf("invalid path: absolute path not allowed")
	}

	targetAbs, err := filepath.Abs(filepath.Join(baseAbs, cleanRel))
	if err != nil {
		return "", fmt.Errorf("resolve target path: %w", err)
	}

	if err := EnsureNoSymlinkBetween(baseAbs, targetAbs); err != nil {
		return "", err
	}
	return targetAbs, nil
}

// EnsurePathNotSymlink fails when path itself is a symlink. A missing path is fine.
func EnsurePathNotSymlink(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	info, err := os.Lstat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("symlink not allowed: %s", absPath)
	}
	return nil
}

// EnsureNoSymlinkBetween walks from targetPath up to basePath and fails if
// the target lies outside the base or any existing node on the way is a
// symlink.
func EnsureNoSymlinkBetween(basePath, targetPath string) error {
	baseAbs, err := filepath.Abs(basePath)
	if err != nil {
		return fmt.Errorf("resolve base path: %w", err)
	}
	targetAbs, err := filepath.Abs(targetPath)
	if err != nil {
		return fmt.Errorf("resolve target path: %w", err)
	}

	if err := ensureWithinBase(baseAbs, targetAbs); err != nil {
		return err
	}

	current := targetAbs
	for {
		info, statErr := os.Lstat(current)
		if statErr == nil {
			if info.Mode()&os.ModeSymlink != 0 {
				return fmt.Errorf("symlink not allowed: %s", current)
			}
		} else if !os.IsNotExist(statErr) {
			return fmt.Errorf("stat path: %w", statErr)
		}

		if samePath(current, baseAbs) {
			return nil
		}

		parent := filepath.Dir(current)
		if samePath(parent, current) {
			return fmt.Errorf("invalid path: base directory not reachable")
		}
		current = parent
	}
}

func ensureWithinBase(baseAbs, targetAbs string) error {
	// a different drive letter cannot be inside base
	baseVol := filepath.VolumeName(baseAbs)
	targetVol := filepath.VolumeName(targetAbs)
	if (baseVol != "" || targetVol != "") && !strings.EqualFold(baseVol, targetVol) {
		return fmt.Errorf("invalid path: crosses volumes")
	}

	rel, err := filepath.Rel(baseAbs, targetAbs)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return fmt.Errorf("invalid path: escapes base directory")
	}
	return nil
}

func samePath(a, b string) bool {
	a = filepath.Clean(a)
	b = filepath.Clean(b)
	if runtime.GOOS == "windows" {
		return strings.EqualFold(a, b)
	}
	return a == b
}
