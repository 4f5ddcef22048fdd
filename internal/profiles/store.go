package profiles

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrInvalidName    = errors.New("invalid profile name")
	ErrProfileMissing = errors.New("profile folder does not exist")
	ErrProfileExists  = errors.New("profile already exists")
	ErrSameName       = errors.New("new profile name must be different")
)

// ValidateName rejects names that are empty, reserved, or would escape the
// profiles root.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	case !IsReal(name):
		return fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, filepath.Separator):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	return nil
}

// Dir returns the folder that holds the named profile.
func Dir(root, name string) string {
	return filepath.Join(root, name)
}

// Rename moves <root>/<oldName> to <root>/<newName> directly on disk. The
// source must exist and the destination must not; both are checked right
// before the move.
func Rename(root, oldName, newName string) error {
	if oldName == newName {
		return ErrSameName
	}
	if err := ValidateName(oldName); err != nil {
		return err
	}
	if err := ValidateName(newName); err != nil {
		return err
	}

	oldPath := Dir(root, oldName)
	newPath := Dir(root, newName)

	if _, err := os.Stat(oldPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrProfileMissing, oldPath)
		}
		return fmt.Errorf("checking %s: %w", oldPath, err)
	}
	if _, err := os.Lstat(newPath); err == nil {
		return fmt.Errorf("%w: %q", ErrProfileExists, newName)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking %s: %w", newPath, err)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("renaming profile: %w", err)
	}
	return nil
}

// StripArchiveExt removes one trailing ext from p, compared case-insensitively.
// The external tool appends its own extension on export.
func StripArchiveExt(p, ext string) string {
	if ext == "" || len(p) < len(ext) {
		return p
	}
	if strings.EqualFold(p[len(p)-len(ext):], ext) {
		return p[:len(p)-len(ext)]
	}
	return p
}
