package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not CurrentVersion.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrRequired indicates a required field is empty.
	ErrRequired = errors.New("value is required")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("%w: %d", ErrUnsupportedVersion, cfg.Version))
	}

	required := []struct {
		field string
		value string
	}{
		{"server_id", cfg.ServerID},
		{"package.name", cfg.Package.Name},
		{"package.version", cfg.Package.Version},
		{"package.server_path", cfg.Package.ServerPath},
		{"npm_binary", cfg.NPMBinary},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, &FieldError{Field: r.field, Err: ErrRequired})
		}
	}

	if cfg.Package.ServerPath != "" {
		if err := validateRelativePath(cfg.Package.ServerPath); err != nil {
			errs = append(errs, &FieldError{Field: "package.server_path", Value: cfg.Package.ServerPath, Err: err})
		}
	}

	for _, p := range []struct {
		field string
		value string
	}{
		{"settings_file", cfg.SettingsFile},
		{"work_dir", cfg.WorkDir},
		{"node_binary", cfg.NodeBinary},
	} {
		if err := validatePath(p.value); err != nil {
			errs = append(errs, &FieldError{Field: p.field, Value: p.value, Err: err})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists. Empty paths mean "use default".
func validatePath(path string) error {
	if path == "" {
		return nil
	}
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	return nil
}

// validateRelativePath additionally requires the path to stay inside the
// project directory it is joined to.
func validateRelativePath(path string) error {
	if err := validatePath(path); err != nil {
		return err
	}
	if filepath.Clean(path) == "." {
		return ErrInvalidPath
	}
	cleaned := filepath.ToSlash(filepath.Clean(filepath.FromSlash(path)))
	if filepath.IsAbs(filepath.FromSlash(path)) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("%w: must be relative to the project directory", ErrInvalidPath)
	}
	return nil
}

// FieldError represents an error for a specific config field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return e.Field + ": " + e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
