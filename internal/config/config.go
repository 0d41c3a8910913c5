// Package config holds runtime configuration: defaults, the optional TOML
// config file, CLI flag binding, and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// --- Enum types for validated string fields ---

// Extension is a media file extension without the leading dot. Matching is
// case-sensitive, so differently-cased variants are separate values.
type Extension string

const (
	ExtJPEG     Extension = "jpeg"
	ExtJPG      Extension = "jpg"
	ExtJPGUpper Extension = "JPG"
	ExtMP4      Extension = "mp4"
	ExtMP4Upper Extension = "MP4"
)

// AllExtensions is the fixed set of accepted extensions in canonical order.
// Discovery visits extensions in this order regardless of how they were given.
var AllExtensions = []Extension{ExtJPEG, ExtJPG, ExtJPGUpper, ExtMP4, ExtMP4Upper}

// ParseExtension validates s against [AllExtensions]. A leading dot is
// tolerated; case is not folded.
func ParseExtension(s string) (Extension, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), ".")
	for _, e := range AllExtensions {
		if string(e) == trimmed {
			return e, nil
		}
	}
	return "", fmt.Errorf("invalid extension %q (use one of %s)", s, extensionList())
}

// CanonicalExtensions deduplicates exts and orders them as in [AllExtensions].
func CanonicalExtensions(exts []Extension) []Extension {
	seen := make(map[Extension]bool, len(exts))
	for _, e := range exts {
		seen[e] = true
	}
	out := make([]Extension, 0, len(seen))
	for _, e := range AllExtensions {
		if seen[e] {
			out = append(out, e)
		}
	}
	return out
}

func extensionList() string {
	names := make([]string, len(AllExtensions))
	for i, e := range AllExtensions {
		names[i] = string(e)
	}
	return strings.Join(names, ", ")
}

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stderr is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then by [LoadFile], then by explicitly set CLI flags, before being passed
// (by pointer) to packages that need it.
type Config struct {
	// Positional argument.
	RootDir string

	// Discovery.
	Extensions []Extension // Default: all of AllExtensions.

	// Metadata writing.
	DryRun       bool
	KeepOriginal bool   // Let exiftool keep "<file>_original" backups.
	ExiftoolPath string // Default: "exiftool" (resolved on PATH).

	// Run lock directory. Empty disables locking.
	LockDir string

	// Display and logging.
	Verbose     bool
	ShowSummary bool
	ColorMode   ColorMode // Default: "auto".
	LogFile     string    // Optional log file path.
	CheckOnly   bool      // Run --check diagnostics and exit.

	// ConfigFile is the TOML file that was loaded, if any.
	ConfigFile string
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// the config file and CLI flags apply overrides.
func DefaultConfig() Config {
	exts := make([]Extension, len(AllExtensions))
	copy(exts, AllExtensions)
	return Config{
		Extensions:   exts,
		DryRun:       false,
		KeepOriginal: false,
		ExiftoolPath: "exiftool",
		LockDir:      defaultLockDir(),
		ColorMode:    ColorAuto,
	}
}

func defaultLockDir() string {
	base, err := os.UserCacheDir()
	if err != nil || base == "" {
		return filepath.Join(os.TempDir(), "exifdate")
	}
	return filepath.Join(base, "exifdate")
}

// NormalizeDirArg strips trailing slashes from a directory path. A path made
// only of slashes is the filesystem root and becomes "/".
func NormalizeDirArg(path string) string {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" && path != "" {
		return "/"
	}
	return trimmed
}

// Validate checks enum fields and required values. Extensions are
// canonicalized in place. When not in CheckOnly mode, RootDir is required.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	for _, e := range c.Extensions {
		if _, err := ParseExtension(string(e)); err != nil {
			return err
		}
	}
	c.Extensions = CanonicalExtensions(c.Extensions)
	if len(c.Extensions) == 0 {
		return errors.New("at least one extension is required")
	}

	if strings.TrimSpace(c.ExiftoolPath) == "" {
		return errors.New("exiftool path must not be empty")
	}

	if c.CheckOnly {
		return nil
	}
	if c.RootDir == "" {
		return errors.New("need exactly one root_dir")
	}
	return nil
}
