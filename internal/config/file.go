package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors the TOML layout. Pointer fields distinguish "absent"
// from an explicit zero value so the file only overrides what it sets.
type fileConfig struct {
	Extensions   []string `toml:"extensions"`
	Exiftool     string   `toml:"exiftool"`
	KeepOriginal *bool    `toml:"keep_original"`
	Color        string   `toml:"color"`
	LogFile      string   `toml:"log_file"`
	Summary      *bool    `toml:"summary"`
	Verbose      *bool    `toml:"verbose"`
	LockDir      *string  `toml:"lock_dir"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/exifdate/config.toml")
}

// LoadFile applies the TOML file at path onto cfg. An empty path means the
// default location, which is silently skipped when absent; an explicit path
// that does not exist is an error.
func LoadFile(path string, cfg *Config) error {
	explicit := path != ""
	if !explicit {
		p, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	resolved, err := expandPath(path)
	if err != nil {
		return err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var fc fileConfig
	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&fc); err != nil {
		return fmt.Errorf("parse config %s: %w", resolved, err)
	}

	if err := fc.apply(cfg); err != nil {
		return fmt.Errorf("config %s: %w", resolved, err)
	}
	cfg.ConfigFile = resolved
	return nil
}

func (fc *fileConfig) apply(cfg *Config) error {
	if len(fc.Extensions) > 0 {
		exts := make([]Extension, 0, len(fc.Extensions))
		for _, raw := range fc.Extensions {
			e, err := ParseExtension(raw)
			if err != nil {
				return err
			}
			exts = append(exts, e)
		}
		cfg.Extensions = exts
	}
	if fc.Exiftool != "" {
		// Bare names are looked up on PATH; only paths are expanded.
		cfg.ExiftoolPath = fc.Exiftool
		if strings.ContainsAny(fc.Exiftool, `/\~`) {
			p, err := expandPath(fc.Exiftool)
			if err != nil {
				return err
			}
			cfg.ExiftoolPath = p
		}
	}
	if fc.KeepOriginal != nil {
		cfg.KeepOriginal = *fc.KeepOriginal
	}
	if fc.Color != "" {
		cfg.ColorMode = ColorMode(strings.ToLower(fc.Color))
	}
	if fc.LogFile != "" {
		p, err := expandPath(fc.LogFile)
		if err != nil {
			return err
		}
		cfg.LogFile = p
	}
	if fc.Summary != nil {
		cfg.ShowSummary = *fc.Summary
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if fc.LockDir != nil {
		p, err := expandPath(*fc.LockDir)
		if err != nil {
			return err
		}
		cfg.LockDir = p
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
