// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation (CheckDeps) for the exiftool binary.
package check

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/backmassage/exifdate/internal/config"
	"github.com/backmassage/exifdate/internal/exiftool"
)

// ErrExiftoolNotFound is returned by CheckDeps when the configured binary
// cannot be resolved.
var ErrExiftoolNotFound = errors.New("exiftool not found")

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// RunCheck prints where exiftool resolves to, its version, and whether a
// stay-open session can be started. It returns false if any step fails.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")
	if cfg.ConfigFile != "" {
		log.Info("Config: %s", cfg.ConfigFile)
	}

	path, err := exec.LookPath(cfg.ExiftoolPath)
	if err != nil {
		log.Error("%s not found: %v", cfg.ExiftoolPath, err)
		return false
	}
	log.Success("exiftool: %s", path)

	ver, err := version(path)
	if err != nil {
		log.Warn("exiftool found but -ver failed: %v", err)
		return false
	}
	log.Success("exiftool version %s", ver)

	if err := probeSession(path); err != nil {
		log.Error("stay-open session failed: %v", err)
		return false
	}
	log.Success("stay-open session works")
	return true
}

// CheckDeps verifies the configured exiftool binary is resolvable. Only
// writing runs need it; dry runs never start exiftool.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath(cfg.ExiftoolPath); err != nil {
		return fmt.Errorf("%w: %s", ErrExiftoolNotFound, cfg.ExiftoolPath)
	}
	return nil
}

func version(path string) (string, error) {
	out, err := exec.Command(path, "-ver").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// probeSession starts a session by writing to a path that cannot exist.
// Only the start error matters; the per-file error is expected.
func probeSession(path string) error {
	w := exiftool.NewWriter(path)
	defer w.Close()
	cmd := exiftool.Command{Binary: path, Path: "/nonexistent/exifdate-check.jpg"}
	if err := w.WriteDates(context.Background(), cmd); errors.Is(err, exiftool.ErrStart) {
		return err
	}
	return nil
}
