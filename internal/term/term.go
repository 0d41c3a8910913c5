// Package term provides color state and terminal detection.
//
// Styles are package-level variables because multiple packages (logging,
// pipeline, display) need them for output formatting. [Configure] sets them
// once during startup; when colors are disabled the renderer uses the ASCII
// profile and every style renders its input unchanged.
package term

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/backmassage/exifdate/internal/config"
)

// Styles. Plain until Configure enables colors.
var (
	Red     = lipgloss.NewStyle()
	Green   = lipgloss.NewStyle()
	Yellow  = lipgloss.NewStyle()
	Blue    = lipgloss.NewStyle()
	Cyan    = lipgloss.NewStyle()
	Magenta = lipgloss.NewStyle()

	enabled bool
)

// Configure resolves the color mode against w (normally os.Stderr) and sets
// the package-level styles. Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode, w io.Writer) {
	enabled = resolve(mode, w)

	r := lipgloss.NewRenderer(w)
	if enabled {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	bold := r.NewStyle().Bold(enabled)
	Red = bold.Foreground(lipgloss.Color("9"))
	Green = bold.Foreground(lipgloss.Color("10"))
	Yellow = bold.Foreground(lipgloss.Color("11"))
	Blue = bold.Foreground(lipgloss.Color("12"))
	Magenta = bold.Foreground(lipgloss.Color("13"))
	Cyan = bold.Foreground(lipgloss.Color("14"))
}

// Enabled reports whether colors are currently active.
func Enabled() bool { return enabled }

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(w) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether w is a file attached to a TTY.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
