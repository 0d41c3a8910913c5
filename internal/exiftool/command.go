package exiftool

import (
	"errors"
	"strings"
	"time"

	"al.essio.dev/pkg/shellescape"
)

// DefaultBinary is the executable looked up on PATH when none is configured.
const DefaultBinary = "exiftool"

// TimestampLayout is exiftool's native date/time format.
const TimestampLayout = "2006:01:02 15:04:05"

// ErrUnsafePath is returned for paths containing a line break. The
// stay-open protocol reads one argument per line, so such a name would be
// split into extra exiftool arguments.
var ErrUnsafePath = errors.New("file name contains a line break")

// CheckPath rejects paths that cannot be passed to a stay-open session.
func CheckPath(path string) error {
	if strings.ContainsAny(path, "\n\r") {
		return ErrUnsafePath
	}
	return nil
}

// Command is a metadata-update instruction for one file.
type Command struct {
	Binary    string
	Path      string // Absolute file path.
	Date      time.Time
	Overwrite bool // Pass -overwrite_original (no backup copy).
}

// NewCommand returns a command that overwrites all date tags of path with date.
func NewCommand(binary, path string, date time.Time, overwrite bool) Command {
	if binary == "" {
		binary = DefaultBinary
	}
	return Command{Binary: binary, Path: path, Date: date, Overwrite: overwrite}
}

// Timestamp returns Date formatted for exiftool.
func (c Command) Timestamp() string {
	return c.Date.Format(TimestampLayout)
}

// Args returns the exiftool arguments (without the binary).
func (c Command) Args() []string {
	args := make([]string, 0, 3)
	if c.Overwrite {
		args = append(args, "-overwrite_original")
	}
	args = append(args, "-AllDates="+c.Timestamp(), c.Path)
	return args
}

// String renders the command as a POSIX shell line for dry-run output.
// Arguments are single-quoted where needed, so the line runs as printed.
func (c Command) String() string {
	return shellescape.QuoteCommand(append([]string{c.Binary}, c.Args()...))
}
