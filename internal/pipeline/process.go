package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"github.com/backmassage/exifdate/internal/config"
	"github.com/backmassage/exifdate/internal/datename"
	"github.com/backmassage/exifdate/internal/exiftool"
)

// State is a file's position in the per-file state machine.
type State int

const (
	StateDiscovered State = iota
	StateTokenExtracted
	StateDateParsed
	StateApplied // terminal: exiftool wrote the dates
	StateEmitted // terminal: dry-run command printed
	StateSkipped // terminal: no date in the name
	StateErrored // terminal: parse or exiftool failure
)

func (s State) String() string {
	switch s {
	case StateDiscovered:
		return "discovered"
	case StateTokenExtracted:
		return "token-extracted"
	case StateDateParsed:
		return "date-parsed"
	case StateApplied:
		return "applied"
	case StateEmitted:
		return "emitted"
	case StateSkipped:
		return "skipped"
	case StateErrored:
		return "errored"
	}
	return "unknown"
}

// Terminal reports whether s ends a file's processing.
func (s State) Terminal() bool { return s >= StateApplied }

// MetadataWriter executes a metadata-update command against one file.
type MetadataWriter interface {
	WriteDates(ctx context.Context, cmd exiftool.Command) error
}

// Result is the outcome of processing one file. Err is set exactly when
// State is StateSkipped or StateErrored.
type Result struct {
	Path    string
	Token   datename.Token
	Date    time.Time
	Command exiftool.Command
	State   State
	Err     error
}

// ProcessFile runs one file through extract → parse → apply (or emit in
// dry-run). w is not called in dry-run mode and may be nil there. Paths
// with a line break are errored up front in both modes.
func ProcessFile(ctx context.Context, cfg *config.Config, path string, w MetadataWriter) Result {
	res := Result{Path: path, State: StateDiscovered}

	if err := exiftool.CheckPath(path); err != nil {
		res.State = StateErrored
		res.Err = err
		return res
	}

	tok, ok := datename.Extract(filepath.Base(path))
	if !ok {
		res.State = StateSkipped
		res.Err = datename.ErrNoDate
		return res
	}
	res.Token = tok
	res.State = StateTokenExtracted

	date, err := datename.Parse(tok.Value)
	if err != nil {
		res.State = StateErrored
		res.Err = err
		return res
	}
	res.Date = date
	res.State = StateDateParsed

	res.Command = exiftool.NewCommand(cfg.ExiftoolPath, path, date, !cfg.KeepOriginal)

	if cfg.DryRun {
		res.State = StateEmitted
		return res
	}

	if err := w.WriteDates(ctx, res.Command); err != nil {
		res.State = StateErrored
		res.Err = err
		return res
	}
	res.State = StateApplied
	return res
}
