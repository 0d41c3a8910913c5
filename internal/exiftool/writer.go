package exiftool

import (
	"context"
	"errors"
	"fmt"

	"github.com/barasher/go-exiftool"
)

// ErrStart wraps the cause when the exiftool process cannot be started
// (missing binary, permissions).
var ErrStart = errors.New("exiftool unavailable")

// ErrOverwriteMismatch is returned for a command whose Overwrite setting
// differs from the one the running session was started with.
var ErrOverwriteMismatch = errors.New("command overwrite setting differs from session")

// Writer applies commands through one stay-open exiftool process. The
// process starts on the first write, with backups enabled unless that
// command sets Overwrite; a start failure is kept and returned for every
// later write without another attempt. Writer is not safe for concurrent use.
type Writer struct {
	binary string

	et        *exiftool.Exiftool
	started   bool
	overwrite bool
	startErr  error
}

// NewWriter returns a Writer for binary.
func NewWriter(binary string) *Writer {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Writer{binary: binary}
}

// WriteDates sets -AllDates on cmd.Path to cmd's timestamp. It blocks until
// exiftool reports the result; there is no timeout.
func (w *Writer) WriteDates(ctx context.Context, cmd Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := CheckPath(cmd.Path); err != nil {
		return err
	}
	et, err := w.session(cmd.Overwrite)
	if err != nil {
		return err
	}
	if cmd.Overwrite != w.overwrite {
		return fmt.Errorf("%w: session overwrite=%t", ErrOverwriteMismatch, w.overwrite)
	}

	fm := exiftool.EmptyFileMetadata()
	fm.File = cmd.Path
	fm.SetString("AllDates", cmd.Timestamp())

	batch := []exiftool.FileMetadata{fm}
	et.WriteMetadata(batch)
	if batch[0].Err != nil {
		return fmt.Errorf("exiftool: %w", batch[0].Err)
	}
	return nil
}

func (w *Writer) session(overwrite bool) (*exiftool.Exiftool, error) {
	if w.started {
		return w.et, w.startErr
	}
	w.started = true
	w.overwrite = overwrite

	opts := []func(*exiftool.Exiftool) error{exiftool.SetExiftoolBinaryPath(w.binary)}
	if !overwrite {
		opts = append(opts, exiftool.BackupOriginal())
	}
	et, err := exiftool.NewExiftool(opts...)
	if err != nil {
		w.startErr = fmt.Errorf("%w: %v", ErrStart, err)
		return nil, w.startErr
	}
	w.et = et
	return et, nil
}

// Close stops the exiftool process if one was started.
func (w *Writer) Close() error {
	if w.et == nil {
		return nil
	}
	err := w.et.Close()
	w.et = nil
	return err
}
