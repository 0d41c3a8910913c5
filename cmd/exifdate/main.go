// Command exifdate sets the capture date embedded in photos and videos from
// the date found in each file's name.
//
// It walks a root directory, extracts a date from every matching file name,
// and either runs exiftool on the file or, with --dry-run, prints the
// equivalent exiftool command.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitInterrupted = 130
)

// exitError carries a process exit code out of the cobra command. A nil err
// means the failure was already reported through the logger.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintf(stderr, "exifdate: %v\n", ee.err)
		}
		return ee.code
	}
	fmt.Fprintf(stderr, "exifdate: %v\n", err)
	return exitFailure
}
