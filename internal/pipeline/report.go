package pipeline

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/backmassage/exifdate/internal/logging"
	"github.com/backmassage/exifdate/internal/term"
)

// Reporter prints exactly one line per processed file. Dry-run commands and
// successes go to out; skips and errors (path + cause) go to errOut. Lines
// carry no timestamps so identical runs print identical output.
type Reporter struct {
	out    io.Writer
	errOut io.Writer
	log    *logging.Logger
}

// NewReporter returns a Reporter on stdout/stderr that also records every
// line in log's file sink (log may be nil).
func NewReporter(log *logging.Logger) *Reporter {
	return NewReporterTo(os.Stdout, os.Stderr, log)
}

// NewReporterTo is [NewReporter] with explicit streams.
func NewReporterTo(out, errOut io.Writer, log *logging.Logger) *Reporter {
	return &Reporter{out: out, errOut: errOut, log: log}
}

// Report prints r. Non-terminal results are ignored.
func (rp *Reporter) Report(r Result) {
	switch r.State {
	case StateEmitted:
		rp.write(rp.out, "DRYRUN", "", r.Command.String())
	case StateApplied:
		rp.write(rp.out, "OK", term.Green.Render("[OK]")+" ",
			fmt.Sprintf("%s -> %s", displayPath(r.Path), r.Command.Timestamp()))
	case StateSkipped:
		rp.write(rp.errOut, "SKIP", term.Yellow.Render("[SKIP]")+" ",
			fmt.Sprintf("%s: %v", displayPath(r.Path), r.Err))
	case StateErrored:
		rp.write(rp.errOut, "FAIL", term.Red.Render("[FAIL]")+" ",
			fmt.Sprintf("%s: %v", displayPath(r.Path), r.Err))
	}
}

func (rp *Reporter) write(w io.Writer, level, tag, text string) {
	_, _ = io.WriteString(w, tag+text+"\n")
	if rp.log != nil {
		rp.log.Record(level, text)
	}
}

// displayPath quotes paths holding a line break so each result stays on one line.
func displayPath(p string) string {
	if strings.ContainsAny(p, "\n\r") {
		return strconv.Quote(p)
	}
	return p
}
