package display

import (
	"io"

	"github.com/backmassage/exifdate/internal/term"
)

const banner = `          _  __     _       _
  _____ _(_)/ _| __| | __ _| |_ ___
 / _ \ \/ / | |_ / _` + "`" + ` |/ _` + "`" + ` | __/ _ \
|  __/>  <| |  _| (_| | (_| | ||  __/
 \___/_/\_\_|_|  \__,_|\__,_|\__\___|
`

// PrintBanner writes the ASCII art banner to w, in magenta when colors are enabled.
func PrintBanner(w io.Writer) {
	_, _ = io.WriteString(w, term.Magenta.Render(banner)+"\n")
}
