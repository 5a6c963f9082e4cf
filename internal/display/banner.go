package display

import (
	"fmt"
	"io"

	"github.com/backmassage/extsort/internal/term"
)

// PrintBanner writes the ASCII art banner to w; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, term.Magenta)
	fmt.Fprint(w, `           _                  _
  _____  _| |_ ___  ___  _ __| |_
 / _ \ \/ / __/ __|/ _ \| '__| __|
|  __/>  <| |_\__ \ (_) | |  | |_
 \___/_/\_\\__|___/\___/|_|   \__|
`)
	if term.Enabled() {
		fmt.Fprintln(w, term.NC)
	}
}
