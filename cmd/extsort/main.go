// Command extsort sorts the files of a directory into one subdirectory per
// file extension.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// version and commit are set at build time via -ldflags.
var (
	version = "0.1.0-dev"
	commit  = "unknown"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		var rep reportedError
		if !errors.As(err, &rep) && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "extsort: %v\n", err)
		}
		os.Exit(1)
	}
}
