// Command ppd runs the selectable list explorer.
package main

import (
	"fmt"
	"os"

	"github.com/ppd-dev/ppd/internal/cli"
	"github.com/ppd-dev/ppd/pkg/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func run() error {
	return cli.Execute(version.GetVersion())
}

// exitCode extracts the process exit code from an error returned by run.
func exitCode(err error) int {
	return cli.ExitCode(err)
}
