// Command featureprobe runs the numeric feature probe.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/featureprobe/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		if cli.ShouldPrint(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
