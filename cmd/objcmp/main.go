// Command objcmp compares typed SQL values from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/objcmp/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "objcmp: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
