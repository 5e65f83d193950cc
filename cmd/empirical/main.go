// Command empirical times functions across a range of input sizes.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/empiricalab/empirical/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	// ExitErrors from commands have already been reported through the
	// output formatter; anything else (flag parsing, unknown command) has not.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) || exitErr.Err == nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
