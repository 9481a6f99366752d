// Command bptcheck checks a corpus of BPT markdown documents for footnote
// and textpart consistency.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/bptcheck/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := cli.NewRootCommand()
	cmd.SetArgs(args)

	err := cmd.Execute()
	var exitErr *cli.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return cli.GetExitCode(err)
}
