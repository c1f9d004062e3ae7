// Command ntmul multiplies arbitrary-precision decimal integers using a
// number-theoretic transform. It can run as a one-shot CLI, an interactive
// REPL, or an HTTP server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/ntmul/internal/app"
	apperrors "github.com/agbru/ntmul/internal/errors"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, out, errOut *os.File) int {
	if app.HasVersionFlag(args[1:]) {
		app.PrintVersion(out)
		return apperrors.ExitSuccess
	}

	a, err := app.New(args, errOut)
	if err != nil {
		if app.IsHelpError(err) {
			return apperrors.ExitSuccess
		}
		fmt.Fprintf(errOut, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	return a.Run(context.Background(), out)
}
