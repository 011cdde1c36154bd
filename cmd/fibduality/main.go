// Command fibduality simulates an analog in-memory computing array whose
// cell conductances follow the squared Fibonacci sequence. It runs the
// multiplication/GCD duality benchmark by default and exposes the same
// simulations over HTTP in server mode.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/fibduality/internal/app"
	apperrors "github.com/agbru/fibduality/internal/errors"
)

func main() {
	os.Exit(run())
}

// run contains the actual application logic, separated from main so the
// deferred cancel functions execute before os.Exit.
func run() int {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return apperrors.ExitSuccess
	}

	application, err := app.New(os.Args, os.Stdout, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			return apperrors.ExitSuccess
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	ctx, stopSignals := app.SetupSignals(context.Background())
	defer stopSignals()

	if err := application.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}
	return apperrors.ExitSuccess
}
