package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/kozmotic/kozmotic/internal/cli"
	"github.com/kozmotic/kozmotic/internal/ping"
)

func main() {
	err := cli.Execute()
	if err == nil {
		return
	}

	// Classified errors were already reported through the output envelope;
	// only the exit status remains. Audio device failures exit 2 so hook
	// scripts can tell environment problems from bad input.
	var perr *ping.Error
	if errors.As(err, &perr) {
		os.Exit(perr.ExitCode())
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
