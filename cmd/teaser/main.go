package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

var version = "dev"

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// exitError carries a process exit code for a failure that was already logged.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }
