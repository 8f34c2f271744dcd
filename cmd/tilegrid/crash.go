package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// crashScreen is finalized before a panic is printed so the trace lands on a sane terminal
var crashScreen tcell.Screen

// handleCrash restores the terminal, prints the panic with its stack trace and exits
func handleCrash(r any) {
	if r == nil {
		return
	}

	if crashScreen != nil {
		crashScreen.Fini()
	}

	fmt.Fprintf(os.Stderr, "\n\x1b[31mTILEGRID CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())

	os.Exit(1)
}
