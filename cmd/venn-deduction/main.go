package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/venn-deduction/terminal"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// crash restores the terminal, prints the panic with its stack and exits
func crash(r any) {
	terminal.EmergencyReset(os.Stdout)
	// \r\n keeps raw-mode output from zig-zagging
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mVENN DEDUCTION CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}
