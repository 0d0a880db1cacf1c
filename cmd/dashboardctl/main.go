// Dashboardctl inspects the gateway dashboard's fixture data from a terminal.
//
// It applies the same search, filter and sort rules as the dashboard tables
// and can run the QR pairing simulation.
//
// Usage:
//
//	dashboardctl [command] [flags]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
