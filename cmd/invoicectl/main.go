// Package main is the entry point for invoicectl, the terminal client for the
// invoice viewer.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/jsamuelsen11/invoice-viewer/internal/adapters/cli"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
