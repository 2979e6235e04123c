// Package main is the entry point for the booksctl CLI.
package main

import (
	"os"

	"github.com/SscSPs/firm_books/cmd/booksctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
