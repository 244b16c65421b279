// Package main is the entry point for the todo CLI.
package main

import (
	"os"

	"github.com/mdtodo/todo/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
