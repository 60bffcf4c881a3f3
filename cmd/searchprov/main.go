// Package main provides the entry point for the searchprov CLI.
package main

import (
	"os"

	"github.com/kailas-cloud/searchprov/cmd/searchprov/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
