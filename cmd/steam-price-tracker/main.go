// Package main is the entry point for the steam-price-tracker.
package main

import (
	"os"

	"github.com/donaldgifford/steam-price-tracker/cmd/steam-price-tracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
