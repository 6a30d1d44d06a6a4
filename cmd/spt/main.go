// Package main is the entry point for the spt CLI client.
package main

import (
	"github.com/donaldgifford/steam-price-tracker/cmd/spt/cmd"
)

func main() {
	cmd.Execute()
}
