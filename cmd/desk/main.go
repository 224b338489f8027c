package main

import (
	"os"

	"github.com/shumcap/desk/cmd/desk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
