package main

import (
	"os"

	"github.com/msto63/mdwcal/cmd/caldate/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
