package main

import (
	"os"

	"github.com/Surfer12/microarch-lab-conversions/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
