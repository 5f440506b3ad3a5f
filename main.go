package main

import (
	"os"

	"github.com/certready/certready/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
