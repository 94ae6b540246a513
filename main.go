package main

import (
	"os"

	"github.com/abhisek/classpick/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
