package main

import (
	"os"

	"github.com/devika/pmquest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
