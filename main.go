package main

import (
	"os"

	"github.com/Dr-Dre420/unlostai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
