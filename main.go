package main

import (
	"os"

	"github.com/fabrica-go/fabrica/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
