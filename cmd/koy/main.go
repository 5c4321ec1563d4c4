package main

import (
	"os"

	"github.com/msto63/koy/cmd/koy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
