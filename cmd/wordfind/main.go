package main

import (
	"os"

	"github.com/nelsbrock/wordfind/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
