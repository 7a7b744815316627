package main

import (
	"os"

	"github.com/msto63/hlog/cmd/hlog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
