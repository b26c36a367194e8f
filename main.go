package main

import (
	"os"

	"github.com/fastapply/fastapply/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
