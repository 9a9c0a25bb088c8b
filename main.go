package main

import (
	"os"

	"github.com/priyal/worklens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
