package main

import (
	"os"

	"filepart/internal/command"
)

func main() {
	if err := command.NewApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
