package main

import (
	"os"

	"github.com/mph-llm-experiments/adate/internal/cli"
)

func main() {
	os.Exit(cli.NewApp().Run(os.Args[1:]))
}
