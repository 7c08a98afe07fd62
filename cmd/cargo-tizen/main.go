package main

import (
	"os"

	"github.com/lixenwraith/cargo-tizen/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
