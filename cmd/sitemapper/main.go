package main

import (
	"os"

	"github.com/oakfield-labs/sitemapper-cli/internal/adapters/driving/cli"
)

func main() {
	os.Exit(cli.Execute())
}
