package main

import (
	"os"

	"github.com/dshills/confstore/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
