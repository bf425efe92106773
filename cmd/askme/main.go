package main

import (
	"os"

	"github.com/M0hammed-Reda/askme/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
