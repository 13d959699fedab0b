package main

import (
	"os"

	"github.com/thenoetrevino/pastel/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
