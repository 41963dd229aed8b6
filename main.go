package main

import (
	"os"

	"pl0c/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
