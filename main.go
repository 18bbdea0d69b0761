package main

import (
	"os"

	"github.com/mullzhang/vulturediff/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
