package main

import (
	"github.com/harlequix/hamming/cmd"
)

func main() {
	cmd.Execute()
}
