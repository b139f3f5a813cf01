package main

import (
	"github.com/mfinn/pulse/cmd"
)

func main() {
	cmd.Execute()
}
