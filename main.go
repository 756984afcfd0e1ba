package main

import (
	"github.com/skorokithakis/dockrun/internal/cli"
)

func main() {
	cli.Execute()
}
