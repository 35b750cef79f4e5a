package main

import (
	"os"

	"github.com/rustyeddy/orderdesk/cmd/orderdesk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
