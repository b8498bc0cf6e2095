package main

import (
	"fmt"
	"os"

	"github.com/stockroom/stockroom/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "stockroom:", err)
		os.Exit(1)
	}
}
