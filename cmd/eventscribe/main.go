package main

import (
	"fmt"
	"os"

	"github.com/startwise/eventscribe/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Run(version); err != nil {
		fmt.Fprintf(os.Stderr, "eventscribe: %v\n", err)
		os.Exit(1)
	}
}
