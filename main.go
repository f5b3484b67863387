package main

import (
	"os"

	"github.com/satooru65536/projfeed/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
