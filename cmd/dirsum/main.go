// Package main is the entrypoint of dirsum.
package main

import (
	"context"
	"os"

	"github.com/idelchi/dirsum/internal/cli"
)

func main() {
	// fang has already printed the error.
	if err := cli.New(version).Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
