// Ngon - A regular polygon renderer
//
// Ngon computes the vertices of a regular N-sided polygon and rasterizes
// it to an image file.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/ngon/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
