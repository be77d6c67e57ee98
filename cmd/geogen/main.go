// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package main is the entry point for the geogen CLI.
package main

import (
	"os"

	"github.com/2dChan/geogen/cmd/geogen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
