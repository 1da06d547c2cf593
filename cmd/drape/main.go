// Drape - outfit suggestions from your wardrobe
//
// Drape scores colour harmony, style coherence, occasion fit and category
// balance to rank complete looks built from a wardrobe file.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/drape/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
