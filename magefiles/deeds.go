//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"path/filepath"
)

// Deeds extracts every saved registry page in pages/deeds/.
func Deeds() error {
	pages, err := filepath.Glob(filepath.Join("pages", "deeds", "*.html"))
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return fmt.Errorf("no pages in pages/deeds")
	}
	args := append([]string{"deeds", "--output-dir", "output", "--archive", "archive/recordscrape.db"}, pages...)
	return runBin(args...)
}
