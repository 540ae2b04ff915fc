//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

// Summary lists the runs in archive/recordscrape.db.
func Summary() error {
	return runBin("archive", "summary", "--path", "archive/recordscrape.db")
}
