//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

// Parcels scrapes the parcels listed in pids.txt from the snapshots in
// pages/ and archives the run.
func Parcels() error {
	return runBin("parcels", "pids.txt", "--pages-dir", "pages", "--output-dir", "output", "--archive", "archive/recordscrape.db")
}
