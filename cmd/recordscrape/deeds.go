// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/recordscrape/internal/deed"
	"github.com/pdiddy/recordscrape/pkg/types"
)

var deedsCmd = &cobra.Command{
	Use:   "deeds <page.html>...",
	Short: "Extract recorded documents from saved registry-of-deeds result pages",
	Long: `Deeds reads saved registry search result pages and writes one Deeds row
per recorded document: identification, parties, jurisdiction and the
supplemental notes, return-to, consideration and associated documents.

A document whose block does not have exactly four zones is skipped and
reported; the rest of the page is still extracted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDeeds,
}

func init() {
	f := deedsCmd.Flags()
	f.String("output-dir", defaultOutputDir, "directory for the Deeds stream and manifest")
	f.String("jurisdiction", deed.DefaultJurisdiction, "value of the Legal column")
	f.String("archive", "", "SQLite archive to copy every row into")

	viper.BindPFlag("deeds.output_dir", f.Lookup("output-dir"))
	viper.BindPFlag("deeds.jurisdiction", f.Lookup("jurisdiction"))
	viper.BindPFlag("deeds.archive_path", f.Lookup("archive"))

	rootCmd.AddCommand(deedsCmd)
}

func deedConfig() types.DeedConfig {
	return types.DeedConfig{
		OutputDir:    viper.GetString("deeds.output_dir"),
		Jurisdiction: viper.GetString("deeds.jurisdiction"),
		ArchivePath:  viper.GetString("deeds.archive_path"),
	}
}

func runDeeds(cmd *cobra.Command, args []string) error {
	cfg := deedConfig()

	store, err := openArchive(cfg.ArchivePath)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	e := &deed.Extractor{Jurisdiction: cfg.Jurisdiction, Log: slog.Default()}
	_, result, err := e.Run(ctx, args, cfg.OutputDir, store, os.Stdout)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d page(s) failed, %d transaction(s) skipped", result.Failed, result.Skipped)
	}
	return nil
}
