// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/recordscrape/internal/archive"
	"github.com/pdiddy/recordscrape/internal/vision"
	"github.com/pdiddy/recordscrape/pkg/types"
)

const (
	defaultParcelURL   = "https://gis.vgsi.com/lymeNH/Parcel.aspx?pid=%s"
	defaultTimeout     = 60 * time.Second
	defaultDelay       = 500 * time.Millisecond
	defaultMaxRetries  = 3
	defaultUserAgent   = "recordscrape/0.1"
	defaultOutputDir   = "output"
	defaultDataVersion = "vgsi-1"
)

var parcelsCmd = &cobra.Command{
	Use:   "parcels <pid-file>",
	Short: "Scrape assessment-site parcel pages listed in a PID file",
	Long: `Parcels reads a PID file (one "PID,Map,Lot" line per parcel, '#' starts a
comment), fetches each parcel page and writes ScrapedData, the seven history
streams and Suppressed as timestamped TSV files in the output directory.

With --pages-dir the pages are read from saved <pid>.html snapshots instead
of the live site. A parcel that fails is reported and the run continues.`,
	Args: cobra.ExactArgs(1),
	RunE: runParcels,
}

func init() {
	f := parcelsCmd.Flags()
	f.String("url", defaultParcelURL, "parcel page URL template; %s is replaced by the PID")
	f.String("pages-dir", "", "read <pid>.html snapshots from this directory instead of fetching")
	f.Duration("delay", defaultDelay, "delay between consecutive page requests")
	f.Duration("timeout", defaultTimeout, "HTTP request timeout")
	f.Int("retries", defaultMaxRetries, "retries on HTTP 429 and 5xx responses")
	f.String("user-agent", defaultUserAgent, "User-Agent header")
	f.String("output-dir", defaultOutputDir, "directory for the TSV streams and manifest")
	f.String("data-version", defaultDataVersion, "value of the Version column")
	f.String("id-placement", string(types.PlaceTrailing), "PID/CollectedOn position in history rows: trailing or leading")
	f.String("archive", "", "SQLite archive to copy every row into")

	for key, flag := range map[string]string{
		"parcels.parcel_url":    "url",
		"parcels.pages_dir":     "pages-dir",
		"parcels.request_delay": "delay",
		"parcels.timeout":       "timeout",
		"parcels.max_retries":   "retries",
		"parcels.user_agent":    "user-agent",
		"parcels.output_dir":    "output-dir",
		"parcels.data_version":  "data-version",
		"parcels.id_placement":  "id-placement",
		"parcels.archive_path":  "archive",
	} {
		viper.BindPFlag(key, f.Lookup(flag))
	}

	rootCmd.AddCommand(parcelsCmd)
}

// parcelConfig assembles the parcel settings from flags, environment and
// config file.
func parcelConfig() (types.ParcelConfig, error) {
	cfg := types.ParcelConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:    viper.GetDuration("parcels.timeout"),
			UserAgent:  viper.GetString("parcels.user_agent"),
			MaxRetries: viper.GetInt("parcels.max_retries"),
		},
		ParcelURL:    viper.GetString("parcels.parcel_url"),
		PagesDir:     viper.GetString("parcels.pages_dir"),
		RequestDelay: viper.GetDuration("parcels.request_delay"),
		OutputDir:    viper.GetString("parcels.output_dir"),
		DataVersion:  viper.GetString("parcels.data_version"),
		IDPlacement:  types.IDPlacement(viper.GetString("parcels.id_placement")),
		ArchivePath:  viper.GetString("parcels.archive_path"),
	}
	switch cfg.IDPlacement {
	case types.PlaceTrailing, types.PlaceLeading:
	default:
		return cfg, fmt.Errorf("invalid id placement %q (want trailing or leading)", cfg.IDPlacement)
	}
	return cfg, nil
}

func runParcels(cmd *cobra.Command, args []string) error {
	cfg, err := parcelConfig()
	if err != nil {
		return err
	}
	ids, err := vision.ReadPIDFile(args[0])
	if err != nil {
		return err
	}

	store, err := openArchive(cfg.ArchivePath)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	scraper := vision.NewScraper(cfg, slog.Default())
	_, result, err := scraper.Run(ctx, ids, cfg.OutputDir, cfg.DataVersion, args, store, os.Stdout)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d parcel(s) failed", result.Failed)
	}
	if result.Interrupted {
		return fmt.Errorf("interrupted after %d parcel(s)", result.Total())
	}
	return nil
}

// openArchive opens the archive at path, or returns nil when path is empty.
func openArchive(path string) (*archive.Store, error) {
	if path == "" {
		return nil, nil
	}
	return archive.Open(path)
}
