// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/recordscrape/internal/archive"
	"github.com/pdiddy/recordscrape/pkg/types"
)

const defaultArchivePath = "archive/recordscrape.db"

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect and export the run archive",
	Long: `Archive reads the SQLite database that parcels and deeds runs write when
--archive is set. Use summary to list runs and streams, export to rebuild a
stream as TSV, YAML or JSON.`,
}

var archiveSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "List archived runs and their streams",
	RunE:  runArchiveSummary,
}

var archiveExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write one archived stream to stdout",
	RunE:  runArchiveExport,
}

func init() {
	archiveCmd.PersistentFlags().String("path", defaultArchivePath, "archive database")
	viper.BindPFlag("archive.path", archiveCmd.PersistentFlags().Lookup("path"))

	archiveExportCmd.Flags().String("run", "", "run id (the timestamp in the stream file names)")
	archiveExportCmd.Flags().String("stream", "", "stream name, e.g. ScrapedData or Deeds")
	archiveExportCmd.Flags().String("format", "tsv", "output format: tsv, yaml or json")
	archiveExportCmd.MarkFlagRequired("run")
	archiveExportCmd.MarkFlagRequired("stream")

	archiveCmd.AddCommand(archiveSummaryCmd, archiveExportCmd)
	rootCmd.AddCommand(archiveCmd)
}

func archiveConfig() types.ArchiveConfig {
	return types.ArchiveConfig{Path: viper.GetString("archive.path")}
}

func runArchiveSummary(cmd *cobra.Command, args []string) error {
	store, err := archive.Open(archiveConfig().Path)
	if err != nil {
		return err
	}
	defer store.Close()

	sums, err := store.Summary(cmd.Context())
	if err != nil {
		return err
	}
	if len(sums) == 0 {
		fmt.Println("No runs archived.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tKIND\tSTARTED\tSTREAM\tROWS")
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", s.RunID, s.Kind, s.StartedAt, s.Stream, s.Rows)
	}
	return tw.Flush()
}

func runArchiveExport(cmd *cobra.Command, args []string) error {
	runID, _ := cmd.Flags().GetString("run")
	stream, _ := cmd.Flags().GetString("stream")
	format, _ := cmd.Flags().GetString("format")

	store, err := archive.Open(archiveConfig().Path)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	switch format {
	case "tsv":
		return store.ExportTSV(ctx, os.Stdout, runID, stream)
	case "yaml":
		return store.ExportYAML(ctx, os.Stdout, runID, stream)
	case "json":
		return store.ExportJSON(ctx, os.Stdout, runID, stream)
	default:
		return fmt.Errorf("unknown format %q (want tsv, yaml or json)", format)
	}
}
