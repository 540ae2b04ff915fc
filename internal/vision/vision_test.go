// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vision

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/recordscrape/internal/archive"
	"github.com/pdiddy/recordscrape/internal/tsv"
	"github.com/pdiddy/recordscrape/pkg/types"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

const salesTable = `<table id="MainContent_grdSales">
<tr><th>Owner</th><th>Sale Price</th><th>Certificate</th><th>Book &amp; Page</th><th>Instrument</th><th>Sale Date</th></tr>
<tr><td>SMITH JOHN</td><td>$350,000</td><td></td><td>1234/0567</td><td>WD</td><td>04/06/2021</td></tr>
</table>`

func page(pid string, withMBLU bool) string {
	mblu := ""
	if withMBLU {
		mblu = `<span id="MainContent_lblMblu">201/086/000//</span>`
	}
	return fmt.Sprintf(`<html><body>
<span id="MainContent_lblPid">%s</span>
<span id="MainContent_lblGenOwner">SMITH JOHN</span>
<span id="MainContent_lblLocation">12 DORCHESTER RD</span>
%s
<span id="MainContent_lblGenAssessment">$312,400</span>
<span id="MainContent_lblGenAppraisal">$446,300</span>
%s
</body></html>`, pid, mblu, salesTable)
}

// snapshotDir writes the pages of a small batch: one good, one suppressed,
// one the site failed to load and one missing its MBLU. 1004 has no file.
func snapshotDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	pages := map[string]string{
		"1001": page("1001", true),
		"1002": `<html><body><span id="MainContent_lblPid">1002</span></body></html>`,
		"1003": `<html><body>There was an error loading the parcel.</body></html>`,
		"1005": page("1005", false),
	}
	for pid, html := range pages {
		require.NoError(t, os.WriteFile(filepath.Join(dir, pid+".html"), []byte(html), 0o644))
	}
	return dir
}

func batchIDs() []ParcelID {
	return []ParcelID{
		{PID: "1001", Map: "201", Lot: "086"},
		{PID: "1002", Map: "201", Lot: "087"},
		{PID: "1003", Map: "202", Lot: "001"},
		{PID: "1004", Map: "202", Lot: "002"},
		{PID: "1005", Map: "203", Lot: "010"},
	}
}

func testScraper(t *testing.T, pagesDir string) *Scraper {
	t.Helper()
	s := NewScraper(types.ParcelConfig{PagesDir: pagesDir, DataVersion: "vgsi-1", IDPlacement: types.PlaceTrailing}, nil)
	s.Now = func() time.Time { return fixedNow }
	return s
}

func readStream(t *testing.T, sums []types.StreamSummary, name string) []string {
	t.Helper()
	for _, s := range sums {
		if s.Name == name {
			data, err := os.ReadFile(s.Path)
			require.NoError(t, err)
			return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
		}
	}
	t.Fatalf("stream %s not written", name)
	return nil
}

func TestReadPIDs(t *testing.T) {
	in := "# VisionID,TaxMap,Lot\n1001,201,086\n\n1002, 201 ,087\n1003\n"
	ids, err := ReadPIDs(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []ParcelID{
		{PID: "1001", Map: "201", Lot: "086"},
		{PID: "1002", Map: "201", Lot: "087"},
		{PID: "1003"},
	}, ids)
}

func TestScrapeBatch(t *testing.T) {
	s := testScraper(t, snapshotDir(t))
	ctx := context.Background()
	out, err := tsv.OpenStreams(ctx, t.TempDir(), fixedNow, nil, s.StreamSpecs()...)
	require.NoError(t, err)

	var progress bytes.Buffer
	result := s.ScrapeBatch(ctx, batchIDs(), out, &progress)
	require.NoError(t, out.Close())

	assert.Equal(t, BatchResult{Scraped: 1, Suppressed: 1, Failed: 3}, result)
	assert.True(t, result.HasFailures())
	assert.Contains(t, progress.String(), "scraped: 1001")
	assert.Contains(t, progress.String(), "suppressed: 1002")
	assert.Contains(t, progress.String(), "failed:  1003 (parcel unavailable: PID 1003, map 202 lot 001)")
	assert.Contains(t, progress.String(), "failed:  1004")
	assert.Contains(t, progress.String(), "Batch summary: 1 scraped, 1 suppressed, 3 failed (total: 5)")

	sums := out.Summaries()
	main := readStream(t, sums, StreamMain)
	require.Len(t, main, 2)
	assert.True(t, strings.HasPrefix(main[1], "1001\tSMITH JOHN\t"))

	assert.Equal(t, []string{
		"PID\tMap\tLot\tCollectedOn",
		"1002\t201\t087\t2024-05-01 10:00:00",
	}, readStream(t, sums, StreamSuppressed))

	owners := readStream(t, sums, HistoryStreams[types.KindOwners])
	assert.Equal(t, []string{
		"Owner\tSale Price\tCertificate\tBook&Page\tBook\tPage\tInstrument\tSale Date\tPID\tCollectedOn",
		"SMITH JOHN\t350000\t\t1234/0567\t1234\t0567\tWD\t2021-04-06\t1001\t2024-05-01",
		"SMITH JOHN\t350000\t\t1234/0567\t1234\t0567\tWD\t2021-04-06\t1005\t2024-05-01",
	}, owners, "history rows are kept when the main record is dropped")

	assert.Len(t, readStream(t, sums, HistoryStreams[types.KindSpecialLand]), 1, "header only")
}

func TestScrapeBatchCancelled(t *testing.T) {
	s := testScraper(t, snapshotDir(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := tsv.OpenStreams(context.Background(), t.TempDir(), fixedNow, nil, s.StreamSpecs()...)
	require.NoError(t, err)
	defer out.Close()

	var progress bytes.Buffer
	result := s.ScrapeBatch(ctx, batchIDs(), out, &progress)
	assert.True(t, result.Interrupted)
	assert.Zero(t, result.Total())
}

func TestHTTPSource(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, page(r.URL.Query().Get("pid"), true))
	}))
	defer ts.Close()

	src := &HTTPSource{Client: ts.Client(), URLTemplate: ts.URL + "/Parcel.aspx?pid=%s", UserAgent: "recordscrape/test", MaxRetries: 1}
	body, err := src.Page(context.Background(), "1001")
	require.NoError(t, err)
	assert.Contains(t, string(body), `<span id="MainContent_lblPid">1001</span>`)
	assert.Equal(t, "recordscrape/test", gotUA)
}

func TestNewSource(t *testing.T) {
	assert.IsType(t, DirSource{}, NewSource(types.ParcelConfig{PagesDir: "pages"}))
	assert.IsType(t, &HTTPSource{}, NewSource(types.ParcelConfig{ParcelURL: "https://example.test/?pid=%s"}))
}

func TestRunWritesManifestAndArchive(t *testing.T) {
	s := testScraper(t, snapshotDir(t))
	outDir := t.TempDir()
	store, err := archive.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	var progress bytes.Buffer
	m, result, err := s.Run(context.Background(), batchIDs()[:2], outDir, "vgsi-1", []string{"pids.txt"}, store, &progress)
	require.NoError(t, err)
	assert.False(t, result.HasFailures())

	assert.Equal(t, "2024-05-01_10-00-00", m.ID)
	assert.Equal(t, 2, m.Processed)
	assert.Equal(t, 1, m.Succeeded)
	assert.Equal(t, 1, m.Suppressed)
	assert.Len(t, m.Streams, len(types.TableKinds)+2)

	onDisk, err := archive.ReadManifest(filepath.Join(outDir, "manifest_2024-05-01_10-00-00.yaml"))
	require.NoError(t, err)
	assert.Equal(t, m.Streams, onDisk.Streams)

	var rebuilt bytes.Buffer
	require.NoError(t, store.ExportTSV(context.Background(), &rebuilt, m.ID, StreamSuppressed))
	assert.Equal(t, "PID\tMap\tLot\tCollectedOn\n1002\t201\t087\t2024-05-01 10:00:00\n", rebuilt.String())
}
