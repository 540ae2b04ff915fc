// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vision

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pdiddy/recordscrape/internal/httputil"
	"github.com/pdiddy/recordscrape/pkg/types"
)

// Source returns the raw HTML of a parcel page.
type Source interface {
	Page(ctx context.Context, pid string) ([]byte, error)
}

// HTTPSource fetches pages from the assessment site.
type HTTPSource struct {
	Client      *http.Client
	URLTemplate string
	UserAgent   string
	MaxRetries  int
}

// Page fetches the page of pid, retrying throttled requests.
func (s *HTTPSource) Page(ctx context.Context, pid string) ([]byte, error) {
	return httputil.GetPage(ctx, s.Client, fmt.Sprintf(s.URLTemplate, url.QueryEscape(pid)), s.UserAgent, s.MaxRetries)
}

// DirSource reads saved snapshots named <pid>.html.
type DirSource struct {
	Dir string
}

// Page reads the snapshot of pid.
func (s DirSource) Page(_ context.Context, pid string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, pid+".html"))
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	return data, nil
}

// NewSource picks the snapshot directory when one is configured and the
// live site otherwise.
func NewSource(cfg types.ParcelConfig) Source {
	if cfg.PagesDir != "" {
		return DirSource{Dir: cfg.PagesDir}
	}
	return &HTTPSource{
		Client:      &http.Client{Timeout: cfg.Timeout},
		URLTemplate: cfg.ParcelURL,
		UserAgent:   cfg.UserAgent,
		MaxRetries:  cfg.MaxRetries,
	}
}
