// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by commands that fetch pages.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "recordscrape/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries is the number of retries on HTTP 429 and 5xx responses (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// IDPlacement selects where the parcel ID and collection date go in a
// history row.
type IDPlacement string

const (
	PlaceTrailing IDPlacement = "trailing"
	PlaceLeading  IDPlacement = "leading"
)

// ParcelConfig holds settings for scraping assessment-site parcel pages.
type ParcelConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// ParcelURL is a printf template taking the PID
	// (e.g. "https://gis.vgsi.com/lymeNH/Parcel.aspx?pid=%s").
	ParcelURL string `json:"parcel_url" yaml:"parcel_url" mapstructure:"parcel_url"`

	// PagesDir, when set, replaces the network with saved snapshots
	// named <pid>.html.
	PagesDir string `json:"pages_dir,omitempty" yaml:"pages_dir,omitempty" mapstructure:"pages_dir"`

	// RequestDelay is the pause between consecutive page requests (default 500ms).
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay" mapstructure:"request_delay"`

	// OutputDir receives the TSV streams and the run manifest.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// DataVersion is written into the Version column of every main record.
	DataVersion string `json:"data_version" yaml:"data_version" mapstructure:"data_version"`

	// IDPlacement positions PID/CollectedOn in the history tables.
	IDPlacement IDPlacement `json:"id_placement" yaml:"id_placement" mapstructure:"id_placement"`

	// ArchivePath, when set, archives every emitted line into a SQLite database.
	ArchivePath string `json:"archive_path,omitempty" yaml:"archive_path,omitempty" mapstructure:"archive_path"`
}

// DeedConfig holds settings for extracting recorded-document search results.
type DeedConfig struct {
	// OutputDir receives the deeds TSV stream.
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Jurisdiction is emitted verbatim in the Legal column (default "Lyme").
	Jurisdiction string `json:"jurisdiction" yaml:"jurisdiction" mapstructure:"jurisdiction"`

	// ArchivePath, when set, archives every emitted line into a SQLite database.
	ArchivePath string `json:"archive_path,omitempty" yaml:"archive_path,omitempty" mapstructure:"archive_path"`
}

// ArchiveConfig holds settings for the archive commands.
type ArchiveConfig struct {
	// Path is the SQLite database written by parcel and deed runs.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}
