// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/recordscrape/pkg/types"
)

func TestNewLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "INFO"} {
		_, err := newLogger(level)
		assert.NoError(t, err, level)
	}
	_, err := newLogger("loud")
	assert.Error(t, err)
}

func TestParcelConfigDefaults(t *testing.T) {
	cfg, err := parcelConfig()
	require.NoError(t, err)
	assert.Equal(t, defaultParcelURL, cfg.ParcelURL)
	assert.Equal(t, defaultDelay, cfg.RequestDelay)
	assert.Equal(t, defaultMaxRetries, cfg.MaxRetries)
	assert.Equal(t, types.PlaceTrailing, cfg.IDPlacement)
	assert.Equal(t, defaultDataVersion, cfg.DataVersion)
}

func TestParcelConfigRejectsPlacement(t *testing.T) {
	viper.Set("parcels.id_placement", "middle")
	t.Cleanup(func() { viper.Set("parcels.id_placement", string(types.PlaceTrailing)) })

	_, err := parcelConfig()
	assert.ErrorContains(t, err, "invalid id placement")
}

func TestDeedConfigDefaults(t *testing.T) {
	cfg := deedConfig()
	assert.Equal(t, "Lyme", cfg.Jurisdiction)
	assert.Equal(t, defaultOutputDir, cfg.OutputDir)
}
