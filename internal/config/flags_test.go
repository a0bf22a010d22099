package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "localhost:5000",
		"-d", "file:flags.db",
		"-config", "/etc/insighted.json",
		"-request-timeout", "20s",
		"-academic-year", "2024-2025",
		"-refresh-interval", "2m",
		"-enrich-concurrency", "3",
		"-log-level", "warn",
	})

	require.NoError(t, err)
	assert.Equal(t, "localhost:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "file:flags.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/insighted.json", cfg.JSONFilePath)
	assert.Equal(t, "2024-2025", cfg.App.AcademicYear)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, 3, cfg.Workers.EnrichConcurrency)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := ParseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_BadDuration(t *testing.T) {
	_, err := ParseFlags([]string{"-request-timeout", "fast"})
	require.Error(t, err)
}
