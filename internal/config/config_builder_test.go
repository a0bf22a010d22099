package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs win and zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{AcademicYear: "2024-2025"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "localhost:5000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "2024-2025", cfg.App.AcademicYear)
	assert.Equal(t, DefaultPageSize, cfg.App.PageSize)
	assert.Equal(t, "localhost:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultEnrichConcurrency, cfg.Workers.EnrichConcurrency)
}

// ── sources ───────────────────────────────────────────────────────────────────

// TestBuilder_EnvFlagsJSONPriority verifies env < flags < JSON.
func TestBuilder_EnvFlagsJSONPriority(t *testing.T) {
	jsonPath := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"request_timeout": "45s"},
	})

	t.Setenv("ADAPTER_ADDRESS", "http://env:5000")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "20s")
	t.Setenv("STORAGE_DB_DATABASE_URI", "file:env.db")

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-a", "http://flag:5000", "-c", jsonPath}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "http://flag:5000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "file:env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, jsonPath, cfg.JSONFilePath)
}

// TestBuilder_WithJSONMissingFile verifies that a missing JSON file is
// reported by build.
func TestBuilder_WithJSONMissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	cfg, err := b.withJSON().build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// TestBuilder_WithFlagsError verifies that an unknown flag is reported.
func TestBuilder_WithFlagsError(t *testing.T) {
	_, err := newConfigBuilder().withFlags([]string{"-unknown"}).build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}
