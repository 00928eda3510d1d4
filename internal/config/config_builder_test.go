// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
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

func parsedFlags(t *testing.T, args ...string) *FlagValues {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fv := BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fv
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Nil(t, b.flags)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayersOverride verifies that non-zero fields of later layers
// win while zero fields keep earlier values.
func TestBuild_LaterLayersOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{Kind: AdapterHTTP, Table: "notes"}},
		&StructuredConfig{Adapter: Adapter{Kind: AdapterPostgres}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, AdapterPostgres, cfg.Adapter.Kind)
	assert.Equal(t, "notes", cfg.Adapter.Table)
}

func TestBuild_FlagsMergedLast(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{DB: DB{DSN: "env.db"}}})
	b.withFlags(parsedFlags(t, "--db", "flag.db"))
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{DB: DB{DSN: "file.db"}}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
}

// ── withDefaults / withEnv / withFlags ───────────────────────────────────────

func TestWithDefaults_AppendsDefaults(t *testing.T) {
	b := newConfigBuilder().withDefaults()

	require.Len(t, b.configs, 1)
	assert.Equal(t, AdapterHTTP, b.configs[0].Adapter.Kind)
	assert.Equal(t, "notes.db", b.configs[0].Storage.DB.DSN)
	assert.Equal(t, time.Minute, b.configs[0].Workers.SyncInterval)
}

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("ADAPTER_KIND", "postgres")
	t.Setenv("STORAGE_DB_DSN", "env.db")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "postgres", b.configs[0].Adapter.Kind)
	assert.Equal(t, "env.db", b.configs[0].Storage.DB.DSN)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("ADAPTER_BREAKER_FAILURES", "many")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_NilIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Nil(t, b.flags)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredFileConfig{}
	payload.Adapter.Kind = "supabase"
	payload.Adapter.Table = "json_notes"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "supabase", b.configs[1].Adapter.Kind)
	assert.Equal(t, "json_notes", b.configs[1].Adapter.Table)
}

func TestWithFile_FlagPathWins(t *testing.T) {
	envPayload := StructuredFileConfig{}
	envPayload.Adapter.Table = "from-env-path"
	flagPayload := StructuredFileConfig{}
	flagPayload.Adapter.Table = "from-flag-path"

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: writeTempJSONConfig(t, envPayload)})
	b.withFlags(parsedFlags(t, "-c", writeTempJSONConfig(t, flagPayload)))
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "from-flag-path", b.configs[1].Adapter.Table)
}

func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: "/nonexistent/config.json"})
	b.withFile()

	assert.Error(t, b.err)
}

func TestWithFile_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: f.Name()})
	b.withFile()

	assert.Error(t, b.err)
}

// ── GetStructuredConfig ──────────────────────────────────────────────────────

func TestGetStructuredConfig_PriorityOrder(t *testing.T) {
	payload := StructuredFileConfig{}
	payload.Adapter.Table = "file_notes"
	payload.Storage.DB.DSN = "file.db"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("CONFIG", path)
	t.Setenv("STORAGE_DB_DSN", "env.db")
	t.Setenv("ADAPTER_ADDRESS", "env-host:8080")

	cfg, err := GetStructuredConfig(parsedFlags(t, "--address", "flag-host:9090"))
	require.NoError(t, err)

	assert.Equal(t, "file.db", cfg.Storage.DB.DSN, "file overrides env")
	assert.Equal(t, "file_notes", cfg.Adapter.Table, "file overrides defaults")
	assert.Equal(t, "flag-host:9090", cfg.Adapter.HTTPAddress, "flags override everything")
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout, "defaults survive")
}
