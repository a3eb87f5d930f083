package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/truestock/truestock/internal/adapters/outbound/config"
	"github.com/truestock/truestock/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, appconfig.FileName), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
currency: "$"
log:
  level: debug
  format: json
http:
  addr: "127.0.0.1:9090"
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "$", cfg.Currency)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, domain.LogFormatJSON, cfg.Log.Format)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTP.Addr)
}

func TestYAMLLoader_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `currency: "EUR"`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestYAMLLoader_Seed(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
seed:
  - id: t100
    category: tools
    name: "Claw Hammer"
    price: 12.50
    quantity: 4
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	require.Len(t, cfg.Seed, 1)
	assert.Equal(t, domain.SeedProduct{ID: "t100", Category: "tools", Name: "Claw Hammer", Price: "12.50", Quantity: "4"}, cfg.Seed[0])
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .truestock.yaml")
}

func TestYAMLLoader_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
log:
  level: chatty
`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .truestock.yaml")
	assert.Contains(t, err.Error(), "Log.Level")
}

func TestYAMLLoader_InvalidSeedEntry(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
seed:
  - id: t100
    category: tools
    price: 12.50
    quantity: 4
`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Seed[0].Name")
}

func TestYAMLLoader_EmptyFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_LogFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
log:
  file: truestock.log
  max_size_mb: 10
`)
	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "truestock.log", cfg.Log.File)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Equal(t, 0, cfg.Log.MaxBackups)
	assert.Equal(t, "warn", cfg.Log.Level)
}
