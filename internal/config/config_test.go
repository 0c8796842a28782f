package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 8, c.Cells.Count)
	assert.Equal(t, ":8080", c.Server.Addr)

	reg, err := c.Registry()
	require.NoError(t, err)
	assert.Equal(t, []string{"lfp", "nmc"}, reg.Tags())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
bench:
  name: pack-line-3
  group: 2
cells:
  count: 12
  seed: 99
server:
  addr: ":9000"
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "pack-line-3", c.Bench.Name)
	assert.Equal(t, 2, c.Bench.Group)
	assert.Equal(t, 12, c.Cells.Count)
	assert.Equal(t, int64(99), c.Cells.Seed)
	assert.Equal(t, ":9000", c.Server.Addr)
}

func TestLoad_CustomChemistries(t *testing.T) {
	path := writeConfig(t, `
cells:
  count: 4
  chemistries:
    lto:
      nominal_voltage: 2.4
      min_voltage: 1.8
      max_voltage: 2.8
`)

	c, err := Load(path)
	require.NoError(t, err)
	reg, err := c.Registry()
	require.NoError(t, err)
	assert.Equal(t, []string{"lto"}, reg.Tags())

	cfg, err := reg.Lookup("lto")
	require.NoError(t, err)
	assert.Equal(t, 2.4, cfg.NominalVoltage)
}

func TestLoad_RejectsBadEnvelope(t *testing.T) {
	path := writeConfig(t, `
cells:
  count: 4
  chemistries:
    bad:
      nominal_voltage: 3.0
      min_voltage: 3.4
      max_voltage: 3.6
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chemistry")
}

func TestLoad_RejectsBadCount(t *testing.T) {
	path := writeConfig(t, `
cells:
  count: -1
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cells.count")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
