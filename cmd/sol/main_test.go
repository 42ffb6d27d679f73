package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oy3o/sol"
)

func writeSample(t *testing.T) string {
	t.Helper()
	doc := sol.New("settings")
	doc.Set("volume", sol.Number(0.8))
	doc.Set("player", sol.Object{
		{Key: "name", Value: sol.String("ada")},
		{Key: "level", Value: sol.Number(3)},
	})
	data, err := doc.MarshalBinary()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "settings.sol")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDumpText(t *testing.T) {
	path := writeSample(t)
	out, _, err := run(t, "dump", "--no-color", path)
	require.NoError(t, err)
	assert.Equal(t, `settings {
  volume = 0.8
  player = {
    name = "ada"
    level = 3
  }
}
`, out)
}

func TestDumpFilterAndHeader(t *testing.T) {
	path := writeSample(t)
	out, _, err := run(t, "dump", "--header", "-f", "vol", path)
	require.NoError(t, err)
	assert.Equal(t, "# AMF0, body-length, length 59\nsettings {\n  volume = 0.8\n}\n", out)
}

func TestDumpYAML(t *testing.T) {
	path := writeSample(t)
	out, _, err := run(t, "dump", "-o", "yaml", path)
	require.NoError(t, err)
	assert.Equal(t, `settings:
  volume: 0.8
  player:
    name: ada
    level: 3.0
`, out)
}

func TestDumpUnknownFormat(t *testing.T) {
	path := writeSample(t)
	_, _, err := run(t, "dump", "-o", "xml", path)
	assert.ErrorContains(t, err, `unknown format "xml"`)
}

func TestInfo(t *testing.T) {
	path := writeSample(t)
	out, _, err := run(t, "info", path)
	require.NoError(t, err)
	assert.Equal(t, "root:    settings\nversion: AMF0\nframing: body-length\nlength:  59\npairs:   2\n", out)
}

func TestReadErrors(t *testing.T) {
	_, _, err := run(t, "info", filepath.Join(t.TempDir(), "missing.sol"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.sol")
	require.NoError(t, os.WriteFile(bad, []byte("not a shared object"), 0o600))
	_, _, err = run(t, "dump", bad)
	assert.ErrorIs(t, err, sol.ErrUnsupportedFormat)
}

func TestSetWritesFile(t *testing.T) {
	path := writeSample(t)
	_, stderr, err := run(t, "set", "-v", path, "player.level", "7")
	require.NoError(t, err)
	assert.Contains(t, stderr, "wrote document")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc, err := sol.Decode(data)
	require.NoError(t, err)
	player, ok := doc.Get("player")
	require.True(t, ok)
	assert.Equal(t, sol.Number(7), player.(sol.Object)[1].Value)

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm(), "mode is kept")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary file is left behind")
}

func TestSetDryRun(t *testing.T) {
	path := writeSample(t)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	out, _, err := run(t, "set", "-n", path, "player.name", "grace")
	require.NoError(t, err)
	assert.Contains(t, out, `name = "grace"`)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSetErrors(t *testing.T) {
	path := writeSample(t)
	_, _, err := run(t, "set", path, "nope", "1")
	assert.ErrorContains(t, err, "path not found")

	_, _, err = run(t, "set", path, "volume", "loud")
	assert.Error(t, err)

	_, _, err = run(t, "set", path, "player", "1")
	assert.ErrorContains(t, err, "path not found", "objects are not leaves")
}
