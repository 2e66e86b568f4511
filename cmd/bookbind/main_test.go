package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bookbind/bookbind"
	"github.com/bookbind/bookbind/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	m := NewMain()
	err := m.Run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, dir string, cfg *bookbind.Config) string {
	t.Helper()
	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	path := filepath.Join(dir, "book.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestRun_NoCommand(t *testing.T) {
	t.Parallel()

	_, _, err := run(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "--help")
	require.NoError(t, err)
}

func TestNewCmd(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "book.json")

	stdout, _, err := run(t, "new", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "__fill the title__")

	// A second run must not clobber the file.
	_, _, err = run(t, "new", path)
	require.Error(t, err)
}

func TestBuildCmd_MissingConfig(t *testing.T) {
	t.Parallel()

	_, _, err := run(t, "build", filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestStatusCmd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(out, 0755))

	cfgPath := writeConfig(t, dir, &bookbind.Config{
		Title:     "Mental Models",
		OutputDir: out,
		URLs:      []string{"https://untools.co/x/"},
	})

	db := sqlite.NewDB(filepath.Join(out, manifestFileName))
	require.NoError(t, db.Open())
	require.NoError(t, sqlite.NewManifestService(db).RecordConversion(context.Background(), &bookbind.Article{
		SourceURL:  "https://untools.co/x/",
		Title:      "Second-order thinking",
		OutputPath: "x/index.asciidoc",
	}))
	require.NoError(t, db.Close())

	stdout, _, err := run(t, "status", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Mental Models: 1 articles")
	assert.Contains(t, stdout, "Second-order thinking")
}

func TestStatusCmd_Empty(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(out, 0755))

	cfgPath := writeConfig(t, dir, &bookbind.Config{
		Title:     "Empty Book",
		OutputDir: out,
		URLs:      []string{"https://example.com/a"},
	})

	stdout, _, err := run(t, "status", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No conversions recorded")
}
