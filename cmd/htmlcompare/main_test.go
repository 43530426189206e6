package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foomo/htmlcompare"
)

func getHtdocs(path ...string) string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(append([]string{filepath.Dir(filename), "..", "..", "example", "htdocs"}, path...)...)
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newRootCmd(out, errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestValidateCmd(t *testing.T) {
	current, original := getHtdocs("index-changed.html"), getHtdocs("index.html")

	out, _, err := run(t, "validate", original, original)
	require.NoError(t, err)
	assert.Contains(t, out, "validation report valid")

	out, _, err = run(t, "validate", current, original)
	assert.ErrorIs(t, err, errInvalid)
	assert.Contains(t, out, "validation report invalid")

	out, _, err = run(t, "validate", current, original, "--ignore-attribute", "data-test-id", "--format", "json")
	require.NoError(t, err)
	r := htmlcompare.Report{}
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.True(t, r.Valid)

	_, _, err = run(t, "validate", current, original, "--format", "xml")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errInvalid)

	_, _, err = run(t, "validate", getHtdocs("missing.html"), original)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateCmdIgnoreFlags(t *testing.T) {
	dir := t.TempDir()
	current := filepath.Join(dir, "current.html")
	original := filepath.Join(dir, "original.html")
	require.NoError(t, os.WriteFile(current, []byte(`<p class="a x">hello</p><script>track()</script>`), 0o644))
	require.NoError(t, os.WriteFile(original, []byte(`<p class="a">world</p>`), 0o644))

	_, _, err := run(t, "validate", current, original)
	assert.ErrorIs(t, err, errInvalid)

	out, errOut, err := run(t, "validate", current, original,
		"--ignore-tag", "script", "--ignore-text", "p", "--ignore-class", "x", "--no-count", "--dump", "--format", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "valid true")
	assert.Contains(t, errOut, "Valid: (bool) true")
}

func TestValidateCmdConfig(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "htmlcompare.yaml")
	require.NoError(t, os.WriteFile(conf, []byte(`
ignore:
  - tag: li
    attributes: [data-test-id]
log:
  level: warn
`), 0o644))
	_, _, err := run(t, "validate", getHtdocs("index-changed.html"), getHtdocs("index.html"), "--config", conf)
	require.NoError(t, err)

	_, _, err = run(t, "validate", getHtdocs("index.html"), getHtdocs("index.html"), "--log-level", "loud")
	assert.Error(t, err)
}

func TestTagsAndAttributesCmd(t *testing.T) {
	out, _, err := run(t, "tags", getHtdocs("index.html"))
	require.NoError(t, err)
	assert.Equal(t, "html\nhead\ntitle\nbody\nh1\nul\nli\n", out)

	out, _, err = run(t, "attributes", getHtdocs("index.html"))
	require.NoError(t, err)
	assert.Equal(t, "class\ndata-test-id\n", out)
}

func TestSnapshotCmd(t *testing.T) {
	target := filepath.Join(t.TempDir(), "snapshots", "index.html")
	_, _, err := run(t, "snapshot", getHtdocs("index.html"), target)
	require.NoError(t, err)
	written, err := os.ReadFile(target)
	require.NoError(t, err)
	original, err := os.ReadFile(getHtdocs("index.html"))
	require.NoError(t, err)
	assert.Equal(t, original, written)
}
