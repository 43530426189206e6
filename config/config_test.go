package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foomo/htmlcompare"
)

const (
	confComplete = `
---
countElements: false
ignoreTags:
  - script
  - noscript
ignore:
  - attributes: [data-test-id]
  - tag: p
    attributes: ["text()"]
  - tag: li
    classes: [active]
  - tag: span
    attributes: []
cacheSize: 16
loader:
  respectRobots: true
  agent: my-agent
log:
  env: dev
  level: debug
...
`
	confMinimal = `
---
ignoreTags: [script]
...
`
	confEmptyRule = `
---
ignore:
  - {}
...
`
	confBadLevel = `
---
log:
  level: loud
...
`
)

func TestLoad(t *testing.T) {
	cnf, errCnf := Load([]byte(confComplete))
	require.NoError(t, errCnf)
	assert.False(t, cnf.CountElements)
	assert.Equal(t, []string{"script", "noscript"}, cnf.IgnoreTags)
	assert.Equal(t, []htmlcompare.IgnoreRule{
		{Attributes: []string{"data-test-id"}},
		{TagName: "p", Attributes: []string{htmlcompare.TextAttribute}},
		{TagName: "li", ClassNames: []string{"active"}},
		{TagName: "span", Attributes: []string{}},
	}, cnf.Ignore)
	assert.Equal(t, 16, cnf.CacheSize)
	assert.True(t, cnf.Loader.RespectRobots)
	assert.Equal(t, "my-agent", cnf.Loader.Agent)
	assert.Equal(t, Log{Env: "dev", Level: "debug"}, cnf.Log)

	cnf, errCnf = Load([]byte(confMinimal))
	require.NoError(t, errCnf)
	assert.True(t, cnf.CountElements)
	assert.Equal(t, "prod", cnf.Log.Env)
	assert.Equal(t, "info", cnf.Log.Level)
	assert.Nil(t, cnf.Ignore)

	_, errCnf = Load([]byte(confEmptyRule))
	assert.Error(t, errCnf)

	_, errCnf = Load([]byte(confBadLevel))
	assert.Error(t, errCnf)

	_, errCnf = Load([]byte("ignoreTags: {"))
	assert.Error(t, errCnf)
}

func TestGet(t *testing.T) {
	file := filepath.Join(t.TempDir(), "htmlcompare.yaml")
	require.NoError(t, os.WriteFile(file, []byte(confComplete), 0o644))
	cnf, err := Get(file)
	require.NoError(t, err)
	assert.Len(t, cnf.Ignore, 4)

	_, err = Get(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptions(t *testing.T) {
	cnf, errCnf := Load([]byte(confComplete))
	require.NoError(t, errCnf)
	v, err := htmlcompare.New(cnf.Options()...)
	require.NoError(t, err)

	assert.Equal(t, htmlcompare.IgnoreRules{
		{TagName: "script"},
		{TagName: "noscript"},
		{Attributes: []string{"data-test-id"}},
		{TagName: "p", Attributes: []string{htmlcompare.TextAttribute}},
		{TagName: "li", ClassNames: []string{"active"}},
		{TagName: "span", Attributes: []string{}},
	}, v.Rules())

	valid, err := v.ValidateString(
		`<p data-test-id="1">hello</p><script></script>`,
		`<p data-test-id="2">world</p>`,
	)
	require.NoError(t, err)
	assert.True(t, valid)
}
