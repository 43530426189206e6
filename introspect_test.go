package htmlcompare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const introspectHTML = `<div id="a" class="b"><p id="c">x</p><p data-x="1">y</p></div><div></div>`

func TestAllTags(t *testing.T) {
	tags, err := AllTags([]byte(introspectHTML))
	require.NoError(t, err)
	assert.Equal(t, []string{"html", "head", "body", "div", "p"}, tags)
}

func TestAllAttributes(t *testing.T) {
	keys, err := AllAttributes([]byte(introspectHTML))
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "class", "data-x"}, keys)

	keys, err = AllAttributes([]byte(`<p>no attributes</p>`))
	require.NoError(t, err)
	assert.Empty(t, keys)
}
