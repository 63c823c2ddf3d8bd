package html

import (
	"testing"

	"github.com/npillmayer/grimoire/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fragment = `{% verbatim %}
<h1>Title</h1>
<ul>
<li>one<ul>
<li>one.<em>a</em></li>
</ul></li>
<li>two</li>
</ul>
<p>Some <a href="https://example.com">link</a></p>
{% endverbatim %}`

func TestSelect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grimoire.html")
	defer teardown()
	//
	root, err := Parse(fragment)
	require.NoError(t, err)
	nodes, err := Select(root, "ul > li > ul > li")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "one.a", InnerText(nodes[0]))
	nodes, err = Select(root, "p a[href]")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	href, ok := Attr(nodes[0], "href")
	assert.True(t, ok)
	assert.Equal(t, "https://example.com", href)
	//
	_, err = Select(root, "p >>> [")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = Select(nil, "p")
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestXPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grimoire.html")
	defer teardown()
	//
	root, err := Parse(fragment)
	require.NoError(t, err)
	n, err := Count(root, "count(//ul/li)")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	n, err = Count(root, "//ul/li/ul/li")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	nodes, err := XPath(root, "//h1")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "Title", InnerText(nodes[0]))
	nodes, err = XPath(root, "//a/@href")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "a", nodes[0].Data)
	nodes, err = XPath(root, "//li[em]")
	require.NoError(t, err)
	assert.Len(t, nodes, 1)
	//
	_, err = XPath(root, "//[")
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestNavigator(t *testing.T) {
	root, err := Parse("<p>a</p><div>b</div><span>c</span>")
	require.NoError(t, err)
	nav := NewNavigator(root)
	assert.True(t, nav.MoveToChild())
	assert.Equal(t, "p", nav.LocalName())
	assert.False(t, nav.MoveToPrevious())
	assert.True(t, nav.MoveToNext())
	assert.True(t, nav.MoveToNext())
	assert.Equal(t, "span", nav.LocalName())
	assert.False(t, nav.MoveToNext())
	assert.True(t, nav.MoveToFirst())
	assert.Equal(t, "p", nav.LocalName())
	c := nav.Copy()
	assert.True(t, nav.MoveToParent())
	assert.False(t, nav.MoveToParent())
	assert.True(t, nav.MoveTo(c))
	assert.Equal(t, "a", nav.Value())
	nav.MoveToRoot()
	assert.Equal(t, "abc", nav.Value())
	other, err := Parse("<p>x</p>")
	require.NoError(t, err)
	assert.False(t, NewNavigator(other).MoveTo(nav))
}
