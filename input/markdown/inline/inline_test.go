package inline

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestEscapeBeforeMarkup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grimoire.inline")
	defer teardown()
	//
	assert.Equal(t, "<p>&lt;script&gt;alert(1)&lt;/script&gt;</p>", Render("<script>alert(1)</script>", Paragraph))
	assert.Equal(t, "<p>a &amp; b &lt; <strong>c</strong></p>", Render("a & b < **c**", Paragraph))
	assert.Equal(t, `say &quot;hi&quot; &amp; go`, EscapeAttr(`say "hi" & go`))
}

func TestToggles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grimoire.inline")
	defer teardown()
	//
	for _, tc := range []struct{ in, out string }{
		{"**Bold** and *italic*", "<strong>Bold</strong> and <em>italic</em>"},
		{"**bold", "<strong>bold</strong>"},
		{"*a **b", "<em>a <strong>b</strong></em>"},
		{"**a *b** c*", "<strong>a <em>b</em></strong><em> c</em>"},
		{"use `x*y*z` here", "use <code>x*y*z</code> here"},
		{"`open code", "<code>open code</code>"},
		{"*a `b* c` d*", "<em>a <code>b* c</code> d</em>"},
		{"**a *b** `c*` d*", "<strong>a <em>b</em></strong><em> <code>c*</code> d</em>"},
		{"`a` *b* `c`", "<code>a</code> <em>b</em> <code>c</code>"},
	} {
		assert.Equal(t, tc.out, Render(tc.in, ""), "input %q", tc.in)
	}
}

func TestWrapping(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grimoire.inline")
	defer teardown()
	//
	assert.Equal(t, "<p>text</p>", Render("text", Paragraph))
	assert.Equal(t, "<li>text</li>", Render("text", "li"))
	assert.Equal(t, "text", Render("text", ""))
	assert.Equal(t, "", Render("   ", Paragraph))
	assert.Equal(t, "", Render("", Paragraph))
}

func TestLinks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grimoire.inline")
	defer teardown()
	//
	assert.Equal(t, `see <a href="https://example.com">the <em>site</em></a>`,
		Render("see [the *site*](https://example.com)", ""))
	assert.Equal(t, `<a href="./intro">intro</a>`, Render("[intro](./intro)", ""))
	assert.Equal(t, `<a href="../up">up</a>`, Render("[up](../up)", ""))
	assert.Equal(t, `<a href="www.example.com">w</a>`, Render("[w](www.example.com)", ""))
	assert.Equal(t, `<a href="https://x.org/?a=1&amp;b=2">q</a>`, Render("[q](https://x.org/?a=1&b=2)", ""))
	// disallowed targets keep the link text only
	assert.Equal(t, "click me)", Render("[click me](javascript:alert(1))", ""))
	assert.Equal(t, "x <strong>y</strong>", Render("[x **y**](ftp://host/file)", ""))
	assert.Equal(t, "z", Render("[z](//evil.org)", ""))
	// not a link at all
	assert.Equal(t, "[a] (b)", Render("[a] (b)", ""))
	assert.Equal(t, "[unclosed", Render("[unclosed", ""))
	assert.Equal(t, "[a](b", Render("[a](b", ""))
}

func TestAllowedURL(t *testing.T) {
	assert.True(t, AllowedURL("HTTPS://EXAMPLE.COM"))
	assert.True(t, AllowedURL("http://example.com"))
	assert.True(t, AllowedURL("#section"))
	assert.True(t, AllowedURL("/docs/intro"))
	assert.False(t, AllowedURL("javascript:void(0)"))
	assert.False(t, AllowedURL("data:text/html,x"))
	assert.False(t, AllowedURL("//evil.org"))
	assert.False(t, AllowedURL(""))
}

func TestLines(t *testing.T) {
	assert.Equal(t, "one\n<em>two</em>", Lines("one\n\n  *two*  \n"))
	assert.Equal(t, "", Lines("\n\n"))
}

func TestPathologicalInputIsLinear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grimoire.inline")
	defer teardown()
	//
	brackets := strings.Repeat("[", 50000) + strings.Repeat("]", 50000)
	html := Render(brackets, "")
	assert.Equal(t, brackets, html)
	stars := strings.Repeat("*", 10001)
	html = Render(stars, "")
	assert.True(t, strings.HasSuffix(html, "</em>"))
	assert.Equal(t, strings.Count(html, "<strong>"), strings.Count(html, "</strong>"))
}
