package spellblocks

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/npillmayer/grimoire/core"
	"github.com/npillmayer/grimoire/input/markdown/blocks"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grimoire.spellblocks")
	defer teardown()
	//
	reg := blocks.NewDefaultRegistry()
	require.NoError(t, Install(reg))
	assert.Equal(t, []string{"a", "blockquote", "code_block", "div", "p", "potion", "progress", "span", "spell"},
		reg.Names())
	reg.Freeze()
	err := Install(reg)
	assert.Equal(t, core.EFROZEN, core.Code(err))
}

func TestCodeBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grimoire.spellblocks")
	defer teardown()
	//
	html := CodeBlock("if a < b {\n\treturn **x**\n}", blocks.ParseAttributes(`language="go"`))
	assert.True(t, strings.HasPrefix(html, `<div class="code-block"><button class="copy-button" data-target="`))
	assert.Contains(t, html, `<pre><code class="language-go" id="`)
	assert.Contains(t, html, "if a &lt; b {\n\treturn **x**\n}</code></pre></div>")
	//
	html = CodeBlock("x", blocks.ParseAttributes(`has_copy_button="False"`))
	assert.NotContains(t, html, "<button")
	assert.Contains(t, html, "<pre><code id=")
}

func TestCodeBlockIDs(t *testing.T) {
	first := CodeBlock("x", nil)
	second := CodeBlock("x", nil)
	assert.NotEqual(t, first, second)
	//
	saved := newID
	defer func() { newID = saved }()
	newID = func() string { return "fixed" }
	assert.Equal(t, `<div class="code-block"><button class="copy-button" data-target="fixed">Copy</button>`+
		`<pre><code id="fixed">x</code></pre></div>`, CodeBlock("x", nil))
	_, err := uuid.Parse(saved())
	assert.NoError(t, err)
}

func TestClassBlocks(t *testing.T) {
	spell := Blocks()["spell"]
	assert.Equal(t, "<div class=\"spell-block\">Fireball\nDeals <strong>8d6</strong> fire damage</div>",
		spell.Render("Fireball\nDeals **8d6** fire damage", nil))
	potion := Blocks()["potion"]
	assert.Equal(t, `<div class="potion-block rare">Elixir</div>`,
		potion.Render("Elixir", blocks.ParseAttributes(`class="rare"`)))
	assert.Equal(t, `<div class="potion-block">Elixir</div>`, potion.Render("Elixir", nil))
}

func TestProgressBar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "grimoire.spellblocks")
	defer teardown()
	//
	html := ProgressBar("", blocks.ParseAttributes(`value="3" max_value="4" label="{{value}} of {{max_value}} ({{percentage}}%)"`))
	assert.Contains(t, html, `style="width: 75%;"`)
	assert.Contains(t, html, `aria-valuenow="3" aria-valuemin="0" aria-valuemax="4">3 of 4 (75%)</div>`)
	assert.Contains(t, html, `class="progress bg-white-50 progress-md rounded"`)
	//
	html = ProgressBar("", blocks.ParseAttributes(`value="250" color="success" striped="yes" animated="1" id="p1"`))
	assert.Contains(t, html, `style="width: 100%;"`)
	assert.Contains(t, html, `id="p1"`)
	assert.Contains(t, html, `class="progress-bar bg-success progress-bar-striped progress-bar-animated"`)
	assert.Contains(t, html, `>100%</div>`)
	//
	html = ProgressBar("", blocks.ParseAttributes(`value="abc" max_value="-5" show_percentage="false"`))
	assert.Contains(t, html, `style="width: 0%;"`)
	assert.Contains(t, html, `aria-valuemax="100"></div>`)
	//
	html = ProgressBar("", blocks.ParseAttributes(`value="1" max_value="3"`))
	assert.Contains(t, html, `style="width: 33.33%;"`)
}
