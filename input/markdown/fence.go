package markdown

import (
	"strings"

	"github.com/npillmayer/grimoire/core/parameters"
	"github.com/npillmayer/grimoire/input/markdown/inline"
)

const fence = "```"

// parseFence renders the fenced code starting at line start. The body is
// escaped and left alone otherwise. A fence without a closing line runs to
// the end of the document.
//
// The language follows the opening backticks immediately. An opening line
// like "``` go" opens a fence without a language.
//
// parseFence returns the HTML and the index of the last line consumed.
func (sc *scanner) parseFence(start int) (string, int) {
	var lang string
	opening := strings.TrimLeft(strings.TrimSpace(sc.lines[start]), "`")
	if f := strings.Fields(opening); len(f) > 0 {
		if strings.HasPrefix(opening, f[0]) {
			lang = f[0]
		} else {
			tracer().Debugf("code fence at line %d: no language after blank %q", start+1, opening)
		}
	}
	end, last := len(sc.lines), len(sc.lines)-1
	for j := start + 1; j < len(sc.lines); j++ {
		if strings.TrimSpace(sc.lines[j]) == fence {
			end, last = j, j
			break
		}
	}
	if end == len(sc.lines) {
		tracer().Debugf("code fence at line %d is not closed", start+1)
	}
	var body string
	if start+1 < end {
		body = strings.Join(sc.lines[start+1:end], "\n")
	}
	var b strings.Builder
	b.WriteString("<pre><code")
	if lang != "" {
		class := sc.p.params.S(parameters.P_FENCE_CLASS) + lang
		b.WriteString(` class="` + inline.EscapeAttr(class) + `"`)
	}
	b.WriteString(">")
	b.WriteString(inline.Escape(body))
	b.WriteString("</code></pre>")
	return b.String(), last
}
