package inline

import (
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Paragraph is the usual wrapper element for a line of text.
const Paragraph = "p"

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape replaces '&', '<' and '>' by HTML entities.
func Escape(s string) string {
	return escaper.Replace(s)
}

// EscapeAttr escapes s for use as a double-quoted attribute value.
func EscapeAttr(s string) string {
	return strings.ReplaceAll(Escape(s), `"`, "&quot;")
}

// Render converts a line of markdown text to HTML. If wrap is non-empty,
// the result is enclosed in an element of that name, e.g.
//
//     Render("a **b**", inline.Paragraph)   =>   <p>a <strong>b</strong></p>
//
// A blank line results in an empty string, without a wrapper.
func Render(line string, wrap string) string {
	if strings.TrimSpace(line) == "" {
		return ""
	}
	html := renderEscaped(Escape(line))
	if wrap == "" {
		return html
	}
	return "<" + wrap + ">" + html + "</" + wrap + ">"
}

// Lines renders every non-blank line of a multi-line text without a wrapper
// and joins the results with newlines.
func Lines(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		html := Render(strings.TrimSpace(line), "")
		if html == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(html)
	}
	return b.String()
}

// --- Markup toggles --------------------------------------------------------

type markup uint8

const (
	strong markup = iota
	em
	code
)

var elements = [...]string{
	strong: "strong",
	em:     "em",
	code:   "code",
}

func (m markup) open() string {
	return "<" + elements[m] + ">"
}

func (m markup) close() string {
	return "</" + elements[m] + ">"
}

// scanner holds the state for rendering one line of escaped text.
type scanner struct {
	text    string
	out     strings.Builder
	open    *arraystack.Stack // of markup
	active  [len(elements)]bool
	bracket []int             // position of next ']' at or after i, or -1
	paren   []int             // position of next ')' at or after i, or -1
}

func renderEscaped(text string) string {
	sc := &scanner{
		text: text,
		open: arraystack.New(),
	}
	sc.out.Grow(len(text) + 16)
	sc.scan()
	return sc.out.String()
}

func (sc *scanner) scan() {
	start, i := 0, 0
	for i < len(sc.text) {
		c := sc.text[i]
		switch {
		case c == '`':
			sc.literal(start, i)
			sc.toggle(code)
			i++
			start = i
		case sc.isOpen(code): // everything else is literal within code spans
			i++
		case c == '*':
			sc.literal(start, i)
			if i+1 < len(sc.text) && sc.text[i+1] == '*' {
				sc.toggle(strong)
				i += 2
			} else {
				sc.toggle(em)
				i++
			}
			start = i
		case c == '[':
			if html, next, ok := sc.link(i); ok {
				sc.literal(start, i)
				sc.out.WriteString(html)
				i = next
				start = i
			} else {
				i++
			}
		default:
			i++
		}
	}
	sc.literal(start, len(sc.text))
	sc.closeAll()
}

func (sc *scanner) literal(from, to int) {
	if to > from {
		sc.out.WriteString(sc.text[from:to])
	}
}

func (sc *scanner) isOpen(m markup) bool {
	return sc.active[m]
}

// toggle opens m if it is not open, otherwise closes it. Tags opened after m
// are closed before m and re-opened afterwards, keeping the output nested.
func (sc *scanner) toggle(m markup) {
	if !sc.isOpen(m) {
		sc.open.Push(m)
		sc.active[m] = true
		sc.out.WriteString(m.open())
		return
	}
	sc.active[m] = false
	var reopen []markup
	for !sc.open.Empty() {
		v, _ := sc.open.Pop()
		top := v.(markup)
		sc.out.WriteString(top.close())
		if top == m {
			break
		}
		reopen = append(reopen, top)
	}
	for i := len(reopen) - 1; i >= 0; i-- {
		sc.open.Push(reopen[i])
		sc.out.WriteString(reopen[i].open())
	}
}

func (sc *scanner) closeAll() {
	for !sc.open.Empty() {
		v, _ := sc.open.Pop()
		sc.active[v.(markup)] = false
		sc.out.WriteString(v.(markup).close())
	}
}

// --- Links -----------------------------------------------------------------

// link checks for a link starting with '[' at position i. It returns the HTML
// for the link and the position after the closing ')'.
func (sc *scanner) link(i int) (string, int, bool) {
	if sc.bracket == nil {
		sc.bracket = nextPositions(sc.text, ']')
		sc.paren = nextPositions(sc.text, ')')
	}
	j := sc.bracket[i+1]
	if j < 0 || j+1 >= len(sc.text) || sc.text[j+1] != '(' {
		return "", 0, false
	}
	k := sc.paren[j+2]
	if k < 0 {
		return "", 0, false
	}
	label := renderEscaped(sc.text[i+1 : j])
	url := strings.TrimSpace(sc.text[j+2 : k])
	if !AllowedURL(url) {
		tracer().Debugf("link target %q not allowed, keeping link text only", url)
		return label, k + 1, true
	}
	return `<a href="` + strings.ReplaceAll(url, `"`, "&quot;") + `">` + label + `</a>`, k + 1, true
}

// nextPositions returns a table which for every position i in s holds the
// position of the next occurrence of c at or after i, or -1. The table has
// one extra entry for position len(s).
func nextPositions(s string, c byte) []int {
	pos := make([]int, len(s)+1)
	next := -1
	pos[len(s)] = next
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == c {
			next = i
		}
		pos[i] = next
	}
	return pos
}

// AllowedURL reports whether url may be used as a link target. Allowed are
// http and https URLs, URLs starting with "www.", relative paths starting
// with "./" or "../", root-relative paths and fragment references.
func AllowedURL(url string) bool {
	u := strings.ToLower(url)
	switch {
	case strings.HasPrefix(u, "http://"), strings.HasPrefix(u, "https://"):
		return true
	case strings.HasPrefix(u, "www."):
		return true
	case strings.HasPrefix(u, "./"), strings.HasPrefix(u, "../"):
		return true
	case strings.HasPrefix(u, "#"):
		return true
	case strings.HasPrefix(u, "/"):
		return !strings.HasPrefix(u, "//")
	}
	return false
}
