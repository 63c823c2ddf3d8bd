package markdown

import (
	"strconv"
	"strings"

	"github.com/npillmayer/grimoire/input/markdown/inline"
)

type listKind uint8

const (
	unordered listKind = iota
	ordered
)

func (k listKind) tag() string {
	if k == ordered {
		return "ol"
	}
	return "ul"
}

// listItem is the result of matching a list marker at the start of a line.
type listItem struct {
	kind   listKind
	number string // for ordered lists
	text   string
}

// listItemOf checks a trimmed line for a list marker: '* ', '- ' or
// '<digits>. '.
func listItemOf(trimmed string) (listItem, bool) {
	if len(trimmed) < 2 {
		return listItem{}, false
	}
	if (trimmed[0] == '*' || trimmed[0] == '-') && isBlank(trimmed[1]) {
		return listItem{kind: unordered, text: strings.TrimSpace(trimmed[2:])}, true
	}
	n := 0
	for n < len(trimmed) && trimmed[n] >= '0' && trimmed[n] <= '9' {
		n++
	}
	if n == 0 || n+1 >= len(trimmed) || trimmed[n] != '.' || !isBlank(trimmed[n+1]) {
		return listItem{}, false
	}
	return listItem{
		kind:   ordered,
		number: trimmed[:n],
		text:   strings.TrimSpace(trimmed[n+2:]),
	}, true
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// parseList renders the list starting at line start, with items indented
// by base spaces. Lines indented by at least two more spaces belong to the
// preceding item: list items among them form a nested list, other lines
// are continuation text of the item. The list ends at a blank line, a line
// which is not an item, or an item of a different kind of list.
//
// parseList returns the HTML of the list and the index of its last line.
func (sc *scanner) parseList(start, base int) (string, int) {
	first, _ := listItemOf(strings.TrimSpace(sc.lines[start]))
	tag := first.kind.tag()
	var b strings.Builder
	b.WriteString("<" + tag)
	if first.kind == ordered {
		if n, err := strconv.Atoi(first.number); err == nil && n != 1 {
			b.WriteString(` start="` + strconv.Itoa(n) + `"`)
		}
	}
	b.WriteString(">")
	i := start
	for i < len(sc.lines) {
		if indent := sc.indents[i]; indent < base || indent >= base+2 {
			break
		}
		item, ok := listItemOf(strings.TrimSpace(sc.lines[i]))
		if !ok || item.kind != first.kind {
			break
		}
		text := []string{item.text}
		var nested strings.Builder
		i++
		for i < len(sc.lines) && sc.indents[i] >= base+2 {
			trimmed := strings.TrimSpace(sc.lines[i])
			if _, ok := listItemOf(trimmed); ok {
				tracer().Debugf("nested list at line %d", i+1)
				html, last := sc.parseList(i, sc.indents[i])
				nested.WriteString(html)
				i = last + 1
			} else {
				text = append(text, trimmed)
				i++
			}
		}
		b.WriteString("\n<li>")
		b.WriteString(inline.Render(strings.Join(text, " "), ""))
		b.WriteString(nested.String())
		b.WriteString("</li>")
	}
	b.WriteString("\n</" + tag + ">")
	return b.String(), i - 1
}
