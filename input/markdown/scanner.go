package markdown

import (
	"regexp"
	"strings"

	"github.com/npillmayer/grimoire/core/parameters"
	"github.com/npillmayer/grimoire/input/markdown/blocks"
	"github.com/npillmayer/grimoire/input/markdown/inline"
)

// scanner walks the lines of a document, top-level constructs first.
type scanner struct {
	p       *Parser
	lines   []string
	indents []int // leading spaces per line, -1 for blank lines
	para    []string
	state   state
	out     *output
}

func newScanner(p *Parser, lines []string) *scanner {
	sc := &scanner{
		p:       p,
		lines:   lines,
		indents: make([]int, len(lines)),
		out:     newOutput(p.params),
	}
	for i, line := range lines {
		sc.indents[i] = indentation(line)
	}
	return sc
}

func indentation(line string) int {
	if strings.TrimSpace(line) == "" {
		return -1
	}
	return len(line) - len(strings.TrimLeft(line, " "))
}

func (sc *scanner) enter(s state) {
	if sc.state != s {
		tracer().Debugf("%s -> %s", sc.state, s)
		sc.state = s
	}
}

func (sc *scanner) scan() {
	for i := 0; i < len(sc.lines); i++ {
		line := sc.lines[i]
		trimmed := strings.TrimSpace(line)
		head := strings.TrimRight(line, " \t")
		switch {
		case trimmed == "":
			sc.flushParagraph()
		case isHeading(head):
			sc.flushParagraph()
			sc.heading(line, head)
		case strings.HasPrefix(trimmed, "```"):
			sc.flushParagraph()
			sc.enter(inFence)
			html, last := sc.parseFence(i)
			sc.out.emit(fragment{kind: fenceFragment, html: html})
			i = last
			sc.enter(scanning)
		case strings.HasPrefix(trimmed, "{%"):
			if last, ok := sc.customBlock(i, trimmed); ok {
				i = last
				sc.enter(scanning)
			} else {
				sc.addParagraphLine(trimmed)
			}
		default:
			if _, ok := listItemOf(trimmed); ok {
				sc.flushParagraph()
				sc.enter(inList)
				html, last := sc.parseList(i, sc.indents[i])
				sc.out.emit(fragment{kind: listFragment, html: html})
				i = last
				sc.enter(scanning)
			} else {
				sc.addParagraphLine(trimmed)
			}
		}
	}
	sc.flushParagraph()
}

// --- Paragraphs ------------------------------------------------------------

func (sc *scanner) addParagraphLine(trimmed string) {
	sc.enter(inParagraph)
	sc.para = append(sc.para, trimmed)
}

func (sc *scanner) flushParagraph() {
	if len(sc.para) > 0 {
		html := inline.Render(strings.Join(sc.para, " "), inline.Paragraph)
		sc.out.emit(fragment{kind: paragraphFragment, html: html})
		sc.para = sc.para[:0]
	}
	sc.enter(scanning)
}

// --- Headings --------------------------------------------------------------

const maxHeadingLevel = 6

// isHeading checks for one or more '#' at the start of a line, followed by
// whitespace or the end of the line. Indented lines are not headings.
func isHeading(line string) bool {
	if !strings.HasPrefix(line, "#") {
		return false
	}
	n := strings.IndexFunc(line, func(r rune) bool { return r != '#' })
	return n < 0 || line[n] == ' ' || line[n] == '\t'
}

// heading emits a heading. Heading text is escaped but not inline-processed.
// Heading lines exceeding the long-line threshold are set as a standalone
// paragraph, including the '#' characters.
func (sc *scanner) heading(line, head string) {
	if longerThan(line, sc.p.params.N(parameters.P_LONGLINE)) {
		tracer().Infof("heading line of %d bytes is set as a paragraph", len(line))
		sc.out.emit(fragment{kind: paragraphFragment, html: inline.Render(head, inline.Paragraph)})
		return
	}
	level := len(head) - len(strings.TrimLeft(head, "#"))
	text := strings.TrimSpace(head[level:])
	if level > maxHeadingLevel {
		level = maxHeadingLevel
	}
	tag := "h" + string(rune('0'+level))
	sc.out.emit(fragment{
		kind: headingFragment,
		html: "<" + tag + ">" + inline.Escape(text) + "</" + tag + ">",
	})
}

// --- Custom blocks ---------------------------------------------------------

var openTag = regexp.MustCompile(`^\{%\s*([\p{L}\p{M}\p{N}_-]+)(.*?)\s*%\}$`)

// customBlock checks for the opening tag of a registered block at line i.
// If found, the block's body is collected up to the matching closing tag or
// to the end of the document, and the block is rendered. customBlock returns
// the index of the last line consumed.
func (sc *scanner) customBlock(i int, trimmed string) (int, bool) {
	m := openTag.FindStringSubmatch(trimmed)
	if m == nil {
		return i, false
	}
	name := m[1]
	renderer, ok := sc.p.registry.Resolve(name)
	if !ok {
		if similar := sc.p.registry.Similar(name); len(similar) > 0 {
			tracer().Debugf("unknown block %q, known blocks starting alike: %v", name, similar)
		} else {
			tracer().Debugf("unknown block %q is set as text", name)
		}
		return i, false
	}
	sc.flushParagraph()
	sc.enter(inBlock)
	end, closed := len(sc.lines), false
	closing := closingTag(name)
	for j := i + 1; j < len(sc.lines); j++ {
		if isClosing(sc.lines[j], closing) {
			end, closed = j, true
			break
		}
	}
	last := end
	if !closed {
		tracer().Debugf("block %q at line %d is not closed", name, i+1)
		last = len(sc.lines) - 1
	}
	var body string
	if i+1 < end {
		body = strings.Join(sc.lines[i+1:end], "\n")
	}
	attrs := blocks.ParseAttributes(m[2])
	sc.out.emit(fragment{kind: blockFragment, html: render(name, renderer, body, attrs)})
	return last, true
}

// closingTag is the closing tag line of a block, which has to be matched
// exactly, apart from surrounding whitespace.
func closingTag(name string) string {
	return "{% end" + blocks.CanonicalName(name) + " %}"
}

func isClosing(line, closing string) bool {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "{% end") {
		return false
	}
	return blocks.CanonicalName(line) == closing
}

// render calls a block renderer. A failing renderer results in the escaped
// body text.
func render(name string, r blocks.Renderer, body string, attrs *blocks.AttributeMap) (html string) {
	defer func() {
		if e := recover(); e != nil {
			tracer().Errorf("renderer for block %q failed: %v", name, e)
			html = inline.Escape(body)
		}
	}()
	return r.Render(body, attrs)
}
