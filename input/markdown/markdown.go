package markdown

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/grimoire/core/parameters"
	"github.com/npillmayer/grimoire/input/markdown/blocks"
	"github.com/npillmayer/grimoire/input/markdown/inline"
	"github.com/npillmayer/grimoire/input/markdown/spellblocks"
)

// Parser converts markdown documents to HTML. A parser holds no state
// between calls of Parse and may be used concurrently.
type Parser struct {
	registry *blocks.Registry
	params   *parameters.ParserRegisters
}

// Option configures a Parser.
type Option func(*Parser)

// WithLongLineThreshold sets the number of characters a heading line may
// have before it is set as a paragraph.
func WithLongLineThreshold(n int) Option {
	return func(p *Parser) {
		p.params.Push(parameters.P_LONGLINE, n)
	}
}

// WithMarkers sets the pass-through markers wrapping the output.
func WithMarkers(open, close string) Option {
	return func(p *Parser) {
		p.params.Push(parameters.P_MARKER_OPEN, open)
		p.params.Push(parameters.P_MARKER_CLOSE, close)
	}
}

// WithParameters replaces the parser's parameters by a copy of regs.
// Options following this one will modify the copy.
func WithParameters(regs *parameters.ParserRegisters) Option {
	return func(p *Parser) {
		if regs != nil {
			p.params = regs.Copy()
		}
	}
}

// New creates a parser rendering custom blocks with the renderers of reg.
// If reg is nil, a registry with the builtin renderers is used.
//
// Parameters are taken from the global configuration, then modified by opts.
func New(reg *blocks.Registry, opts ...Option) *Parser {
	if reg == nil {
		reg = blocks.NewDefaultRegistry()
		reg.Freeze()
	}
	if !reg.Frozen() {
		tracer().Infof("markdown parser uses a block registry which is not frozen")
	}
	p := &Parser{
		registry: reg,
		params:   parameters.FromConfig(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Registry returns the block registry of p.
func (p *Parser) Registry() *blocks.Registry {
	return p.registry
}

var defaultParser *Parser

var defaultParserCreation sync.Once

// Parse converts a markdown document to HTML, using a parser with the
// builtin renderers and the spell blocks.
func Parse(document string) string {
	defaultParserCreation.Do(func() {
		reg := blocks.NewDefaultRegistry()
		if err := spellblocks.Install(reg); err != nil {
			tracer().Errorf("cannot install spell blocks: %v", err)
		}
		reg.Freeze()
		defaultParser = New(reg)
	})
	return defaultParser.Parse(document)
}

// Parse converts a markdown document to HTML. It accepts any input and
// does not fail.
func (p *Parser) Parse(document string) (html string) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("markdown parser failed: %v", r)
			out := newOutput(p.params)
			out.emit(fragment{kind: paragraphFragment, html: "<pre>" + inline.Escape(document) + "</pre>"})
			html = out.String()
		}
	}()
	lines := strings.Split(normalize(document), "\n")
	tracer().Debugf("parsing markdown document of %d lines", len(lines))
	sc := newScanner(p, lines)
	sc.scan()
	return sc.out.String()
}

// normalize converts CRLF line endings to LF. A lone CR is not a line break.
// The text is not changed otherwise.
func normalize(document string) string {
	return strings.ReplaceAll(document, "\r\n", "\n")
}

// --- Long lines ------------------------------------------------------------

// longerThan reports whether line has more than n characters (code points).
func longerThan(line string, n int) bool {
	if len(line) <= n {
		return false
	}
	return utf8.RuneCountInString(line) > n
}

// --- States ----------------------------------------------------------------

type state int

const (
	scanning state = iota
	inParagraph
	inList
	inFence
	inBlock
)

func (s state) String() string {
	switch s {
	case scanning:
		return "scanning"
	case inParagraph:
		return "paragraph"
	case inList:
		return "list"
	case inFence:
		return "fence"
	case inBlock:
		return "block"
	}
	return fmt.Sprintf("state(%d)", int(s))
}
