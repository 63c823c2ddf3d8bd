package markdown

import (
	"github.com/npillmayer/cords"
	"github.com/npillmayer/grimoire/core/parameters"
)

type fragmentKind uint8

const (
	markerFragment fragmentKind = iota
	separatorFragment
	headingFragment
	paragraphFragment
	listFragment
	fenceFragment
	blockFragment
)

// fragment is a piece of HTML output. Fragments are the leafs of the output
// cord.
type fragment struct {
	kind fragmentKind
	html string
}

// Weight of a fragment is its length in bytes.
func (f fragment) Weight() uint64 {
	return uint64(len(f.html))
}

func (f fragment) String() string {
	return f.html
}

// Split splits a fragment at byte position i.
func (f fragment) Split(i uint64) (cords.Leaf, cords.Leaf) {
	return fragment{kind: f.kind, html: f.html[:i]}, fragment{kind: f.kind, html: f.html[i:]}
}

// Substring returns a segment of the fragment's HTML.
func (f fragment) Substring(i, j uint64) []byte {
	return []byte(f.html[i:j])
}

var _ cords.Leaf = fragment{}

var separator = fragment{kind: separatorFragment, html: "\n"}

// output collects the fragments of a document. Fragments are separated by
// newlines and the whole sequence is enclosed in the pass-through markers.
type output struct {
	b      *cords.Builder
	close  string
	leafs  int // leafs appended, without separators
	count  int // fragments emitted, without markers
	closed bool
}

func newOutput(params *parameters.ParserRegisters) *output {
	out := &output{
		b:     cords.NewBuilder(),
		close: params.S(parameters.P_MARKER_CLOSE),
	}
	out.append(fragment{kind: markerFragment, html: params.S(parameters.P_MARKER_OPEN)})
	return out
}

func (out *output) append(f fragment) {
	if f.html == "" {
		return
	}
	if out.leafs > 0 {
		if err := out.b.Append(separator); err != nil {
			tracer().Errorf("cannot append separator: %v", err)
			return
		}
	}
	if err := out.b.Append(f); err != nil {
		tracer().Errorf("cannot append %d bytes of output: %v", len(f.html), err)
		return
	}
	out.leafs++
}

// emit appends a fragment. Empty fragments are skipped.
func (out *output) emit(f fragment) {
	if f.html == "" || out.closed {
		return
	}
	out.append(f)
	out.count++
}

// String closes the output and returns it as a string. The output may not
// be extended after String has been called.
func (out *output) String() string {
	if !out.closed {
		out.append(fragment{kind: markerFragment, html: out.close})
		out.closed = true
	}
	text := out.b.Cord()
	tracer().Debugf("output has %d fragments, %d bytes", out.count, text.Len())
	return text.String()
}
