package blocks

import (
	"fmt"
	"regexp"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/derekparker/trie"
	"github.com/npillmayer/grimoire/core"
	"github.com/npillmayer/uax/grapheme"
	"golang.org/x/text/unicode/norm"
)

// Renderer renders the body of a custom block to HTML.
//
// body is the raw text between the opening and the closing tag line. It is
// neither escaped nor inline-processed; this is up to the renderer.
// attrs holds the attributes of the opening tag, in order.
type Renderer interface {
	Render(body string, attrs *AttributeMap) string
}

// RendererFunc is an adapter to use ordinary functions as Renderers.
type RendererFunc func(body string, attrs *AttributeMap) string

// Render calls f(body, attrs).
func (f RendererFunc) Render(body string, attrs *AttributeMap) string {
	return f(body, attrs)
}

// Registry maps block names to renderers.
//
// A registry is populated first, then frozen and handed to one or more
// parsers. Registrations on an un-frozen registry are synchronized with
// lookups, so a registry may be extended while parsers are using it.
type Registry struct {
	sync.RWMutex
	renderers *trie.Trie
	frozen    bool
}

// ErrFrozen is returned for registrations on a frozen registry.
var ErrFrozen = core.Error(core.EFROZEN, "block registry is frozen")

var namePattern = regexp.MustCompile(`^[\p{L}\p{M}\p{N}_-]+$`)

// CanonicalName returns the form of a block name used for registration and
// lookup. Canonically equivalent spellings of a name (Unicode NFC) denote
// the same block.
func CanonicalName(name string) string {
	return norm.NFC.String(name)
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{renderers: trie.New()}
}

// NewDefaultRegistry creates a registry containing the builtin renderers for
// p, div, span, a and blockquote.
func NewDefaultRegistry() *Registry {
	reg := NewRegistry()
	for name, r := range builtins() {
		reg.MustRegister(name, r)
	}
	return reg
}

// Register associates a renderer with a block name. A later registration for
// the same name replaces an earlier one.
func (reg *Registry) Register(name string, r Renderer) error {
	if !namePattern.MatchString(name) {
		err := core.Error(core.EINVALID, "invalid block name %q", name)
		tracer().Errorf("%v", err)
		return err
	}
	if r == nil {
		err := core.Error(core.EINVALID, "no renderer given for block %q", name)
		tracer().Errorf("%v", err)
		return err
	}
	name = CanonicalName(name)
	reg.Lock()
	defer reg.Unlock()
	if reg.frozen {
		tracer().Errorf("cannot register block %q: registry is frozen", name)
		return ErrFrozen
	}
	if _, ok := reg.renderers.Find(name); ok {
		tracer().Debugf("replacing renderer for block %q", name)
		reg.renderers.Remove(name)
	}
	reg.renderers.Add(name, r)
	return nil
}

// MustRegister is like Register, but panics on error.
func (reg *Registry) MustRegister(name string, r Renderer) {
	if err := reg.Register(name, r); err != nil {
		panic(fmt.Sprintf("blocks: %v", err))
	}
}

// Resolve returns the renderer registered for name.
func (reg *Registry) Resolve(name string) (Renderer, bool) {
	if reg == nil {
		return nil, false
	}
	reg.RLock()
	defer reg.RUnlock()
	node, ok := reg.renderers.Find(CanonicalName(name))
	if !ok {
		return nil, false
	}
	r, ok := node.Meta().(Renderer)
	return r, ok
}

// Freeze makes the registry read-only.
func (reg *Registry) Freeze() {
	reg.Lock()
	defer reg.Unlock()
	if !reg.frozen {
		tracer().Infof("block registry frozen with %d renderers", len(reg.renderers.PrefixSearch("")))
	}
	reg.frozen = true
}

func (reg *Registry) Frozen() bool {
	reg.RLock()
	defer reg.RUnlock()
	return reg.frozen
}

// Names returns the registered block names, sorted.
func (reg *Registry) Names() []string {
	return reg.Suggest("")
}

// Suggest returns the registered block names starting with prefix, sorted.
func (reg *Registry) Suggest(prefix string) []string {
	reg.RLock()
	defer reg.RUnlock()
	names := reg.renderers.PrefixSearch(CanonicalName(prefix))
	sort.Strings(names)
	return names
}

// maxNamePrefix limits the text segmented for Similar.
const maxNamePrefix = 32

// Similar returns the registered block names starting with the same
// user-perceived character as name, sorted.
func (reg *Registry) Similar(name string) []string {
	name = CanonicalName(name)
	if len(name) > maxNamePrefix {
		cut := maxNamePrefix
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = name[:cut]
	}
	g := grapheme.StringFromString(name)
	if g.Len() == 0 {
		return nil
	}
	return reg.Suggest(g.Nth(0))
}
