package blocks

import (
	"regexp"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/grimoire/input/markdown/inline"
)

// AttributeMap is an ordered mapping of attribute names to values.
// Iteration follows the order in which attributes first appeared.
// A nil *AttributeMap is an empty map.
type AttributeMap struct {
	m *linkedhashmap.Map
}

// NewAttributeMap creates an empty attribute map.
func NewAttributeMap() *AttributeMap {
	return &AttributeMap{m: linkedhashmap.New()}
}

// Put sets an attribute. A new attribute is appended, an existing one keeps
// its position. Put on a nil map is a no-op.
func (a *AttributeMap) Put(key, value string) {
	if a == nil {
		tracer().Debugf("attribute %q not set on nil attribute map", key)
		return
	}
	a.m.Put(key, value)
}

// Get returns the value of an attribute.
func (a *AttributeMap) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	v, ok := a.m.Get(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// GetOr returns the value of an attribute or a default value.
func (a *AttributeMap) GetOr(key, dflt string) string {
	if v, ok := a.Get(key); ok {
		return v
	}
	return dflt
}

func (a *AttributeMap) Len() int {
	if a == nil {
		return 0
	}
	return a.m.Size()
}

// Keys returns the attribute names in order.
func (a *AttributeMap) Keys() []string {
	if a == nil {
		return nil
	}
	keys := make([]string, 0, a.m.Size())
	for _, k := range a.m.Keys() {
		keys = append(keys, k.(string))
	}
	return keys
}

// Each calls f for every attribute, in order.
func (a *AttributeMap) Each(f func(key, value string)) {
	if a == nil {
		return
	}
	a.m.Each(func(k, v interface{}) {
		f(k.(string), v.(string))
	})
}

// Without returns a copy of a, leaving out the attributes named.
func (a *AttributeMap) Without(keys ...string) *AttributeMap {
	c := NewAttributeMap()
	a.Each(func(k, v string) {
		for _, skip := range keys {
			if k == skip {
				return
			}
		}
		c.Put(k, v)
	})
	return c
}

// String renders the attributes in HTML syntax, with a leading space for
// each attribute:
//
//     class="btn" id="go"   =>   ` class="btn" id="go"`
//
// Values are escaped.
func (a *AttributeMap) String() string {
	var b strings.Builder
	a.Each(func(k, v string) {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(inline.EscapeAttr(v))
		b.WriteString(`"`)
	})
	return b.String()
}

// --- Parsing ---------------------------------------------------------------

var attrPattern = regexp.MustCompile(`([\p{L}\p{N}_-]+)=(?:"([^"]*)"|'([^']*)')`)

// ParseAttributes extracts name="value" pairs from the attribute part of a
// block tag. Values may be single- or double-quoted. Fragments not matching
// this form are ignored. If a name occurs more than once, the last value wins.
func ParseAttributes(raw string) *AttributeMap {
	attrs := NewAttributeMap()
	for _, m := range attrPattern.FindAllStringSubmatch(raw, -1) {
		value := m[2]
		if strings.HasSuffix(m[0], "'") {
			value = m[3]
		}
		attrs.Put(m[1], value)
	}
	return attrs
}

// --- CSS -------------------------------------------------------------------

// NormalizeStyle parses the value of a style attribute as a list of CSS
// declarations and re-serializes it. It returns false if no valid
// declaration is found.
//
// The CSS parser drops a final declaration without a terminating ';',
// therefore one is added if missing.
func NormalizeStyle(style string) (string, bool) {
	style = strings.TrimSpace(style)
	if style != "" && !strings.HasSuffix(style, ";") {
		style += ";"
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		tracer().Debugf("dropping style %q: %v", style, err)
		return "", false
	}
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		if d.Property == "" || d.Value == "" {
			continue
		}
		decl := d.Property + ": " + d.Value
		if d.Important {
			decl += " !important"
		}
		parts = append(parts, decl+";")
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

// elementAttributes prepares attributes for output on an HTML element:
// a style attribute is normalized or dropped.
func elementAttributes(attrs *AttributeMap) *AttributeMap {
	style, ok := attrs.Get("style")
	if !ok {
		return attrs
	}
	c := NewAttributeMap()
	attrs.Each(func(k, v string) {
		if k != "style" {
			c.Put(k, v)
		} else if norm, ok := NormalizeStyle(style); ok {
			c.Put(k, norm)
		}
	})
	return c
}
