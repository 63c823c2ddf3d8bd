/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"strconv"

	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

type ParserParameter int

const (
	none           ParserParameter = iota
	P_LONGLINE                     // heading lines longer than this are set as paragraphs
	P_MARKER_OPEN                  // pass-through marker in front of the output
	P_MARKER_CLOSE                 // pass-through marker after the output
	P_FENCE_CLASS                  // class prefix for fenced code languages
	P_STOPPER
)

// DefaultLongLine is the number of characters a heading line may have
// before it is treated as a paragraph.
const DefaultLongLine = 10000

var configKeys = [P_STOPPER]string{
	P_LONGLINE:     "grimoire.long-line-threshold",
	P_MARKER_OPEN:  "grimoire.marker-open",
	P_MARKER_CLOSE: "grimoire.marker-close",
	P_FENCE_CLASS:  "grimoire.fence-language-prefix",
}

func (p ParserParameter) String() string {
	if p <= none || p >= P_STOPPER {
		return "P_NONE"
	}
	return configKeys[p]
}

// ParserRegisters holds the parameters for a markdown parser.
// Registers are set up once and read by any number of parse calls.
type ParserRegisters struct {
	base [P_STOPPER]interface{}
}

// ----------------------------------------------------------------------

// NewParserRegisters creates a register set with built-in default values.
func NewParserRegisters() *ParserRegisters {
	regs := &ParserRegisters{}
	initParameters(&regs.base)
	return regs
}

// FromConfig creates a register set with built-in defaults, overridden
// by any values found in the global configuration.
func FromConfig() *ParserRegisters {
	regs := NewParserRegisters()
	for key := P_LONGLINE; key < P_STOPPER; key++ {
		value := configured(configKeys[key])
		if value == "" {
			continue
		}
		switch regs.base[key].(type) {
		case int:
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				T().Errorf("config %s = %q is not a positive number, ignored", configKeys[key], value)
				continue
			}
			regs.base[key] = n
		default:
			regs.base[key] = value
		}
		T().Debugf("config %s = %v", configKeys[key], regs.base[key])
	}
	return regs
}

// configured reads a global configuration value. An application may run
// without a global configuration, which reads as unset.
func configured(key string) (value string) {
	defer func() {
		if r := recover(); r != nil {
			value = ""
		}
	}()
	return gconf.GetString(key)
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_LONGLINE] = DefaultLongLine         // number of characters (grapheme clusters)
	p[P_MARKER_OPEN] = "{% verbatim %}"     // a string
	p[P_MARKER_CLOSE] = "{% endverbatim %}" // a string
	p[P_FENCE_CLASS] = "language-"          // a string
}

// Push sets a parameter value. Values of the wrong type are rejected.
func (regs *ParserRegisters) Push(key ParserParameter, value interface{}) {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of parser parameters")
	}
	switch regs.base[key].(type) {
	case int:
		if n, ok := value.(int); ok && n > 0 {
			regs.base[key] = n
			return
		}
	case string:
		if s, ok := value.(string); ok {
			regs.base[key] = s
			return
		}
	}
	T().Errorf("parameter %s: cannot set to %v (%T)", key, value, value)
}

func (regs *ParserRegisters) Get(key ParserParameter) interface{} {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of parser parameters")
	}
	return regs.base[key]
}

func (regs *ParserRegisters) S(key ParserParameter) string {
	return regs.Get(key).(string)
}

func (regs *ParserRegisters) N(key ParserParameter) int {
	return regs.Get(key).(int)
}

// Copy returns an independent copy of the registers.
func (regs *ParserRegisters) Copy() *ParserRegisters {
	c := *regs
	return &c
}
