/*
Package spellblocks provides custom blocks for grimoire documents, on top
of the builtin element blocks.

    {% code_block language="go" %}   code with a copy button
    {% spell %}                      a spell description
    {% potion %}                     a potion description
    {% progress value="3" max_value="5" label="{{value}} of {{max_value}}" %}

Install registers all of them with a block registry.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package spellblocks

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grimoire.spellblocks'.
func tracer() tracing.Trace {
	return tracing.Select("grimoire.spellblocks")
}
