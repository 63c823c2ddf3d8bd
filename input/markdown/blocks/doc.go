/*
Package blocks implements the registry for custom markdown blocks.

A custom block is delimited by template-tag-like lines

    {% note class="warning" %}
    Body text
    {% endnote %}

The markdown parser collects the body of a block and hands it, together with
the block's attributes, to the Renderer registered under the block's name.
Clients extend the set of blocks by registering renderers before parsing
starts:

    reg := blocks.NewDefaultRegistry()
    reg.MustRegister("note", blocks.RendererFunc(func(body string, attrs *blocks.AttributeMap) string {
        return `<div class="note">` + body + `</div>`
    }))
    reg.Freeze()

The default registry contains renderers for the elements p, div, span, a and
blockquote.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package blocks

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grimoire.blocks'.
func tracer() tracing.Trace {
	return tracing.Select("grimoire.blocks")
}
