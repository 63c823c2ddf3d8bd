/*
Package markdown converts grimoire markdown documents to HTML.

Grimoire markdown is a small, line-oriented dialect of markdown:

    # Heading            headings of level 1 to 6
    * item / - item      unordered lists, nested by indenting two spaces
    1. item              ordered lists
    ```go … ```          fenced code
    {% div class="x" %}  custom blocks, closed by {% enddiv %}

Every other line is paragraph text, with inline markup for strong and
emphasized text, inline code and links (see package inline). Custom blocks
are rendered by the renderers of a blocks.Registry.

Parsing never fails. Malformed input degrades to literal text, and
unterminated fences or blocks run to the end of the document. The output is
wrapped once in a pair of pass-through markers, so that a template engine
processing the output will not interpret tag-like text within it. The
markers default to

    {% verbatim %} … {% endverbatim %}

Configuration

Parsers read their defaults from the global configuration:

    grimoire.long-line-threshold     heading lines longer than this are paragraphs
    grimoire.marker-open             pass-through marker in front of the output
    grimoire.marker-close            pass-through marker after the output
    grimoire.fence-language-prefix   class prefix for the language of a code fence

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markdown

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grimoire.markdown'.
func tracer() tracing.Trace {
	return tracing.Select("grimoire.markdown")
}
