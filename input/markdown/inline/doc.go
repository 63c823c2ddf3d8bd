/*
Package inline converts a single line of markdown text to HTML.

Inline markup is recognized by a toggle algorithm: scanning from left to
right, every occurrence of a delimiter flips the state of its tag.

    **   strong
    *    em
    `    code

Tags are held on a stack of open tags and are closed in reverse order of
opening at the end of a line, so unbalanced input still results in
well-nested HTML. Links of the form [text](url) are recognized outside of
code spans. Literal text is HTML-escaped before any markup is produced.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'grimoire.inline'.
func tracer() tracing.Trace {
	return tracing.Select("grimoire.inline")
}
