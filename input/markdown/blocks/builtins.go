package blocks

import (
	"github.com/npillmayer/grimoire/input/markdown/inline"
)

func builtins() map[string]Renderer {
	return map[string]Renderer{
		"p":          element("p"),
		"div":        element("div"),
		"span":       element("span"),
		"a":          RendererFunc(anchor),
		"blockquote": RendererFunc(blockquote),
	}
}

// element creates a renderer for a plain HTML element. Every line of the
// body is rendered as inline markup.
func element(tag string) Renderer {
	return RendererFunc(func(body string, attrs *AttributeMap) string {
		return "<" + tag + elementAttributes(attrs).String() + ">" +
			inline.Lines(body) +
			"</" + tag + ">"
	})
}

// anchor renders a link. An href which is not an allowed link target is
// dropped, leaving the anchor element without a target.
func anchor(body string, attrs *AttributeMap) string {
	if href, ok := attrs.Get("href"); ok && !inline.AllowedURL(href) {
		tracer().Debugf("dropping href %q from anchor", href)
		attrs = attrs.Without("href")
	}
	return "<a" + elementAttributes(attrs).String() + ">" + inline.Lines(body) + "</a>"
}

func blockquote(body string, attrs *AttributeMap) string {
	return "<blockquote" + elementAttributes(attrs).String() + ">" + body + "</blockquote>"
}
