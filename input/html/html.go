/*
Package html queries HTML fragments, such as the output of the markdown
parser.

Fragments may be queried with CSS selectors or with XPath expressions.
We use these libraries:

    github.com/andybalholm/cascadia   CSS selectors
    github.com/antchfx/xpath          XPath

For XPath, type NodeNavigator implements an xpath.NodeNavigator on top of
the node tree of golang.org/x/net/html.

    root, _ := html.Parse(markdown.Parse("* a\n  * b"))
    n, _ := html.Count(root, "count(//ul/li/ul/li)")   // n = 1

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package html

import (
	"bytes"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/grimoire/core"
	"github.com/npillmayer/schuko/tracing"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'grimoire.html'.
func tracer() tracing.Trace {
	return tracing.Select("grimoire.html")
}

// Parse parses an HTML fragment. The nodes of the fragment are children of
// the document node returned.
func Parse(fragment string) (*xhtml.Node, error) {
	context := &xhtml.Node{
		Type:     xhtml.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := xhtml.ParseFragment(strings.NewReader(fragment), context)
	if err != nil {
		tracer().Errorf("unable to parse HTML fragment: %v", err)
		return nil, core.WrapError(err, core.EINVALID, "cannot parse HTML fragment")
	}
	root := &xhtml.Node{Type: xhtml.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

// Select returns all nodes below root matching a CSS selector, in
// document order.
func Select(root *xhtml.Node, selector string) ([]*xhtml.Node, error) {
	if root == nil {
		return nil, core.Error(core.EMISSING, "no HTML node to select from")
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid CSS selector %q", selector)
	}
	return sel.MatchAll(root), nil
}

// InnerText returns the text between the start and end tags of a node,
// without any markup. It resembles the text produced by
//
//      document.getElementById("myNode").innerText
//
// in JavaScript.
func InnerText(n *xhtml.Node) string {
	if n == nil {
		return ""
	}
	var output func(*bytes.Buffer, *xhtml.Node)
	output = func(buf *bytes.Buffer, n *xhtml.Node) {
		switch n.Type {
		case xhtml.TextNode:
			buf.WriteString(n.Data)
			return
		case xhtml.CommentNode:
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			output(buf, child)
		}
	}
	var buf bytes.Buffer
	output(&buf, n)
	return buf.String()
}

// Attr returns the value of an attribute of an element node.
func Attr(n *xhtml.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
