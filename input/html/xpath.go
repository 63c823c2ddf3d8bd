package html

import (
	"fmt"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/grimoire/core"
	xhtml "golang.org/x/net/html"
)

// NodeNavigator implements xpath.NodeNavigator for trees of *html.Node.
//
// For a description of the methods of interface xpath.NodeNavigator please
// refer to the documentation of antchfx/xpath. It is not replicated here.
type NodeNavigator struct {
	root, current *xhtml.Node
	attr          int // attributes index, -1 if not on an attribute
}

// NewNavigator creates a new xpath.NodeNavigator for a tree of HTML nodes.
func NewNavigator(node *xhtml.Node) *NodeNavigator {
	return &NodeNavigator{
		current: node,
		root:    node,
		attr:    -1,
	}
}

// CurrentNode returns the node a navigator is positioned on.
func CurrentNode(nav xpath.NodeNavigator) (*xhtml.Node, error) {
	mynav, ok := nav.(*NodeNavigator)
	if !ok {
		return nil, core.Error(core.EINVALID, "navigator is not of type html.NodeNavigator")
	}
	return mynav.current, nil
}

func (nav *NodeNavigator) NodeType() xpath.NodeType {
	switch nav.current.Type {
	case xhtml.CommentNode:
		return xpath.CommentNode
	case xhtml.TextNode:
		return xpath.TextNode
	case xhtml.DocumentNode, xhtml.DoctypeNode:
		return xpath.RootNode
	case xhtml.ElementNode:
		if nav.attr != -1 {
			return xpath.AttributeNode
		}
		return xpath.ElementNode
	}
	panic(fmt.Sprintf("unknown node type: %v", nav.current.Type))
}

func (nav *NodeNavigator) LocalName() string {
	if nav.attr != -1 {
		return nav.current.Attr[nav.attr].Key
	}
	return nav.current.Data
}

func (*NodeNavigator) Prefix() string {
	return ""
}

func (nav *NodeNavigator) Value() string {
	switch nav.current.Type {
	case xhtml.CommentNode:
		return nav.current.Data
	case xhtml.ElementNode:
		if nav.attr != -1 {
			return nav.current.Attr[nav.attr].Val
		}
		return InnerText(nav.current)
	case xhtml.TextNode:
		return nav.current.Data
	}
	return InnerText(nav.current)
}

func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

func (nav *NodeNavigator) MoveToRoot() {
	nav.current = nav.root
	nav.attr = -1
}

func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attributes to element
		return true
	}
	if nav.current == nav.root || nav.current.Parent == nil {
		return false
	}
	nav.current = nav.current.Parent
	return true
}

func (nav *NodeNavigator) MoveToNextAttribute() bool {
	if nav.attr >= len(nav.current.Attr)-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 || nav.current.FirstChild == nil {
		return false
	}
	nav.current = nav.current.FirstChild
	return true
}

func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.attr != -1 || nav.current.PrevSibling == nil || nav.current == nav.root {
		return false
	}
	for nav.current.PrevSibling != nil {
		nav.current = nav.current.PrevSibling
	}
	return true
}

func (nav *NodeNavigator) MoveToNext() bool {
	if nav.attr != -1 || nav.current == nav.root || nav.current.NextSibling == nil {
		return false
	}
	nav.current = nav.current.NextSibling
	return true
}

func (nav *NodeNavigator) MoveToPrevious() bool {
	if nav.attr != -1 || nav.current == nav.root || nav.current.PrevSibling == nil {
		return false
	}
	nav.current = nav.current.PrevSibling
	return true
}

func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*NodeNavigator)
	if !ok || n.root != nav.root {
		return false
	}
	nav.current = n.current
	nav.attr = n.attr
	return true
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

var _ xpath.NodeNavigator = &NodeNavigator{}

// --- Queries ---------------------------------------------------------------

// XPath returns all nodes below root selected by an XPath expression, in
// document order. For attribute nodes, the owning element is returned.
func XPath(root *xhtml.Node, expr string) ([]*xhtml.Node, error) {
	if root == nil {
		return nil, core.Error(core.EMISSING, "no HTML node to query")
	}
	x, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "invalid XPath expression %q", expr)
	}
	var nodes []*xhtml.Node
	iter := x.Select(NewNavigator(root))
	for iter.MoveNext() {
		n, err := CurrentNode(iter.Current())
		if err != nil {
			return nodes, err
		}
		nodes = append(nodes, n)
	}
	tracer().Debugf("XPath %q selects %d nodes", expr, len(nodes))
	return nodes, nil
}

// Count evaluates an XPath expression resulting in a number, such as
//
//      count(//ul/li)
//
// If the expression selects nodes instead, Count returns the number of nodes.
func Count(root *xhtml.Node, expr string) (int, error) {
	if root == nil {
		return 0, core.Error(core.EMISSING, "no HTML node to query")
	}
	x, err := xpath.Compile(expr)
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "invalid XPath expression %q", expr)
	}
	switch v := x.Evaluate(NewNavigator(root)).(type) {
	case float64:
		return int(v), nil
	case *xpath.NodeIterator:
		n := 0
		for v.MoveNext() {
			n++
		}
		return n, nil
	default:
		return 0, core.Error(core.EINVALID, "XPath expression %q does not count: %v", expr, v)
	}
}
