package dom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NewElement creates a detached element. Known tag names get their atom set so
// the renderer and parser treat them like parsed elements.
func NewElement(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

// Elements returns the element children of n in order, skipping text and
// comment nodes.
func Elements(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var out []*html.Node
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			out = append(out, child)
		}
	}
	return out
}

// Find returns the first descendant element with the given tag name.
func Find(n *html.Node, tag string) *html.Node {
	var found *html.Node
	walk(n, func(candidate *html.Node) {
		if found != nil || candidate == n {
			return
		}
		if candidate.Type == html.ElementNode && candidate.Data == tag {
			found = candidate
		}
	})
	return found
}

// FindAll returns every descendant element with the given tag name.
func FindAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	walk(n, func(candidate *html.Node) {
		if candidate != n && candidate.Type == html.ElementNode && candidate.Data == tag {
			out = append(out, candidate)
		}
	})
	return out
}

// Attr looks up an attribute value.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// HasClass reports whether the class attribute lists class.
func HasClass(n *html.Node, class string) bool {
	value, ok := Attr(n, "class")
	if !ok {
		return false
	}
	for _, token := range strings.Fields(value) {
		if token == class {
			return true
		}
	}
	return false
}

// TextContent concatenates every descendant text node.
func TextContent(n *html.Node) string {
	var builder strings.Builder
	walk(n, func(candidate *html.Node) {
		if candidate.Type == html.TextNode {
			builder.WriteString(candidate.Data)
		}
	})
	return builder.String()
}

// OuterHTML renders a single node and its subtree.
func OuterHTML(n *html.Node) string {
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// InnerHTML renders the children of n.
func InnerHTML(n *html.Node) string {
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&buf, child); err != nil {
			return ""
		}
	}
	return buf.String()
}
