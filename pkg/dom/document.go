package dom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrInvalidSelector is returned when a selector is blank or cannot be parsed.
var ErrInvalidSelector = errors.New("dom: invalid selector")

const blankPage = `<!DOCTYPE html><html><head></head><body></body></html>`

// Document wraps a parsed HTML tree.
type Document struct {
	root *html.Node
}

// New returns an empty document with <head> and <body> elements.
func New() *Document {
	doc, err := ParseString(blankPage)
	if err != nil {
		// the blank page is static markup and always parses
		panic(err)
	}
	return doc
}

// Parse reads a full HTML page. The parser is lenient, so missing html, head
// and body elements are synthesised.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse document: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString is Parse for in-memory markup.
func ParseString(markup string) (*Document, error) {
	return Parse(strings.NewReader(markup))
}

// FromNode wraps an existing tree.
func FromNode(root *html.Node) *Document {
	return &Document{root: root}
}

// Root exposes the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Query returns the first element matching selector in document order. A
// selector that matches nothing yields (nil, nil).
func (d *Document) Query(selector string) (*html.Node, error) {
	matcher, err := compile(selector)
	if err != nil {
		return nil, err
	}
	return cascadia.Query(d.root, matcher), nil
}

// QueryAll returns every element matching selector in document order.
func (d *Document) QueryAll(selector string) ([]*html.Node, error) {
	matcher, err := compile(selector)
	if err != nil {
		return nil, err
	}
	return cascadia.QueryAll(d.root, matcher), nil
}

func compile(selector string) (cascadia.Matcher, error) {
	if strings.TrimSpace(selector) == "" {
		return nil, fmt.Errorf("%w: selector is empty", ErrInvalidSelector)
	}
	group, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidSelector, selector, err)
	}
	return group, nil
}

// Head returns the <head> element, creating one when the tree lacks it.
func (d *Document) Head() *html.Node {
	if head := findElement(d.root, atom.Head); head != nil {
		return head
	}
	head := newElement(atom.Head)
	if htmlEl := findElement(d.root, atom.Html); htmlEl != nil {
		htmlEl.InsertBefore(head, htmlEl.FirstChild)
	} else {
		d.root.InsertBefore(head, d.root.FirstChild)
	}
	return head
}

// Body returns the <body> element or nil.
func (d *Document) Body() *html.Node {
	return findElement(d.root, atom.Body)
}

// AppendStyle adds a <style> block holding css to the document-wide style
// context and returns the new element. Blocks accumulate; nothing is deduped.
func (d *Document) AppendStyle(css string) *html.Node {
	style := newElement(atom.Style)
	style.AppendChild(&html.Node{Type: html.TextNode, Data: css})
	d.Head().AppendChild(style)
	return style
}

// StyleBlocks returns the text of every <style> element in document order.
func (d *Document) StyleBlocks() []string {
	var out []string
	walk(d.root, func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Style {
			out = append(out, TextContent(n))
		}
	})
	return out
}

// Render serialises the document.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("dom: render document: %w", err)
	}
	return nil
}

// String renders the document, returning an empty string on failure.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, a); found != nil {
			return found
		}
	}
	return nil
}

func newElement(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
}

func walk(n *html.Node, fn func(*html.Node)) {
	if n == nil {
		return
	}
	fn(n)
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		walk(child, fn)
	}
}
