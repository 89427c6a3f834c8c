package scroll

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Document is a Locator over a parsed HTML page.
type Document struct {
	root  *html.Node
	byID  map[string]*Node
	order []*Node
}

// Node is an element of a Document that carries an id attribute.
type Node struct {
	id    string
	index int
	node  *html.Node
}

func (n *Node) ID() string { return n.id }

// Index is the element's position among the document's identified elements.
func (n *Node) Index() int { return n.index }

// Tag is the element name, e.g. "section".
func (n *Node) Tag() string { return n.node.Data }

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	return attr(n.node, name)
}

// Text is the element's text content with whitespace collapsed.
func (n *Node) Text() string { return text(n.node) }

// ParseDocument parses r as HTML and indexes every element with an id.
// The first element wins when an id is repeated.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc := &Document{root: root, byID: make(map[string]*Node)}
	walk(root, func(n *html.Node) {
		id, ok := attr(n, "id")
		if !ok || id == "" {
			return
		}
		if _, dup := doc.byID[id]; dup {
			return
		}
		node := &Node{id: id, index: len(doc.order), node: n}
		doc.byID[id] = node
		doc.order = append(doc.order, node)
	})

	return doc, nil
}

func (d *Document) FindByID(id string) (Element, bool) {
	n, ok := d.byID[id]
	if !ok {
		return nil, false
	}
	return n, true
}

// IDs lists element ids in document order.
func (d *Document) IDs() []string {
	ids := make([]string, len(d.order))
	for i, n := range d.order {
		ids[i] = n.id
	}
	return ids
}

// Tagged is an element selected by attribute.
type Tagged struct {
	Tag   string
	Value string
	Text  string
}

// WithAttr returns every element carrying the attribute name, in document
// order, with the attribute value and the element's collapsed text.
func (d *Document) WithAttr(name string) []Tagged {
	var out []Tagged
	walk(d.root, func(n *html.Node) {
		if v, ok := attr(n, name); ok {
			out = append(out, Tagged{Tag: n.Data, Value: v, Text: text(n)})
		}
	})
	return out
}

func walk(n *html.Node, fn func(*html.Node)) {
	if n == nil {
		return
	}
	if n.Type == html.ElementNode {
		fn(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func text(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
