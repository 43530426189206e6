package htmlcompare

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a parsed html document seen as a flat list of elements.
type Document struct {
	elements []*Element
}

// Element is a single parsed html element.
type Element struct {
	node *html.Node
}

// ParseDocument parses html with the html5 parsing algorithm. Broken markup
// is recovered the way browsers do it, errors come from the reader only.
func ParseDocument(r io.Reader) (*Document, error) {
	doc, errDoc := goquery.NewDocumentFromReader(r)
	if errDoc != nil {
		return nil, fmt.Errorf("could not parse document: %w", errDoc)
	}
	d := &Document{}
	for _, n := range doc.Find("*").Nodes {
		if n.Type == html.ElementNode {
			d.elements = append(d.elements, &Element{node: n})
		}
	}
	return d, nil
}

func parseBytes(source []byte) (*Document, error) {
	return ParseDocument(bytes.NewReader(source))
}

// Elements returns all elements of the document including html, head and
// body in document order.
func (d *Document) Elements() []*Element {
	return d.elements
}

// Len is the number of elements in the document.
func (d *Document) Len() int {
	return len(d.elements)
}

// Tag is the lower case tag name.
func (e *Element) Tag() string {
	return e.node.Data
}

// Attributes in the order they were declared.
func (e *Element) Attributes() []html.Attribute {
	return e.node.Attr
}

// TextNodes returns the direct text children with whitespace runs
// collapsed to a single space.
func (e *Element) TextNodes() []string {
	texts := []string{}
	for child := e.node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode {
			texts = append(texts, normalizeWhitespace(child.Data))
		}
	}
	return texts
}

// OwnText joins the direct text children.
func (e *Element) OwnText() string {
	return strings.TrimSpace(strings.Join(e.TextNodes(), ""))
}

// String renders the start tag followed by the element's own text.
func (e *Element) String() string {
	sb := &strings.Builder{}
	sb.WriteString("<" + e.node.Data)
	for _, attr := range e.node.Attr {
		sb.WriteString(" " + attr.Key + `="` + html.EscapeString(attr.Val) + `"`)
	}
	sb.WriteString(">")
	sb.WriteString(e.OwnText())
	return sb.String()
}

func normalizeWhitespace(s string) string {
	sb := &strings.Builder{}
	lastWasSpace := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			if !lastWasSpace {
				sb.WriteRune(' ')
			}
			lastWasSpace = true
		default:
			sb.WriteRune(r)
			lastWasSpace = false
		}
	}
	return sb.String()
}
