package importer

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/janvogt/fcat/internal/model"
)

// ParseHTMLCatalogue parses a fruit catalogue HTML export and returns
// the fruits in document order. Rows without the fruit class or with
// unparseable dimensions are skipped.
func ParseHTMLCatalogue(r io.Reader) ([]model.Fruit, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var fruits []model.Fruit

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode && strings.ToLower(n.Data) == "tr" {
			if getAttr(n, "class") == "fruit" {
				if f, ok := parseRow(n); ok {
					fruits = append(fruits, f)
				}
			}
			return // Don't recurse into TR
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return fruits, nil
}

// parseRow extracts a fruit from a table row. The name comes from the
// first TD, the dimensions from the row's data attributes.
func parseRow(n *html.Node) (model.Fruit, bool) {
	name := ""
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && strings.ToLower(c.Data) == "td" {
			name = strings.TrimSpace(getTextContent(c))
			break
		}
	}
	if name == "" {
		return model.Fruit{}, false
	}

	length, err1 := strconv.ParseFloat(getAttr(n, "data-length"), 64)
	width, err2 := strconv.ParseFloat(getAttr(n, "data-width"), 64)
	height, err3 := strconv.ParseFloat(getAttr(n, "data-height"), 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return model.Fruit{}, false
	}
	if length <= 0 || width <= 0 || height <= 0 {
		return model.Fruit{}, false
	}

	return model.Fruit{Name: name, Length: length, Width: width, Height: height}, true
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var text strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text.WriteString(getTextContent(c))
	}
	return text.String()
}

// getAttr returns the value of the named attribute, or "" if absent.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val
		}
	}
	return ""
}
