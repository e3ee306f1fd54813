package fetch

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ExtractSamples returns the text of every <code> element that is a direct child of
// a <pre> element, in document order. Entities are decoded and nested markup such as
// <em> is flattened to its text.
func ExtractSamples(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse puzzle page: %w", err)
	}

	var samples []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if isElement(n, "code") && n.Parent != nil && isElement(n.Parent, "pre") {
			var sb strings.Builder
			collectText(n, &sb)
			samples = append(samples, sb.String())
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return samples, nil
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, sb)
	}
}
