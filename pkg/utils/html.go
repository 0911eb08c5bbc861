package utils

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	blankLines  = regexp.MustCompile(`\n{3,}`)
	extraSpaces = regexp.MustCompile(`[ \t]+`)
)

// HTMLToText renders chapter markup as plain text for the terminal: block
// elements start new lines, list items become their own paragraphs and
// everything else is flattened to its text.
func HTMLToText(markup string) (string, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	writeText(doc, &sb, 0)

	lines := strings.Split(sb.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(extraSpaces.ReplaceAllString(line, " "))
	}
	text := blankLines.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(text), nil
}

func writeText(n *html.Node, sb *strings.Builder, depth int) {
	if depth > 64 {
		return
	}

	switch n.Type {
	case html.TextNode:
		sb.WriteString(strings.ReplaceAll(n.Data, "\n", " "))
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "head":
			return
		case "br":
			sb.WriteString("\n")
		case "p", "div", "ul", "ol", "h1", "h2", "h3", "h4", "h5", "h6":
			sb.WriteString("\n\n")
		case "li":
			sb.WriteString("\n")
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(c, sb, depth+1)
	}

	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "ul", "ol", "h1", "h2", "h3", "h4", "h5", "h6", "li":
			sb.WriteString("\n")
		}
	}
}

// Attr returns the value of the attribute key on n, or "".
func Attr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
