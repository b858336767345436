package importer

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/galleypress/galley/internal/document"
)

// HTMLImporter handles HTML files, flattening body content into
// Markdown-style text: h1-h6 become "#" headings, list items become
// bullets, other blocks become paragraphs. Script, style and page chrome
// are skipped.
type HTMLImporter struct{}

func (p *HTMLImporter) Import(r io.Reader, filename string) (*document.Document, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := findTitle(doc)
	if title == "" {
		title = titleFromFilename(filename)
	}

	root := findBody(doc)
	if root == nil {
		root = doc
	}

	content := strings.Join(htmlBlocks(root), "\n\n")
	if content == "" {
		// No block elements at all; fall back to the flattened text.
		content = textContent(root)
	}

	return &document.Document{Title: title, Content: content}, nil
}

// htmlBlocks flattens an HTML subtree into Markdown-style text blocks.
func htmlBlocks(root *html.Node) []string {
	var blocks []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				if t := textContent(n); t != "" {
					blocks = append(blocks, strings.Repeat("#", level)+" "+t)
				}
				return
			}
			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "ul", "ol":
				if items := listItems(n); len(items) > 0 {
					blocks = append(blocks, strings.Join(items, "\n"))
				}
				return
			case "li":
				if t := textContent(n); t != "" {
					blocks = append(blocks, "- "+t)
				}
				return
			case "p", "td", "blockquote", "pre":
				if t := textContent(n); t != "" {
					blocks = append(blocks, t)
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return blocks
}

// listItems collects the items of a ul/ol subtree as one bullet per line.
func listItems(list *html.Node) []string {
	var items []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "li" {
			if t := textContent(n); t != "" {
				items = append(items, "- "+t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := list.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return items
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(buf.String())
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
