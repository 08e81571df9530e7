package htmltree

import (
	"strings"

	"github.com/npillmayer/cascade/douceuradapter"
	"github.com/npillmayer/cascade/intern"
	"github.com/npillmayer/cascade/sheet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StyleElements visits the <head> and <body> of a parsed page, compiles
// the content of every embedded <style> element and returns the resulting
// author stylesheets in document order. A media attribute narrows the
// sheet's media. Style elements whose media list is unsupported or whose
// content does not parse are skipped.
func StyleElements(doc *html.Node, table *intern.Table) []*sheet.Stylesheet {
	var sheets []*sheet.Stylesheet
	sheets = appendStyles(sheets, findElement(atom.Head, doc), table)
	sheets = appendStyles(sheets, findElement(atom.Body, doc), table)
	return sheets
}

func appendStyles(sheets []*sheet.Stylesheet, parent *html.Node, table *intern.Table) []*sheet.Stylesheet {
	if parent == nil {
		return sheets
	}
	for ch := parent.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style {
			continue
		}
		media := sheet.MediaAll
		if v, ok := attrVal(ch, "media"); ok && strings.TrimSpace(v) != "" {
			m, ok := douceuradapter.MediaList(v)
			if !ok {
				tracer().Infof("skipping style element with media %q", v)
				continue
			}
			media = m
		}
		text := textContent(ch)
		if strings.TrimSpace(text) == "" {
			continue
		}
		s, err := douceuradapter.Compile(text, sheet.OriginAuthor, media, table)
		if err != nil {
			tracer().Infof("skipping style element: %v", err)
			continue
		}
		sheets = append(sheets, s)
	}
	return sheets
}

// textContent concatenates the text children of a node.
func textContent(n *html.Node) string {
	var sb strings.Builder
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.TextNode {
			sb.WriteString(ch.Data)
		}
	}
	return sb.String()
}

// findElement finds the first element with the given tag in a parse tree.
func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
