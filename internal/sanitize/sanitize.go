// Package sanitize turns feed HTML into plain text snippets.
package sanitize

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const blockSelector = "p, div, li, ul, ol, h1, h2, h3, h4, h5, h6, blockquote, tr, td, figcaption, section, article"

// PlainText strips markup from s, decodes entities and collapses whitespace.
// Block elements are separated by a space so adjacent paragraphs do not merge.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return collapse(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapse(stripTags(s))
	}

	doc.Find("script, style, noscript, iframe").Remove()
	doc.Find("br, hr, img").Each(func(_ int, sel *goquery.Selection) {
		sel.ReplaceWithHtml(" ")
	})
	doc.Find(blockSelector).Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml(" ")
	})

	return collapse(doc.Text())
}

// stripTags drops everything between angle brackets.
func stripTags(s string) string {
	inTag := false
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			b.WriteRune(' ')
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
