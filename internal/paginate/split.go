// Package paginate cuts chapter text into pages using the renderer's own
// layout rules and serves them to a view as a page source.
package paginate

import (
	"strings"
	"unicode/utf8"

	"github.com/go-text/typesetting/segmenter"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/pageturn/page"
	"github.com/gogpu/pageturn/render"
)

// Normalize prepares chapter text for pagination: invalid UTF-8 is replaced,
// line endings become '\n' and the result is in NFC form so composed and
// decomposed input paginate identically.
func Normalize(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return norm.NFC.String(s)
}

// Split paginates text for a page of geometry p. Offsets in the returned
// pages refer to Normalize(text). Empty text yields one empty page.
//
// When not a single line fits (a page smaller than its padding), each page
// takes one grapheme cluster so the split always terminates.
func Split(text string, cfg page.ReaderConfig, p render.Params) ([]page.Content, error) {
	text = Normalize(text)
	if text == "" {
		return []page.Content{{}}, nil
	}

	var pages []page.Content
	for offset := 0; offset < len(text); {
		rest := text[offset:]
		n, err := render.Fit(rest, cfg, p)
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			n = firstGrapheme(rest)
		}
		pages = append(pages, page.Content{
			StartIndex: offset,
			EndIndex:   offset + n,
			Text:       rest[:n],
			PageIndex:  len(pages),
		})
		offset += n
	}
	return pages, nil
}

// firstGrapheme returns the byte length of the first grapheme cluster of s.
func firstGrapheme(s string) int {
	var seg segmenter.Segmenter
	seg.InitWithString(s)
	it := seg.GraphemeIterator()
	if !it.Next() {
		return len(s)
	}

	n := 0
	for range it.Grapheme().Text {
		_, size := utf8.DecodeRuneInString(s[n:])
		n += size
	}
	if n == 0 {
		return len(s)
	}
	return n
}
