package render

import (
	"unicode/utf8"

	"github.com/go-text/typesetting/segmenter"
	"github.com/gogpu/gg/text"
)

// BreakText returns the byte length of the longest prefix of s whose advance
// fits within maxWidth. Grapheme clusters are never split, and at least one
// cluster is consumed for non-empty s so callers always make progress.
func BreakText(face text.Face, s string, maxWidth float64) int {
	if s == "" {
		return 0
	}
	if face.Advance(s) <= maxWidth {
		return len(s)
	}

	var seg segmenter.Segmenter
	seg.InitWithString(s)
	it := seg.GraphemeIterator()

	n := 0
	width := 0.0
	for it.Next() {
		g := it.Grapheme()
		size := byteLen(s[n:], len(g.Text))
		adv := face.Advance(s[n : n+size])
		if width+adv > maxWidth && n > 0 {
			break
		}
		width += adv
		n += size
		if width > maxWidth {
			break
		}
	}
	return n
}

// byteLen returns the byte length of the first runes runes of s. Decoding
// s directly keeps invalid UTF-8 bytes at their original width.
func byteLen(s string, runes int) int {
	n := 0
	for ; runes > 0 && n < len(s); runes-- {
		_, size := utf8.DecodeRuneInString(s[n:])
		n += size
	}
	return n
}
