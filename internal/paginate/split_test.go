package paginate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/pageturn/page"
	"github.com/gogpu/pageturn/render"
)

var smallPage = render.Params{Width: 360, Height: 480, Density: 1, ScaledDensity: 1}

func chapter() string {
	para := "The quick brown fox jumps over the lazy dog while the river keeps running past the mill. "
	var sb strings.Builder
	for i := range 12 {
		sb.WriteString(strings.Repeat(para, 1+i%3))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func TestSplitCoversText(t *testing.T) {
	text := chapter()
	cfg := page.DefaultReaderConfig()

	pages, err := Split(text, cfg, smallPage)
	require.NoError(t, err)
	require.Greater(t, len(pages), 1, "chapter should need several pages")

	var sb strings.Builder
	next := 0
	for i, p := range pages {
		assert.Equal(t, i, p.PageIndex)
		assert.Equal(t, next, p.StartIndex, "page %d is not contiguous", i)
		assert.Equal(t, text[p.StartIndex:p.EndIndex], p.Text)
		assert.NotEmpty(t, p.Text, "page %d is empty", i)
		next = p.EndIndex
		sb.WriteString(p.Text)
	}
	assert.Equal(t, text, sb.String())
}

func TestSplitPagesFit(t *testing.T) {
	cfg := page.DefaultReaderConfig()
	pages, err := Split(chapter(), cfg, smallPage)
	require.NoError(t, err)

	for _, p := range pages {
		res, err := render.Layout(p.Text, cfg, smallPage)
		require.NoError(t, err)
		assert.False(t, res.Truncated, "%s overflows its page", p)
	}
}

func TestSplitLargerFontNeedsMorePages(t *testing.T) {
	cfg := page.DefaultReaderConfig()
	normal, err := Split(chapter(), cfg, smallPage)
	require.NoError(t, err)

	cfg.FontSize *= 2
	large, err := Split(chapter(), cfg, smallPage)
	require.NoError(t, err)

	assert.Greater(t, len(large), len(normal))
}

func TestSplitEmpty(t *testing.T) {
	pages, err := Split("", page.DefaultReaderConfig(), smallPage)
	require.NoError(t, err)
	assert.Equal(t, []page.Content{{}}, pages)
}

func TestSplitNotReady(t *testing.T) {
	_, err := Split("text", page.DefaultReaderConfig(), render.Params{})
	assert.ErrorIs(t, err, render.ErrNotReady)
}

func TestSplitTinyPageMakesProgress(t *testing.T) {
	tiny := render.Params{Width: 10, Height: 10}
	pages, err := Split("ab\ncd", page.DefaultReaderConfig(), tiny)
	require.NoError(t, err)

	texts := make([]string, len(pages))
	for i, p := range pages {
		texts[i] = p.Text
	}
	assert.Equal(t, []string{"a", "b", "\n", "c", "d"}, texts)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"decomposed", "e\u0301tude", "\u00e9tude"},
		{"crlf", "a\r\nb\rc", "a\nb\nc"},
		{"invalid utf8", "a\xffb", "a\uFFFDb"},
		{"plain", "plain", "plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestSplitOffsetsReferToNormalizedText(t *testing.T) {
	pages, err := Split("Cafe\u0301", page.DefaultReaderConfig(), smallPage)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "Caf\u00e9", pages[0].Text)
	assert.Equal(t, len("Caf\u00e9"), pages[0].EndIndex)
}

func TestFirstGrapheme(t *testing.T) {
	assert.Equal(t, len("e\u0301"), firstGrapheme("e\u0301x"))
	assert.Equal(t, len("🇫🇷"), firstGrapheme("🇫🇷!"))
	assert.Equal(t, 1, firstGrapheme("\nabc"))
}
