package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createHighlighter(t *testing.T) *Highlighter {
	t.Helper()

	highlighter, err := NewHighlighter(Config{Theme: "monokai"})
	require.NoError(t, err)

	return highlighter
}

func TestNewHighlighter_UnknownTheme(t *testing.T) {
	_, err := NewHighlighter(Config{Theme: "no-such-theme"})

	var highlightErr *HighlightError
	require.ErrorAs(t, err, &highlightErr)
	assert.Equal(t, "no-such-theme", highlightErr.Missing)
	assert.True(t, IsRenderError(err))
}

func TestHighlighter_UnknownLanguage(t *testing.T) {
	var buf bytes.Buffer

	err := createHighlighter(t).Highlight(&buf, "some text", "no-such-language")

	var highlightErr *HighlightError
	require.ErrorAs(t, err, &highlightErr)
	assert.Equal(t, "no-such-language", highlightErr.Missing)
}

func TestHighlighter_EmitsColorCodes(t *testing.T) {
	var buf bytes.Buffer

	err := createHighlighter(t).Highlight(&buf, `{"a":1}`, "json")
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "\x1b[")
}

func TestHighlighter_PreservesText(t *testing.T) {
	input := "{\n  \"name\": \"joe\",\n  \"age\": 5\n}\n"

	var buf bytes.Buffer
	err := createHighlighter(t).Highlight(&buf, input, "json")
	require.NoError(t, err)

	assert.Equal(t, input, stripANSI(buf.String()))
}

func TestHighlighter_PreservesFinalLineWithoutNewline(t *testing.T) {
	input := `{"a":1}`

	var buf bytes.Buffer
	err := createHighlighter(t).Highlight(&buf, input, "json")
	require.NoError(t, err)

	got := stripANSI(buf.String())
	assert.Equal(t, input, got)
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestHighlighter_PreservesCRLF(t *testing.T) {
	input := "{\r\n  \"a\": 1\r\n}"

	var buf bytes.Buffer
	err := createHighlighter(t).Highlight(&buf, input, "json")
	require.NoError(t, err)

	assert.Equal(t, input, stripANSI(buf.String()))
}

func TestHighlighter_HTML(t *testing.T) {
	input := "<html><body>hi</body></html>"

	var buf bytes.Buffer
	err := createHighlighter(t).Highlight(&buf, input, "html")
	require.NoError(t, err)

	assert.Equal(t, input, stripANSI(buf.String()))
}

func TestHighlighter_EmptyText(t *testing.T) {
	var buf bytes.Buffer

	err := createHighlighter(t).Highlight(&buf, "", "json")
	require.NoError(t, err)

	assert.Empty(t, buf.String())
}

func TestSplitAfterNewlines(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a\n"}},
		{"a\nb", []string{"a\n", "b"}},
		{"a\r\nb\r\n", []string{"a\r\n", "b\r\n"}},
		{"\n\n", []string{"\n", "\n"}},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, splitAfterNewlines(test.text), "text %q", test.text)
	}
}
