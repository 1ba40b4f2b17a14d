package render

import (
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter colors source text with 24-bit ANSI escapes. It carries
// its style and formatter explicitly so callers construct and inject
// it instead of reaching for package state.
type Highlighter struct {
	style     *chroma.Style
	formatter chroma.Formatter
}

// NewHighlighter creates a highlighter for the configured theme. An
// unknown theme is a fatal misconfiguration, not a fallback.
func NewHighlighter(config Config) (*Highlighter, error) {
	style, found := styles.Registry[config.Theme]
	if !found {
		return nil, &HighlightError{Missing: config.Theme}
	}

	return &Highlighter{
		style:     style,
		formatter: formatters.TTY16m,
	}, nil
}

// Highlight writes text to out one line at a time, coloring it
// according to the language grammar. Each line is emitted as soon as
// it is formatted, and original line endings are preserved exactly,
// including a final line with no trailing newline.
func (h *Highlighter) Highlight(out io.Writer, text, language string) error {
	lexer := lexers.Get(language)
	if lexer == nil {
		return &HighlightError{Missing: language}
	}
	lexer = chroma.Coalesce(lexer)

	// EnsureLF would rewrite CRLF endings; the body must come out
	// byte-for-byte as it was received.
	options := &chroma.TokeniseOptions{State: "root", EnsureLF: false}

	for _, line := range splitAfterNewlines(text) {
		iterator, err := lexer.Tokenise(options, line)
		if err != nil {
			return &HighlightError{Missing: language, cause: err}
		}

		if err := h.formatter.Format(out, h.style, iterator); err != nil {
			return &HighlightError{Missing: language, cause: err}
		}
	}

	return nil
}

// splitAfterNewlines splits text into segments that each retain their
// trailing newline. The final segment may have none.
func splitAfterNewlines(text string) []string {
	var lines []string

	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, text)
			break
		}

		lines = append(lines, text[:i+1])
		text = text[i+1:]
	}

	return lines
}
