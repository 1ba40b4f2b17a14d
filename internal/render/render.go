package render

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"sort"

	"github.com/fatih/color"
	"github.com/purl-cli/purl/util/conf"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Config struct {
	// Theme is the highlight style name
	Theme string `conf:"theme"`

	// NoColor disables all terminal coloring
	NoColor bool `conf:"no_color"`
}

var DefaultConfig = conf.DefaultConfig{
	"theme":    "monokai",
	"no_color": false,
}

// Summary holds everything the renderer prints for one response. It
// lives for a single invocation and is never persisted.
type Summary struct {
	Proto      string
	Status     string
	StatusCode int
	Headers    http.Header
	MediaType  string
	Body       string
}

// languageFor maps a response media type to a highlight language tag.
// A media type without an entry prints verbatim; extending the
// renderer to new formats means adding entries here.
var languageFor = map[string]string{
	"text/html":        "html",
	"application/json": "json",
}

// Renderer prints the status line, headers and body of a response.
type Renderer struct {
	out         io.Writer
	highlighter *Highlighter
	noColor     bool

	statusColor      *color.Color
	headerNameColor  *color.Color
	headerValueColor *color.Color

	log *zap.Logger
}

// RendererParams defines the dependencies for the renderer.
type RendererParams struct {
	fx.In

	// Out is the destination for rendered output
	Out io.Writer

	// Config is the output configuration
	Config Config

	// Highlighter colors bodies with a known media type
	Highlighter *Highlighter

	// Log is the logger to use for the renderer
	Log *zap.Logger
}

// NewRenderer creates a new renderer.
func NewRenderer(params RendererParams) *Renderer {
	return &Renderer{
		out:              params.Out,
		highlighter:      params.Highlighter,
		noColor:          params.Config.NoColor,
		statusColor:      newColor(params.Config.NoColor, color.FgCyan),
		headerNameColor:  newColor(params.Config.NoColor, color.FgYellow),
		headerValueColor: newColor(params.Config.NoColor, color.FgBlue),
		log:              params.Log.Named("render"),
	}
}

// newColor builds a color that does not depend on terminal detection,
// so output is the same whether or not stdout is a tty.
func newColor(noColor bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if noColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}

	return c
}

// Render prints resp to the output writer, consuming and closing its
// body. The order is fixed: status line, headers, blank line, body.
func (r *Renderer) Render(resp *http.Response) error {
	summary, err := r.summarize(resp)
	if err != nil {
		return err
	}

	r.printStatus(summary)
	r.printHeaders(summary)
	fmt.Fprintln(r.out)

	return r.printBody(summary)
}

// summarize extracts everything worth printing from the response,
// buffering the full body.
func (r *Renderer) summarize(resp *http.Response) (*Summary, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &BodyReadError{Cause: err}
	}

	return &Summary{
		Proto:      resp.Proto,
		Status:     resp.Status,
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		MediaType:  mediaType(resp.Header),
		Body:       string(body),
	}, nil
}

// mediaType extracts the response media type. A missing or
// unparseable Content-Type degrades to "" instead of failing the run.
func mediaType(headers http.Header) string {
	value := headers.Get("Content-Type")
	if value == "" {
		return ""
	}

	mt, _, err := mime.ParseMediaType(value)
	if err != nil {
		return ""
	}

	return mt
}

func (r *Renderer) printStatus(s *Summary) {
	fmt.Fprintf(r.out, "%s %s\n", s.Proto, r.statusColor.Sprint(s.Status))
}

// printHeaders renders one line per header value. http.Header does not
// retain wire order, so names print in sorted order; values of a
// repeated name keep their received order.
func (r *Renderer) printHeaders(s *Summary) {
	names := make([]string, 0, len(s.Headers))
	for name := range s.Headers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for _, value := range s.Headers[name] {
			fmt.Fprintf(r.out, "%s%s\n",
				r.headerNameColor.Sprintf("%s: ", name),
				r.headerValueColor.Sprint(value),
			)
		}
	}
}

// printBody writes the body verbatim unless the media type maps to a
// highlight language and coloring is enabled.
func (r *Renderer) printBody(s *Summary) error {
	language, found := languageFor[s.MediaType]
	if !found || r.noColor {
		_, err := io.WriteString(r.out, s.Body)
		return err
	}

	r.log.Debug("highlighting body",
		zap.String("media_type", s.MediaType),
		zap.String("language", language),
	)

	return r.highlighter.Highlight(r.out, s.Body, language)
}
