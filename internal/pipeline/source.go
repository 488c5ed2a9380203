package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// ErrRender indicates markdown rendering failed.
var ErrRender = errors.New("markdown rendering failed")

// EventSource parses markdown and exposes it as an ordered event sequence.
type EventSource interface {
	Events(source []byte) ([]Event, error)
}

// GoldmarkSource parses markdown with goldmark and flattens the document
// into events: headings expand to HeadingStart / Text runs / HeadingEnd,
// inline formatting inside headings becomes passthrough markup events,
// and every other top-level block renders through goldmark into a single
// Other event. Transforms downstream stay agnostic to goldmark.
type GoldmarkSource struct {
	md goldmark.Markdown
}

// NewGoldmarkSource creates a GoldmarkSource with GFM extensions and
// syntax highlighting. Heading `{#id .class}` attributes are parsed and
// carried on heading events; no automatic heading IDs are generated.
func NewGoldmarkSource() *GoldmarkSource {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes so themes ship as stylesheets
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAttribute(), // {#id .class} heading attributes
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // Self-closing tags
		),
	)
	return &GoldmarkSource{md: md}
}

// Events parses source and returns the flattened event sequence.
// The sequence is materialized eagerly; consumers that want lazy
// iteration can wrap it with slices.Values, since every transform in
// this package needs only a single forward pass.
func (s *GoldmarkSource) Events(source []byte) ([]Event, error) {
	doc := s.md.Parser().Parse(text.NewReader(source))

	var events []Event
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		if h, ok := node.(*ast.Heading); ok {
			headingEvents, err := s.headingEvents(h, source)
			if err != nil {
				return nil, err
			}
			events = append(events, headingEvents...)
			continue
		}

		markup, err := s.renderNode(node, source)
		if err != nil {
			return nil, err
		}
		events = append(events, OtherEvent(markup))
	}

	return events, nil
}

// headingEvents expands a heading node into start, inline, and end events.
func (s *GoldmarkSource) headingEvents(h *ast.Heading, source []byte) ([]Event, error) {
	start := HeadingStartEvent(h.Level)
	if id, ok := h.AttributeString("id"); ok {
		if v, ok := id.([]byte); ok {
			start.ID = string(v)
		}
	}
	if class, ok := h.AttributeString("class"); ok {
		if v, ok := class.([]byte); ok {
			start.Classes = strings.Fields(string(v))
		}
	}

	events := []Event{start}
	inline, err := s.inlineEvents(h, source)
	if err != nil {
		return nil, err
	}
	events = append(events, inline...)
	events = append(events, HeadingEndEvent(h.Level))
	return events, nil
}

// inlineEvents walks the inline children of a heading. Plain text becomes
// Text runs so downstream transforms see every fragment of the heading's
// textual content even when formatting splits it; formatting boundaries
// become passthrough markup events wrapping the recursion.
func (s *GoldmarkSource) inlineEvents(parent ast.Node, source []byte) ([]Event, error) {
	var events []Event

	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			events = append(events, TextEvent(string(n.Segment.Value(source))))
			if n.SoftLineBreak() || n.HardLineBreak() {
				events = append(events, TextEvent(" "))
			}

		case *ast.String:
			events = append(events, TextEvent(string(n.Value)))

		case *ast.Emphasis:
			tag := "em"
			if n.Level == 2 {
				tag = "strong"
			}
			events = append(events, OtherEvent("<"+tag+">"))
			inner, err := s.inlineEvents(n, source)
			if err != nil {
				return nil, err
			}
			events = append(events, inner...)
			events = append(events, OtherEvent("</"+tag+">"))

		case *ast.CodeSpan:
			events = append(events, OtherEvent("<code>"))
			inner, err := s.inlineEvents(n, source)
			if err != nil {
				return nil, err
			}
			events = append(events, inner...)
			events = append(events, OtherEvent("</code>"))

		case *ast.Link:
			var open strings.Builder
			open.WriteString(`<a href="`)
			open.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
			open.WriteByte('"')
			if len(n.Title) > 0 {
				open.WriteString(` title="`)
				open.Write(util.EscapeHTML(n.Title))
				open.WriteByte('"')
			}
			open.WriteByte('>')
			events = append(events, OtherEvent(open.String()))
			inner, err := s.inlineEvents(n, source)
			if err != nil {
				return nil, err
			}
			events = append(events, inner...)
			events = append(events, OtherEvent("</a>"))

		case *ast.RawHTML:
			var raw bytes.Buffer
			for i := 0; i < n.Segments.Len(); i++ {
				segment := n.Segments.At(i)
				raw.Write(segment.Value(source))
			}
			events = append(events, RawHTMLEvent(raw.String()))

		default:
			// Images, autolinks, strikethrough and anything else render
			// whole through goldmark; their text does not contribute to
			// slugs.
			markup, err := s.renderNode(child, source)
			if err != nil {
				return nil, err
			}
			events = append(events, OtherEvent(markup))
		}
	}

	return events, nil
}

// renderNode renders a single AST subtree through goldmark's renderer.
func (s *GoldmarkSource) renderNode(node ast.Node, source []byte) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Renderer().Render(&buf, source, node); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.String(), nil
}
