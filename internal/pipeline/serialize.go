package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark/util"
)

// EventSerializer writes an event stream as an HTML fragment.
type EventSerializer interface {
	WriteHTML(w io.Writer, events Stream) error
}

// HTMLSerializer serializes events to HTML. Text runs are escaped;
// raw and passthrough markup is written verbatim. Heading tags carry
// whatever id and classes the parser attached, untouched.
type HTMLSerializer struct{}

// WriteHTML consumes the stream in a single forward pass and writes
// the fragment to w. The only possible failure is a writer error.
func (HTMLSerializer) WriteHTML(w io.Writer, events Stream) error {
	for ev := range events {
		var err error
		switch ev.Kind {
		case KindHeadingStart:
			err = writeHeadingOpen(w, ev)
		case KindHeadingEnd:
			_, err = fmt.Fprintf(w, "</h%d>\n", ev.Level)
		case KindText:
			_, err = w.Write(util.EscapeHTML([]byte(ev.Content)))
		case KindRawHTML, KindOther:
			_, err = io.WriteString(w, ev.Content)
		}
		if err != nil {
			return fmt.Errorf("writing event: %w", err)
		}
	}
	return nil
}

// RenderHTML collects the stream into a fragment string.
func RenderHTML(events Stream) (string, error) {
	var b strings.Builder
	if err := (HTMLSerializer{}).WriteHTML(&b, events); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeHeadingOpen(w io.Writer, ev Event) error {
	var b strings.Builder
	fmt.Fprintf(&b, "<h%d", ev.Level)
	if ev.ID != "" {
		b.WriteString(` id="`)
		b.Write(util.EscapeHTML([]byte(ev.ID)))
		b.WriteByte('"')
	}
	if len(ev.Classes) > 0 {
		b.WriteString(` class="`)
		b.Write(util.EscapeHTML([]byte(strings.Join(ev.Classes, " "))))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	_, err := io.WriteString(w, b.String())
	return err
}
