package pipeline

import (
	"fmt"
	"strings"

	"github.com/johnbchron/go-md2blog/internal/slug"
)

// SlugFunc maps heading text to a URL-safe anchor identifier.
// Implementations must be deterministic: the same text always yields
// the same slug.
type SlugFunc func(string) string

// anchorMarkup is the injected permalink element. The slug id lives on
// the anchor itself, not on the heading tag; any id the parser attached
// to the heading passes through untouched.
const anchorMarkup = `<a href="#%s" id="%s"><span class="anchor-icon">#</span></a>`

// AnchorInjector appends a slugified permalink after each heading in an
// event stream. For every HeadingStart..HeadingEnd span it accumulates
// the enclosed Text runs, slugs the concatenation, and emits a single
// space plus the anchor element immediately after the HeadingEnd.
//
// The transform is a single forward pass with O(1) state beyond the
// accumulating text buffer. All input events are forwarded unchanged in
// their original order; the output only gains two extra events per
// heading. Headings never nest in the CommonMark grammar, so a single
// boolean tracks the open heading; if nesting ever became possible this
// would need a depth counter instead.
//
// An AnchorInjector holds no per-call state and is safe for concurrent
// use; each Augment invocation owns its own accumulator.
type AnchorInjector struct {
	slugify SlugFunc
}

// NewAnchorInjector creates an AnchorInjector using the default slugger.
// A nil fn falls back to slug.Slugify.
func NewAnchorInjector(fn SlugFunc) *AnchorInjector {
	if fn == nil {
		fn = slug.Slugify
	}
	return &AnchorInjector{slugify: fn}
}

// Augment returns a lazily evaluated stream with anchors injected.
// The input stream is consumed as the output is consumed; neither is
// materialized.
//
// A HeadingEnd with no matching HeadingStart is forwarded unchanged
// with no injection: malformed nesting degrades to a no-op rather than
// failing. A heading with no text events slugs the empty string, and
// two headings with identical text produce identical slugs; neither
// case is special-cased here.
func (a *AnchorInjector) Augment(events Stream) Stream {
	return func(yield func(Event) bool) {
		insideHeading := false
		var headingText strings.Builder

		for ev := range events {
			switch ev.Kind {
			case KindHeadingStart:
				insideHeading = true
				headingText.Reset()

			case KindText:
				if insideHeading {
					headingText.WriteString(ev.Content)
				}

			case KindHeadingEnd:
				if insideHeading {
					insideHeading = false
					anchor := a.slugify(headingText.String())
					headingText.Reset()
					if !yield(ev) {
						return
					}
					if !yield(TextEvent(" ")) {
						return
					}
					if !yield(RawHTMLEvent(fmt.Sprintf(anchorMarkup, anchor, anchor))) {
						return
					}
					continue
				}
				// Unbalanced close: forward it below, inject nothing.
			}

			if !yield(ev) {
				return
			}
		}
	}
}
