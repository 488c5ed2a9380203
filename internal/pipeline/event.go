package pipeline

import "iter"

// EventKind discriminates Event variants.
type EventKind int

const (
	// KindOther carries pre-rendered markup for any construct the
	// transforms pass through unchanged (paragraphs, lists, code
	// blocks, inline formatting boundaries).
	KindOther EventKind = iota

	// KindHeadingStart opens a heading of Event.Level.
	KindHeadingStart

	// KindHeadingEnd closes a heading of Event.Level.
	KindHeadingEnd

	// KindText carries a run of plain text, escaped at serialization.
	KindText

	// KindRawHTML carries markup emitted verbatim.
	KindRawHTML
)

// String returns the kind name for debugging and test failure output.
func (k EventKind) String() string {
	switch k {
	case KindOther:
		return "Other"
	case KindHeadingStart:
		return "HeadingStart"
	case KindHeadingEnd:
		return "HeadingEnd"
	case KindText:
		return "Text"
	case KindRawHTML:
		return "RawHTML"
	}
	return "Unknown"
}

// Event is one token in the streaming document representation.
// Events are immutable values: produced by a source, inspected and
// forwarded by transforms, consumed by a serializer.
type Event struct {
	Kind    EventKind
	Level   int      // heading level (1-6) for heading events
	Content string   // text for KindText, markup for KindRawHTML and KindOther
	ID      string   // parser-provided heading id, if any
	Classes []string // parser-provided heading classes, if any
}

// Stream is a finite, ordered, lazily produced sequence of events.
// A Stream supports a single forward pass only; callers needing random
// access should collect it with slices.Collect first.
type Stream = iter.Seq[Event]

// TextEvent returns a plain text event.
func TextEvent(content string) Event {
	return Event{Kind: KindText, Content: content}
}

// RawHTMLEvent returns an event whose content is written verbatim.
func RawHTMLEvent(markup string) Event {
	return Event{Kind: KindRawHTML, Content: markup}
}

// OtherEvent returns a passthrough event carrying pre-rendered markup.
func OtherEvent(markup string) Event {
	return Event{Kind: KindOther, Content: markup}
}

// HeadingStartEvent returns a heading open event.
func HeadingStartEvent(level int) Event {
	return Event{Kind: KindHeadingStart, Level: level}
}

// HeadingEndEvent returns a heading close event.
func HeadingEndEvent(level int) Event {
	return Event{Kind: KindHeadingEnd, Level: level}
}
