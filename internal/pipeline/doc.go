// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// This package handles the stages between raw post content and the final
// HTML fragment:
//   - Markdown preprocessing (line normalization, BOM stripping)
//   - Parsing into a typed event stream via Goldmark
//   - Heading anchor injection over the event stream
//   - Event stream serialization to an HTML fragment
//   - CSS injection into HTML documents
//
// The event stream is the package's backbone: the parser boundary flattens
// the document into ordered Event values, transforms rewrite the stream,
// and the serializer writes it back out. Page assembly (shell template,
// metadata header) is handled by the root md2blog package.
package pipeline
