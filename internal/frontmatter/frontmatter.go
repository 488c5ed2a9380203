// Package frontmatter splits YAML front matter from post bodies.
//
// A front matter block is a YAML document between two `---` lines, where
// the opening delimiter sits on the very first line of the content:
//
//	---
//	title: Building This Blog
//	written_on: 2023-07-13
//	public: true
//	---
//	Post body starts here.
package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/johnbchron/go-md2blog/internal/yamlutil"
)

// ErrUnterminated indicates an opening delimiter with no closing one.
var ErrUnterminated = errors.New("unterminated front matter block")

const delimiter = "---"

// Extract decodes a leading front matter block into v and returns the
// remaining body. Content without a leading delimiter line is returned
// unchanged with found=false and v untouched. An empty block between
// delimiters is valid and leaves v at its zero value.
func Extract(content string, v any) (body string, found bool, err error) {
	rest, ok := strings.CutPrefix(content, delimiter)
	if !ok {
		return content, false, nil
	}

	// The delimiter must occupy the whole first line.
	nl := strings.IndexByte(rest, '\n')
	if nl == -1 {
		return content, false, nil
	}
	if strings.TrimRight(rest[:nl], " \r") != "" {
		return content, false, nil
	}
	rest = rest[nl+1:]

	metaEnd, bodyStart := findClosing(rest)
	if metaEnd == -1 {
		return "", false, fmt.Errorf("%w: no closing %s line", ErrUnterminated, delimiter)
	}

	meta := rest[:metaEnd]
	if strings.TrimSpace(meta) != "" {
		if err := yamlutil.Unmarshal([]byte(meta), v); err != nil {
			return "", false, err
		}
	}

	return rest[bodyStart:], true, nil
}

// findClosing locates the first line consisting solely of the delimiter.
// Returns the offset where the metadata ends and where the body begins,
// or (-1, -1) when no closing line exists.
func findClosing(s string) (metaEnd, bodyStart int) {
	offset := 0
	for offset <= len(s) {
		lineEnd := strings.IndexByte(s[offset:], '\n')
		var line string
		var next int
		if lineEnd == -1 {
			line = s[offset:]
			next = len(s) + 1
		} else {
			line = s[offset : offset+lineEnd]
			next = offset + lineEnd + 1
		}

		if strings.TrimRight(line, " \r") == delimiter {
			if next > len(s) {
				next = len(s)
			}
			return offset, next
		}
		offset = next
	}
	return -1, -1
}
