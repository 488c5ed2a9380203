// Package dateutil parses and formats post publication dates.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate indicates a date value that matches no accepted layout.
var ErrInvalidDate = errors.New("invalid date")

// acceptedLayouts are tried in order when parsing a written-on value.
// ISO first since that is what the content files use. The slash layout
// is month-first to match the "us" display preset, so an ambiguous
// slash date round-trips through Format unchanged.
var acceptedLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"January 2, 2006",
	"Jan 2, 2006",
	"01/02/2006",
}

// DisplayPresets maps preset names to Go time layouts for rendered output.
var DisplayPresets = map[string]string{
	"iso":  "2006-01-02",
	"long": "January 2, 2006",
	"us":   "01/02/2006",
}

// DefaultDisplayPreset is used when no preset is configured.
const DefaultDisplayPreset = "long"

// Parse converts a written-on value to a time.Time, trying each accepted
// layout in order. Returns ErrInvalidDate if none match.
func Parse(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}

	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q matches no accepted layout", ErrInvalidDate, value)
}

// Format renders t using a named preset from DisplayPresets.
// Unknown preset names fall back to the default.
func Format(t time.Time, preset string) string {
	layout, ok := DisplayPresets[strings.ToLower(preset)]
	if !ok {
		layout = DisplayPresets[DefaultDisplayPreset]
	}
	return t.Format(layout)
}
