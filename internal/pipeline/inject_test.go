package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestCSSInjection_InjectCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		html     string
		css      string
		expected string
	}{
		{
			name:     "into head",
			html:     "<html><head><title>t</title></head><body></body></html>",
			css:      "body{color:red}",
			expected: "<html><head><title>t</title><style>body{color:red}</style></head><body></body></html>",
		},
		{
			name:     "after body when no head",
			html:     "<body class=\"x\"><p>hi</p></body>",
			css:      "p{margin:0}",
			expected: "<body class=\"x\"><style>p{margin:0}</style><p>hi</p></body>",
		},
		{
			name:     "prepend fallback",
			html:     "<p>bare fragment</p>",
			css:      "p{margin:0}",
			expected: "<style>p{margin:0}</style><p>bare fragment</p>",
		},
		{
			name:     "empty css is a no-op",
			html:     "<html><head></head></html>",
			css:      "",
			expected: "<html><head></head></html>",
		},
		{
			name:     "style close sequence escaped",
			html:     "<p>x</p>",
			css:      "p{}</style><script>",
			expected: `<style>p{}<\/style><script></style><p>x</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := &CSSInjection{}
			got := s.InjectCSS(context.Background(), tt.html, tt.css)
			if got != tt.expected {
				t.Errorf("InjectCSS() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCSSInjection_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &CSSInjection{}
	html := "<html><head></head></html>"
	got := s.InjectCSS(ctx, html, "body{}")
	if got != html {
		t.Errorf("cancelled inject = %q, want unchanged HTML", got)
	}
	if strings.Contains(got, "<style>") {
		t.Error("cancelled inject should not add a style block")
	}
}
