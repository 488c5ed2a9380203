package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "post.md")
	if err := os.WriteFile(file, []byte("# hi"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "existing file", path: file, expected: true},
		{name: "directory", path: dir, expected: false},
		{name: "missing", path: filepath.Join(dir, "nope.md"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FileExists(tt.path); got != tt.expected {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"default", false},
		{"my-style", false},
		{"./custom.css", true},
		{"../shared/style.css", true},
		{"/absolute/path.css", true},
		{`C:\windows\path.css`, true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := IsFilePath(tt.input); got != tt.expected {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsCSS(t *testing.T) {
	t.Parallel()

	if !IsCSS("body { color: red }") {
		t.Error("IsCSS should accept rule content")
	}
	if IsCSS("default") {
		t.Error("IsCSS should reject style names")
	}
}

func TestIsMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"post.md", true},
		{"post.markdown", true},
		{"POST.MD", true},
		{"notes.txt", false},
		{"md", false},
		{"dir/post.md", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := IsMarkdown(tt.input); got != tt.expected {
				t.Errorf("IsMarkdown(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
