package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr bool
		check   func(t *testing.T, f *cliFlags, args []string)
	}{
		{
			name: "defaults",
			args: []string{"md2blog", "content"},
			check: func(t *testing.T, f *cliFlags, args []string) {
				if f.workers != 0 {
					t.Errorf("workers = %d, want 0", f.workers)
				}
				if f.drafts || f.fragment || f.verbose || f.quiet {
					t.Error("boolean flags should default to false")
				}
				if len(args) != 1 || args[0] != "content" {
					t.Errorf("positional args = %v", args)
				}
			},
		},
		{
			name: "all flags",
			args: []string{
				"md2blog",
				"-o", "public",
				"--style", "default",
				"--chroma-style", "monokai",
				"--asset-path", "./assets",
				"--date-format", "iso",
				"-c", "blog",
				"-w", "4",
				"--drafts",
				"--fragment",
				"-v",
				"content/posts",
			},
			check: func(t *testing.T, f *cliFlags, args []string) {
				if f.output != "public" {
					t.Errorf("output = %q", f.output)
				}
				if f.style != "default" || f.chromaStyle != "monokai" {
					t.Errorf("style = %q, chroma = %q", f.style, f.chromaStyle)
				}
				if f.assetPath != "./assets" || f.dateFormat != "iso" || f.config != "blog" {
					t.Errorf("assetPath = %q, dateFormat = %q, config = %q", f.assetPath, f.dateFormat, f.config)
				}
				if f.workers != 4 {
					t.Errorf("workers = %d, want 4", f.workers)
				}
				if !f.drafts || !f.fragment || !f.verbose {
					t.Error("boolean flags not set")
				}
			},
		},
		{
			name: "version flag",
			args: []string{"md2blog", "--version"},
			check: func(t *testing.T, f *cliFlags, args []string) {
				if !f.version {
					t.Error("version = false, want true")
				}
			},
		},
		{
			name:    "unknown flag",
			args:    []string{"md2blog", "--no-such-flag"},
			wantErr: true,
		},
		{
			name:    "invalid worker value",
			args:    []string{"md2blog", "-w", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, args, err := parseFlags(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && tt.check != nil {
				tt.check(t, f, args)
			}
		})
	}
}

func TestPrintUsage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printUsage(&buf)

	out := buf.String()
	for _, want := range []string{"Usage:", "--chroma-style", "--drafts", "--workers"} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q", want)
		}
	}
}
