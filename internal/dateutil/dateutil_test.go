package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "iso date",
			input: "2023-07-13",
			want:  time.Date(2023, 7, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "long form",
			input: "July 13, 2023",
			want:  time.Date(2023, 7, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "short month",
			input: "Jul 13, 2023",
			want:  time.Date(2023, 7, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "us slashes",
			input: "07/13/2023",
			want:  time.Date(2023, 7, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "ambiguous slash date parses month first",
			input: "03/04/2024",
			want:  time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "surrounding whitespace",
			input: "  2023-07-13  ",
			want:  time.Date(2023, 7, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "not a date",
			input:   "someday",
			wantErr: true,
		},
		{
			name:    "out of range month",
			input:   "2023-13-01",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("error = %v, want ErrInvalidDate", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	day := time.Date(2023, 7, 13, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		preset   string
		expected string
	}{
		{name: "iso", preset: "iso", expected: "2023-07-13"},
		{name: "long", preset: "long", expected: "July 13, 2023"},
		{name: "us", preset: "us", expected: "07/13/2023"},
		{name: "case insensitive", preset: "ISO", expected: "2023-07-13"},
		{name: "unknown falls back to long", preset: "nope", expected: "July 13, 2023"},
		{name: "empty falls back to long", preset: "", expected: "July 13, 2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Format(day, tt.preset); got != tt.expected {
				t.Errorf("Format(%q) = %q, want %q", tt.preset, got, tt.expected)
			}
		})
	}
}
