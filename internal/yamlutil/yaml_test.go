package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/johnbchron/go-md2blog/internal/yamlutil"
)

type testMeta struct {
	Title  string `yaml:"title"`
	Public bool   `yaml:"public"`
	Count  int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("title: Building This Blog\npublic: true\ncount: 3"),
			dest: &testMeta{},
			check: func(t *testing.T, v any) {
				m := v.(*testMeta)
				if m.Title != "Building This Blog" {
					t.Errorf("Title = %q, want %q", m.Title, "Building This Blog")
				}
				if !m.Public {
					t.Error("Public = false, want true")
				}
				if m.Count != 3 {
					t.Errorf("Count = %d, want %d", m.Count, 3)
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testMeta{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &testMeta{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("title: test"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "invalid YAML syntax",
			data:    []byte("title: [unclosed"),
			dest:    &testMeta{},
			wantErr: errors.New("yamlutil:"), // partial match
		},
		{
			name: "unicode content",
			data: []byte("title: 日本語テスト"),
			dest: &testMeta{},
			check: func(t *testing.T, v any) {
				m := v.(*testMeta)
				if m.Title != "日本語テスト" {
					t.Errorf("Title = %q, want %q", m.Title, "日本語テスト")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if errors.Is(err, tt.wantErr) {
					return // exact match via errors.Is
				}
				if !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Fatalf("error = %q, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("known fields accepted", func(t *testing.T) {
		t.Parallel()

		var m testMeta
		if err := yamlutil.UnmarshalStrict([]byte("title: ok\npublic: false"), &m); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Title != "ok" {
			t.Errorf("Title = %q, want %q", m.Title, "ok")
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		var m testMeta
		err := yamlutil.UnmarshalStrict([]byte("title: ok\nsurprise: field"), &m)
		if err == nil {
			t.Fatal("expected error for unknown field, got nil")
		}
	})
}

func TestUnmarshal_InputTooLarge(t *testing.T) {
	t.Parallel()

	data := []byte("title: " + strings.Repeat("x", yamlutil.MaxInputSize))
	var m testMeta
	err := yamlutil.Unmarshal(data, &m)
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Fatalf("error = %v, want ErrInputTooLarge", err)
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := yamlutil.Marshal(testMeta{Title: "hello", Public: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := string(out)
	for _, want := range []string{"title: hello", "public: true"} {
		if !strings.Contains(got, want) {
			t.Errorf("Marshal output %q missing %q", got, want)
		}
	}
}
