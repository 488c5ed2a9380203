package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DirLoader loads assets from a directory on disk, falling back to the
// embedded defaults for anything the directory does not provide.
//
// Expected layout:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── page.html
type DirLoader struct {
	base     string
	fallback *EmbeddedLoader
}

// NewDirLoader creates a DirLoader rooted at base.
// Returns ErrInvalidAssetPath if base does not exist or is not a directory.
func NewDirLoader(base string) (*DirLoader, error) {
	info, err := os.Stat(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrInvalidAssetPath, base)
	}
	return &DirLoader{base: base, fallback: NewEmbeddedLoader()}, nil
}

// LoadStyle loads a style from disk, then from embedded defaults.
func (d *DirLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := os.ReadFile(filepath.Join(d.base, "styles", name+".css"))
	if err == nil {
		return string(content), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("loading style %q: %w", name, err)
	}
	return d.fallback.LoadStyle(name)
}

// LoadTemplate loads a template from disk, then from embedded defaults.
func (d *DirLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := os.ReadFile(filepath.Join(d.base, "templates", name+".html"))
	if err == nil {
		return string(content), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("loading template %q: %w", name, err)
	}
	return d.fallback.LoadTemplate(name)
}

// Compile-time interface check.
var _ Loader = (*DirLoader)(nil)
