// Package assets provides styles and page templates for rendered posts,
// loadable from the embedded defaults or from a directory on disk.
package assets

import (
	"errors"
	"strings"
)

// Sentinel errors for asset loading.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// DefaultStyleName is the embedded stylesheet used when none is configured.
const DefaultStyleName = "default"

// DefaultTemplateName is the embedded page shell template.
const DefaultTemplateName = "page"

// Loader resolves named styles and templates to their content.
type Loader interface {
	// LoadStyle returns CSS content for a style name (no .css extension).
	LoadStyle(name string) (string, error)

	// LoadTemplate returns template content for a name (no .html extension).
	LoadTemplate(name string) (string, error)
}

// ValidateAssetName rejects names that could escape the asset directory.
func ValidateAssetName(name string) error {
	if name == "" {
		return ErrInvalidAssetName
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") || strings.ContainsRune(name, 0) {
		return ErrInvalidAssetName
	}
	return nil
}
