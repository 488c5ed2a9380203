package md2blog

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown    = errors.New("markdown content cannot be empty")
	ErrRender           = errors.New("markdown rendering failed")
	ErrFrontMatter      = errors.New("invalid front matter")
	ErrMissingTitle     = errors.New("front matter missing title")
	ErrInvalidWrittenOn = errors.New("invalid written_on date")
	ErrPageRender       = errors.New("page template rendering failed")

	// Asset and style resolution errors.
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrStyleNotFound    = errors.New("style not found")
)
