package pipeline

import (
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnknownChromaStyle indicates a highlight style name chroma does not know.
var ErrUnknownChromaStyle = errors.New("unknown chroma style")

// HighlightCSS generates the stylesheet for the named chroma style,
// matching the CSS classes the highlighting extension emits on code
// blocks. Returns ErrUnknownChromaStyle for names chroma would silently
// resolve to its fallback style.
func HighlightCSS(styleName string) (string, error) {
	style := styles.Get(styleName)
	if style == styles.Fallback && !strings.EqualFold(styleName, styles.Fallback.Name) {
		return "", fmt.Errorf("%w: %q", ErrUnknownChromaStyle, styleName)
	}

	formatter := chromahtml.New(chromahtml.WithClasses(true))
	var b strings.Builder
	if err := formatter.WriteCSS(&b, style); err != nil {
		return "", fmt.Errorf("generating highlight CSS: %w", err)
	}
	return b.String(), nil
}
