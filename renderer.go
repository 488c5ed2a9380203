package md2blog

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/johnbchron/go-md2blog/internal/assets"
	"github.com/johnbchron/go-md2blog/internal/dateutil"
	"github.com/johnbchron/go-md2blog/internal/fileutil"
	"github.com/johnbchron/go-md2blog/internal/frontmatter"
	"github.com/johnbchron/go-md2blog/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.EventSource          = (*pipeline.GoldmarkSource)(nil)
	_ pipeline.EventSerializer      = (pipeline.HTMLSerializer{})
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ assets.Loader                 = (*assets.EmbeddedLoader)(nil)
	_ assets.Loader                 = (*assets.DirLoader)(nil)
)

// Renderer orchestrates the markdown-to-HTML rendering pipeline.
// Create with NewRenderer, then call Render per post. A Renderer is
// safe for concurrent use: it holds no per-call state.
type Renderer struct {
	cfg          rendererConfig
	assetLoader  assets.Loader
	preprocessor pipeline.MarkdownPreprocessor
	source       pipeline.EventSource
	anchors      *pipeline.AnchorInjector
	serializer   pipeline.EventSerializer
	cssInjector  pipeline.CSSInjector
	page         *template.Template
}

// NewRenderer creates a Renderer with default configuration.
// Use options to customize behavior (e.g. WithStyle, WithChromaStyle,
// WithAssetPath). Returns an error if asset loading, style resolution,
// or template parsing fails.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		assetLoader:  assets.NewEmbeddedLoader(),
		preprocessor: &pipeline.CommonMarkPreprocessor{},
		source:       pipeline.NewGoldmarkSource(),
		serializer:   pipeline.HTMLSerializer{},
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(r)
	}

	// Handle WithAssetPath: resolve to a directory loader with embedded fallback
	if r.cfg.assetPath != "" {
		loader, err := assets.NewDirLoader(r.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		r.assetLoader = loader
	}

	r.anchors = pipeline.NewAnchorInjector(pipeline.SlugFunc(r.cfg.slugFn))

	// Resolve style input (name, path, or CSS content) to CSS content
	if err := r.resolveStyle(); err != nil {
		return nil, err
	}

	// Generate highlight CSS once; it is identical for every page.
	if r.cfg.chromaStyle != "" {
		highlightCSS, err := pipeline.HighlightCSS(r.cfg.chromaStyle)
		if err != nil {
			return nil, err
		}
		r.cfg.resolvedStyle += "\n" + highlightCSS
	}

	pageContent, err := r.assetLoader.LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading page template: %w", err)
	}
	page, err := template.New(assets.DefaultTemplateName).Parse(pageContent)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	r.page = page

	return r, nil
}

// Render runs the full pipeline and returns the rendered post.
// The context is used for cancellation. If input.FragmentOnly is true,
// page assembly is skipped and only Result.Fragment is populated.
// Recovers from internal panics to prevent crashes from propagating to
// callers.
func (r *Renderer) Render(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	content := r.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var meta PostMeta
	body, hasMeta, err := frontmatter.Extract(content, &meta)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}

	var writtenOn time.Time
	if hasMeta {
		if meta.Title == "" {
			return nil, ErrMissingTitle
		}
		if meta.WrittenOn != "" {
			writtenOn, err = dateutil.Parse(meta.WrittenOn)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidWrittenOn, err)
			}
		}
	}

	fragment, err := r.renderFragment(ctx, body)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Fragment: []byte(fragment),
		Meta:     meta,
		HasMeta:  hasMeta,
	}
	if input.FragmentOnly {
		return res, nil
	}

	page, err := r.buildPage(fragment, meta, writtenOn)
	if err != nil {
		return nil, err
	}

	// Build combined CSS (configured style + per-post CSS).
	// Order matters: configured style first, user CSS last (can override).
	cssContent := r.cfg.resolvedStyle
	if input.CSS != "" {
		cssContent += "\n" + input.CSS
	}
	page = r.cssInjector.InjectCSS(ctx, page, cssContent)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	res.HTML = []byte(page)
	return res, nil
}

// renderFragment parses the post body and serializes the anchor-augmented
// event stream. Supports context cancellation via goroutine + select
// since goldmark doesn't natively support context.
func (r *Renderer) renderFragment(ctx context.Context, body string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type rendered struct {
		fragment string
		err      error
	}

	done := make(chan rendered, 1)

	go func() {
		events, err := r.source.Events([]byte(body))
		if err != nil {
			done <- rendered{err: fmt.Errorf("%w: %v", ErrRender, err)}
			return
		}

		var b strings.Builder
		if err := r.serializer.WriteHTML(&b, r.anchors.Augment(slices.Values(events))); err != nil {
			done <- rendered{err: fmt.Errorf("%w: %v", ErrRender, err)}
			return
		}
		done <- rendered{fragment: b.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case out := <-done:
		return out.fragment, out.err
	}
}

// buildPage wraps the fragment in the page shell template.
func (r *Renderer) buildPage(fragment string, meta PostMeta, writtenOn time.Time) (string, error) {
	data := struct {
		Title   string
		Date    string
		Content template.HTML
	}{
		Title: meta.Title,
		// Fragment markup is pipeline output, not user-trusted input;
		// escaping it here would destroy it.
		Content: template.HTML(fragment), // #nosec G203
	}
	if !writtenOn.IsZero() {
		data.Date = dateutil.Format(writtenOn, r.cfg.datePreset)
	}

	var b strings.Builder
	if err := r.page.Execute(&b, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return b.String(), nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to
// CSS content. Called during NewRenderer after options are applied and
// the asset loader is configured.
func (r *Renderer) resolveStyle() error {
	input := r.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		r.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		r.cfg.resolvedStyle = input
		return nil
	}

	// Style name -> use asset loader
	css, err := r.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrStyleNotFound, input, err)
	}
	r.cfg.resolvedStyle = css
	return nil
}
