package md2blog

// Input contains rendering parameters for a single post.
type Input struct {
	Markdown     string // Markdown content with optional YAML front matter (required)
	CSS          string // Extra CSS appended after the configured style (optional)
	FragmentOnly bool   // Skip page assembly; only Result.Fragment is populated
}

// PostMeta holds the front matter fields of a post.
type PostMeta struct {
	Title     string `yaml:"title"`
	WrittenOn string `yaml:"written_on"`
	Public    bool   `yaml:"public"`
}

// Result contains the rendered outputs for a post.
type Result struct {
	HTML     []byte   // full page (empty when Input.FragmentOnly)
	Fragment []byte   // article fragment with heading anchors injected
	Meta     PostMeta // decoded front matter
	HasMeta  bool     // false when the post carried no front matter block
}

// SlugFunc maps heading text to a URL-safe anchor identifier.
// Implementations must be deterministic.
type SlugFunc func(string) string

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	styleInput    string
	resolvedStyle string
	chromaStyle   string
	assetPath     string
	datePreset    string
	slugFn        SlugFunc
}

// WithStyle sets the stylesheet: a style name resolved through the
// asset loader, a path to a CSS file, or raw CSS content.
func WithStyle(nameOrPathOrCSS string) Option {
	return func(r *Renderer) {
		r.cfg.styleInput = nameOrPathOrCSS
	}
}

// WithChromaStyle selects the syntax highlighting theme by chroma style
// name (e.g. "monokai"). The theme's stylesheet is generated once at
// construction and injected into every rendered page.
func WithChromaStyle(name string) Option {
	return func(r *Renderer) {
		r.cfg.chromaStyle = name
	}
}

// WithAssetPath loads styles and templates from a directory instead of
// the embedded defaults. Missing assets fall back to the embedded set.
func WithAssetPath(path string) Option {
	return func(r *Renderer) {
		r.cfg.assetPath = path
	}
}

// WithSlugFunc replaces the default heading slugger.
// Panics if fn is nil (programmer error, similar to time.NewTicker).
func WithSlugFunc(fn SlugFunc) Option {
	if fn == nil {
		panic("md2blog: WithSlugFunc requires a non-nil function")
	}
	return func(r *Renderer) {
		r.cfg.slugFn = fn
	}
}

// WithDatePreset sets the display format for written_on dates in the
// page header: "iso", "long", or "us".
func WithDatePreset(preset string) Option {
	return func(r *Renderer) {
		r.cfg.datePreset = preset
	}
}
