package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	md2blog "github.com/johnbchron/go-md2blog"
	"github.com/johnbchron/go-md2blog/internal/config"
	"github.com/johnbchron/go-md2blog/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteHTML          = errors.New("failed to write HTML file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrRendererInit       = errors.New("failed to initialize renderer")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Renderer is the interface for the rendering service.
type Renderer interface {
	Render(ctx context.Context, input md2blog.Input) (*md2blog.Result, error)
}

// Compile-time interface implementation check.
var _ Renderer = (*md2blog.Renderer)(nil)

// Pool abstracts renderer pool operations for testability.
type Pool interface {
	Acquire() (Renderer, error)
	Release(Renderer)
	Size() int
}

// libraryPool adapts md2blog.RendererPool to the Pool interface.
type libraryPool struct {
	inner *md2blog.RendererPool
}

var _ Pool = (*libraryPool)(nil)

func (p *libraryPool) Acquire() (Renderer, error) {
	r, err := p.inner.Acquire()
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (p *libraryPool) Release(r Renderer) {
	if rr, ok := r.(*md2blog.Renderer); ok {
		p.inner.Release(rr)
	}
}

func (p *libraryPool) Size() int {
	return p.inner.Size()
}

// PostFile represents a single post to render.
type PostFile struct {
	InputPath  string
	OutputPath string
}

// RenderResult holds the outcome of rendering a single post.
type RenderResult struct {
	InputPath  string
	OutputPath string
	Skipped    bool // draft excluded from the build
	Err        error
	Duration   time.Duration
}

// batchOptions groups per-run rendering behavior.
type batchOptions struct {
	includeDrafts bool
	fragmentOnly  bool
}

// run orchestrates a full rendering pass over the content directory.
func run(ctx context.Context, flags *cliFlags, args []string, stdout, stderr io.Writer) error {
	if flags.initConfig != "" {
		if err := config.WriteConfig(starterConfig(), flags.initConfig); err != nil {
			return fmt.Errorf("writing starter config: %w", err)
		}
		fmt.Fprintf(stdout, "Wrote %s\n", flags.initConfig)
		return nil
	}

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	var err error
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// CLI flags override config values
	mergeFlags(flags, cfg)

	inputPath, err := resolveInputPath(args, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverPosts(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering posts: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", inputPath)
	}

	poolSize := resolvePoolSize(flags.workers)
	if flags.verbose {
		fmt.Fprintf(stderr, "Pool size: %d\n", poolSize)
	}
	pool := &libraryPool{inner: md2blog.NewRendererPool(poolSize, rendererOptions(cfg)...)}

	opts := batchOptions{
		includeDrafts: cfg.Posts.IncludeDrafts,
		fragmentOnly:  cfg.Posts.FragmentOnly,
	}
	results := renderBatch(ctx, pool, files, opts)

	failed := printResults(results, flags.quiet, flags.verbose, stdout, stderr)
	if failed > 0 {
		return fmt.Errorf("%d post(s) failed", failed)
	}
	return nil
}

// starterConfig returns the config scaffolded by --init-config, filled
// with the values a typical blog starts from.
func starterConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Input.DefaultDir = "content/posts"
	cfg.Output.DefaultDir = "public"
	cfg.Style.Name = "default"
	cfg.Dates.DisplayPreset = "long"
	return cfg
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.style != "" {
		cfg.Style.Name = flags.style
	}
	if flags.chromaStyle != "" {
		cfg.Style.Chroma = flags.chromaStyle
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}
	if flags.dateFormat != "" {
		cfg.Dates.DisplayPreset = flags.dateFormat
	}
	if flags.drafts {
		cfg.Posts.IncludeDrafts = true
	}
	if flags.fragment {
		cfg.Posts.FragmentOnly = true
	}
}

// rendererOptions builds library options from the merged config.
func rendererOptions(cfg *config.Config) []md2blog.Option {
	var opts []md2blog.Option
	if cfg.Style.Name != "" {
		opts = append(opts, md2blog.WithStyle(cfg.Style.Name))
	}
	if cfg.Style.Chroma != "" {
		opts = append(opts, md2blog.WithChromaStyle(cfg.Style.Chroma))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, md2blog.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Dates.DisplayPreset != "" {
		opts = append(opts, md2blog.WithDatePreset(cfg.Dates.DisplayPreset))
	}
	return opts
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// resolvePoolSize determines the renderer pool size.
// Priority: explicit flag > CPU-based default.
func resolvePoolSize(flagWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	return md2blog.DefaultPoolSize()
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > md2blog.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, md2blog.MaxPoolSize)
	}
	return nil
}

// discoverPosts finds all markdown files to render.
func discoverPosts(inputPath, outputDir string) ([]PostFile, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !fileutil.IsMarkdown(inputPath) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []PostFile{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []PostFile
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdown(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, PostFile{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the HTML output path for a markdown file.
// A directory input preserves relative structure under outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+".html")
	}

	if strings.HasSuffix(outputDir, ".html") {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base+".html")
		}
	}

	return filepath.Join(outputDir, base+".html")
}

// renderBatch processes posts concurrently using the renderer pool.
func renderBatch(ctx context.Context, pool Pool, files []PostFile, opts batchOptions) []RenderResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]RenderResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			r, err := pool.Acquire()
			if err != nil {
				// Renderer creation failed, mark remaining jobs as failed
				for idx := range jobs {
					results[idx] = RenderResult{
						InputPath: files[idx].InputPath,
						Err:       fmt.Errorf("%w: %v", ErrRendererInit, err),
					}
				}
				return
			}
			defer pool.Release(r)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = RenderResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = renderPost(ctx, r, files[idx], opts)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// renderPost processes a single post and returns the result.
func renderPost(ctx context.Context, r Renderer, f PostFile, opts batchOptions) RenderResult {
	start := time.Now()
	result := RenderResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	rendered, err := r.Render(ctx, md2blog.Input{
		Markdown:     string(content),
		FragmentOnly: opts.fragmentOnly,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	// Posts without front matter are treated as public.
	if rendered.HasMeta && !rendered.Meta.Public && !opts.includeDrafts {
		result.Skipped = true
		result.Duration = time.Since(start)
		return result
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	output := rendered.HTML
	if opts.fragmentOnly {
		output = rendered.Fragment
	}
	// #nosec G306 -- HTML files are meant to be readable
	if err := os.WriteFile(f.OutputPath, output, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteHTML, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of rendered, skipped, and failed posts.
type ResultSummary struct {
	Rendered int
	Skipped  int
	Failed   int
}

// countResults tallies render outcomes.
func countResults(results []RenderResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Skipped:
			summary.Skipped++
		default:
			summary.Rendered++
		}
	}
	return summary
}

// printResults outputs render results and returns the failure count.
func printResults(results []RenderResult, quiet, verbose bool, stdout, stderr io.Writer) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if r.Skipped {
			fmt.Fprintf(stdout, "Skipped draft %s\n", r.InputPath)
			continue
		}

		if verbose {
			fmt.Fprintf(stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(stdout, "\n%d rendered, %d skipped, %d failed\n", summary.Rendered, summary.Skipped, summary.Failed)
	}

	return summary.Failed
}
