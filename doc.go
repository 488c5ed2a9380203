// Package md2blog renders blog-post Markdown to HTML pages.
//
// # Quick Start
//
// Create a renderer and render a post:
//
//	r, err := md2blog.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := r.Render(ctx, md2blog.Input{
//	    Markdown: "---\ntitle: Hello\npublic: true\n---\n# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("hello.html", result.HTML, 0644)
//
// The result contains the full page (result.HTML), the bare article
// fragment (result.Fragment) for embedding into an existing layout, and
// the decoded front matter (result.Meta).
//
// # Rendering Pipeline
//
// Each post flows through these stages:
//
//  1. Preprocessing (line normalization, BOM stripping)
//  2. YAML front matter extraction (title, written_on, public)
//  3. Markdown parsing into a typed event stream via Goldmark
//     (GFM, footnotes, syntax highlighting)
//  4. Heading anchor injection: every heading gains a slugified
//     permalink appended right after it
//  5. Event serialization to an HTML fragment
//  6. Page assembly (shell template, CSS injection)
//
// # Heading Anchors
//
// Headings are augmented with stable, linkable anchors. A heading like
//
//	## Getting Started
//
// renders as
//
//	<h2>Getting Started</h2>
//	<a href="#getting-started" id="getting-started"><span class="anchor-icon">#</span></a>
//
// The anchor id is derived deterministically from the heading's full
// text, so links remain stable across rebuilds. Identical headings
// produce identical slugs; ids are not deduplicated.
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r, err := md2blog.NewRenderer(
//	    md2blog.WithStyle("default"),
//	    md2blog.WithChromaStyle("monokai"),
//	    md2blog.WithDatePreset("long"),
//	)
//
// # Batch Rendering
//
// For rendering a whole content directory in parallel, use RendererPool:
//
//	pool := md2blog.NewRendererPool(4)
//
//	r, err := pool.Acquire()
//	defer pool.Release(r)
//	result, err := r.Render(ctx, input)
//
// A Renderer is safe for concurrent use, but each render reparses with
// a shared goldmark instance; a pool keeps heavy construction (asset
// loading, highlight CSS generation) amortized across workers.
package md2blog
