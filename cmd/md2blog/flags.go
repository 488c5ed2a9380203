package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the md2blog command.
type cliFlags struct {
	output      string
	style       string
	chromaStyle string
	assetPath   string
	dateFormat  string
	config      string
	initConfig  string
	workers     int
	drafts      bool
	fragment    bool
	quiet       bool
	verbose     bool
	version     bool
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2blog", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: alongside sources)")
	fs.StringVar(&f.style, "style", "", "CSS style name, file path, or raw CSS")
	fs.StringVar(&f.chromaStyle, "chroma-style", "", "syntax highlighting theme (e.g. monokai)")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory for styles and templates")
	fs.StringVar(&f.dateFormat, "date-format", "", "date display preset: iso, long, us")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.initConfig, "init-config", "", "write a starter config file to this path and exit")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.drafts, "drafts", false, "render posts marked public: false")
	fs.BoolVar(&f.fragment, "fragment", false, "emit article fragments without the page shell")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-post timing")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes command usage to w.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `md2blog renders blog-post Markdown to HTML pages.

Usage:
  md2blog [flags] <file-or-directory>

Posts carry YAML front matter (title, written_on, public). Every heading
in a rendered post gains a slugified permalink anchor.

Flags:
  -o, --output <dir>        output directory (default: alongside sources)
      --style <value>       CSS style name, file path, or raw CSS
      --chroma-style <name> syntax highlighting theme (e.g. monokai)
      --asset-path <dir>    custom asset directory for styles and templates
      --date-format <name>  date display preset: iso, long, us
  -c, --config <path>       config file name or path
      --init-config <path>  write a starter config file to this path and exit
  -w, --workers <n>         parallel workers (0 = auto)
      --drafts              render posts marked public: false
      --fragment            emit article fragments without the page shell
  -q, --quiet               only show errors
  -v, --verbose             show per-post timing
      --version             print version and exit

Examples:
  md2blog content/posts -o public
  md2blog --chroma-style monokai --drafts content/posts
  md2blog -c blog post.md
`)
}
