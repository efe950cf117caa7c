package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds output-control flags.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	version bool
}

// renderFlags holds flags that select and tune the rendering engine.
type renderFlags struct {
	engine    string
	unsafe    bool
	join      string
	highlight bool
	style     string
	ugc       bool
	nfc       bool
}

// documentFlags holds full-document output flags.
type documentFlags struct {
	enabled  bool
	title    string
	theme    string
	themeDir string
}

// cliFlags holds all flags for md2html.
type cliFlags struct {
	commonFlags
	render      renderFlags
	document    documentFlags
	output      string
	workers     int
	watch       bool
	printConfig bool

	set map[string]bool // flags given on the command line
}

// changed reports whether the named flag was given on the command line.
func (f *cliFlags) changed(name string) bool {
	return f.set[name]
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
}

// addRenderFlags adds engine flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.engine, "engine", "", "rendering engine: lite, goldmark")
	fs.BoolVar(&f.unsafe, "unsafe", false, "skip sanitization (trusted input only)")
	fs.StringVar(&f.join, "join", "", "separator between top-level blocks")
	fs.BoolVar(&f.highlight, "highlight", false, "highlight fenced code with chroma")
	fs.StringVar(&f.style, "style", "", "chroma style name (implies --highlight)")
	fs.BoolVar(&f.ugc, "ugc", false, "apply the user-generated-content allowlist")
	fs.BoolVar(&f.nfc, "nfc", false, "NFC-normalize input text")
}

// addDocumentFlags adds document flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.BoolVar(&f.enabled, "document", false, "wrap output in a full HTML document")
	fs.StringVar(&f.title, "title", "", "document title (\"\" = first H1)")
	fs.StringVar(&f.theme, "theme", "", "document stylesheet (implies --document)")
	fs.StringVar(&f.themeDir, "theme-dir", "", "directory of custom {name}.css themes")
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	f := &cliFlags{set: make(map[string]bool)}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.watch, "watch", false, "re-render inputs when they change")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective configuration and exit")

	// Flag groups
	addCommonFlags(fs, &f.commonFlags)
	addRenderFlags(fs, &f.render)
	addDocumentFlags(fs, &f.document)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, fs.Args(), nil
}
