package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2html [flags] [input...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Markdown to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown files or directories; \"-\" or none reads stdin")
	fmt.Fprintln(w, "           (none uses input.defaultDir when configured)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --watch               Re-render inputs when they change")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --engine <s>          Engine: lite (default), goldmark")
	fmt.Fprintln(w, "      --unsafe              Skip sanitization (trusted input only)")
	fmt.Fprintln(w, "      --join <s>            Separator between top-level blocks")
	fmt.Fprintln(w, "      --nfc                 NFC-normalize input text")
	fmt.Fprintln(w, "      --ugc                 Apply the user-generated-content allowlist")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Highlighting:")
	fmt.Fprintln(w, "      --highlight           Highlight fenced code with chroma")
	fmt.Fprintln(w, "      --style <s>           Chroma style (default: github)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --document            Wrap output in a full HTML document")
	fmt.Fprintln(w, "      --title <s>           Document title (\"\" = first H1)")
	fmt.Fprintln(w, "      --theme <name>        Document stylesheet: default, minimal, dark")
	fmt.Fprintln(w, "      --theme-dir <dir>     Directory searched for <name>.css first")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "      --print-config        Print the effective configuration as YAML")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2HTML_CONFIG, MD2HTML_STYLE, MD2HTML_ENGINE,")
	fmt.Fprintln(w, "  MD2HTML_INPUT_DIR, MD2HTML_OUTPUT_DIR, MD2HTML_WORKERS")
}
