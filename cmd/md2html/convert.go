package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/decode"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput       = errors.New("no input specified")
	ErrUnknownEngine = errors.New("unknown rendering engine")
	ErrStdinMixed    = errors.New("\"-\" (stdin) cannot be combined with other inputs")
)

// stdinArg selects standard input.
const stdinArg = "-"

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *cliFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Log)

	cfg, err := loadConfig(flags.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}

	// CLI flags > env vars > config file > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	params, err := buildParams(cfg)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if flags.printConfig {
		return printConfig(cfg, env)
	}

	inputs, err := resolveInputs(positionalArgs, cfg)
	if err != nil {
		return err
	}

	if len(inputs) == 0 {
		if flags.watch {
			env.Log.Warnf("--watch ignored when reading stdin")
		}
		return convertStdin(ctx, params, resolveOutputDir(flags.output, cfg), env)
	}

	outputDir := resolveOutputDir(flags.output, cfg)
	files, err := discoverAll(inputs, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %v%s", ErrNoInput, inputs, hints.ForNoInput())
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	poolSize := resolvePoolSize(workers)
	env.Log.Debugf("converting %d file(s) with %d worker(s)", len(files), poolSize)

	results := convertBatch(ctx, poolSize, files, params)
	failed := printResults(results, env)

	if flags.watch {
		w, err := newFileWatcher(files)
		if err != nil {
			return err
		}
		defer func() { _ = w.Close() }()
		env.Log.Infof("watching %d file(s) for changes, Ctrl+C to stop", len(files))
		return w.Run(ctx, params, env)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrConversionFailed, failed, len(results))
	}
	return nil
}

// loadConfig loads the config named by the flag, falling back to
// MD2HTML_CONFIG, then to the defaults.
func loadConfig(flagConfig, envConfigPath string) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		hint := ""
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			hint = hints.ForConfigNotFound(config.SearchPaths(name))
		}
		return nil, fmt.Errorf("loading config: %w%s", err, hint)
	}
	return cfg, nil
}

// mergeFlags applies flags given on the command line over cfg.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.changed("engine") {
		cfg.Render.Engine = flags.render.engine
	}
	if flags.changed("unsafe") {
		cfg.Render.Unsafe = flags.render.unsafe
	}
	if flags.changed("join") {
		cfg.Render.JoinCharacter = flags.render.join
	}
	if flags.changed("highlight") {
		cfg.Highlight.Enabled = flags.render.highlight
	}
	if flags.changed("style") {
		cfg.Highlight.Style = flags.render.style
		cfg.Highlight.Enabled = true
	}
	if flags.changed("ugc") {
		cfg.Sanitize.UGC = flags.render.ugc
	}
	if flags.changed("nfc") {
		cfg.Input.Normalize = flags.render.nfc
	}
	if flags.changed("document") {
		cfg.Output.Document = flags.document.enabled
	}
	if flags.changed("title") {
		cfg.Output.Title = flags.document.title
		cfg.Output.Document = true
	}
	if flags.changed("theme") {
		cfg.Output.Theme = flags.document.theme
		cfg.Output.Document = true
	}
	if flags.changed("theme-dir") {
		cfg.Output.ThemeDir = flags.document.themeDir
	}
}

// printConfig writes the effective configuration as YAML.
func printConfig(cfg *config.Config, env *Environment) error {
	out, err := decode.YAML(cfg)
	if err != nil {
		return fmt.Errorf("printing config: %w", err)
	}
	_, err = env.Stdout.Write(out)
	return err
}

// resolveInputs returns the file and directory inputs. An empty result
// means stdin.
func resolveInputs(args []string, cfg *config.Config) ([]string, error) {
	if len(args) == 0 {
		if cfg.Input.DefaultDir != "" {
			return []string{cfg.Input.DefaultDir}, nil
		}
		return nil, nil
	}
	for _, a := range args {
		if a == stdinArg {
			if len(args) > 1 {
				return nil, ErrStdinMixed
			}
			return nil, nil
		}
	}
	return args, nil
}

// resolveOutputDir returns the output destination (flag wins over config).
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// convertStdin renders stdin to stdout, or to output when set. A directory
// output receives stdin.html.
func convertStdin(ctx context.Context, params *conversionParams, output string, env *Environment) error {
	content, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: stdin: %v", ErrReadMarkdown, err)
	}

	if output == "" {
		out, err := params.renderHTML(ctx, string(content), "", "")
		if err != nil {
			return err
		}
		if _, err := io.WriteString(env.Stdout, out); err != nil {
			return fmt.Errorf("%w: stdout: %v", ErrWriteHTML, err)
		}
		return nil
	}

	path := resolveOutputPath("stdin.md", output, "")
	out, err := params.renderHTML(ctx, string(content), ".", filepath.Dir(path))
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(path, out); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteHTML, err, hints.ForOutputDirectory())
	}
	env.Log.Debugf("wrote %s", path)
	return nil
}
