package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/reoring/jasonify/internal/config"
	"github.com/reoring/jasonify/internal/discover"
	"github.com/reoring/jasonify/internal/gen"
	"github.com/reoring/jasonify/internal/plan"
	"github.com/reoring/jasonify/internal/shape"
)

func generateCmd(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	var f codegenFlags
	f.bind(fs)
	fs.StringVarP(&f.out, "out", "o", "", "output file name, written inside the package directory")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	cfg, err := f.load(fs)
	if err != nil {
		return fail(stderr, "%v", err)
	}
	log, err := setupLogger(cfg, stderr)
	if err != nil {
		return fail(stderr, "%v", err)
	}
	defer func() { _ = log.Sync() }()

	file, err := buildFile(cfg, log)
	if err != nil {
		return fail(stderr, "generate: %v", err)
	}
	src, err := gen.Render(file)
	if err != nil {
		return fail(stderr, "generate: %v", err)
	}
	target := outputPath(cfg)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fail(stderr, "creating output dir: %v", err)
	}
	if err := os.WriteFile(target, src, 0o644); err != nil {
		return fail(stderr, "writing output: %v", err)
	}
	log.Info("generated codecs", zap.String("file", target), zap.Int("types", len(file.Types)))
	fmt.Fprintln(stdout, target)
	return exitOK
}

func planCmd(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("plan", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	var f codegenFlags
	f.bind(fs)
	format := fs.String("format", gen.FormatText, "dump format: text, json or yaml")
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	cfg, err := f.load(fs)
	if err != nil {
		return fail(stderr, "%v", err)
	}
	log, err := setupLogger(cfg, stderr)
	if err != nil {
		return fail(stderr, "%v", err)
	}
	defer func() { _ = log.Sync() }()

	file, err := buildFile(cfg, log)
	if err != nil {
		return fail(stderr, "plan: %v", err)
	}
	out, err := gen.Dump(file.Types, *format)
	if err != nil {
		return fail(stderr, "plan: %v", err)
	}
	if _, err := stdout.Write(out); err != nil {
		return fail(stderr, "plan: %v", err)
	}
	return exitOK
}

// buildFile runs discovery, shape analysis and planning for cfg.Package.
// Every discovery and analysis problem is logged before the combined error
// is returned.
func buildFile(cfg *config.Config, log *zap.Logger) (gen.File, error) {
	res, err := discover.Package(cfg.Package, discover.Options{
		Types:   cfg.Types,
		Exclude: []string{filepath.Base(cfg.Output)},
	})
	if err != nil {
		logErrors(log, "discovery problem", err)
		return gen.File{}, err
	}
	a := shape.Analyzer{Aliases: res.Aliases, External: cfg.External, Accessors: cfg.Accessors}
	types, err := a.Analyze(res.Decls)
	if err != nil {
		logErrors(log, "unsupported field", err)
		return gen.File{}, err
	}
	if len(types) == 0 {
		log.Warn("no types selected", zap.String("dir", cfg.Package))
	}
	imports := maps.Clone(res.Imports)
	if imports == nil {
		imports = make(map[string]string, len(cfg.Imports))
	}
	maps.Copy(imports, cfg.Imports)
	return gen.File{
		Package: res.Package,
		Types:   plan.BuildAll(types),
		Methods: cfg.Methods,
		Imports: imports,
	}, nil
}

func logErrors(log *zap.Logger, msg string, err error) {
	for _, e := range multierr.Errors(err) {
		if is := shape.Issues(e); len(is) == 1 {
			log.Error(msg, zap.String("path", is[0].Path), zap.String("code", is[0].Code), zap.String("detail", is[0].Message))
			continue
		}
		log.Error(msg, zap.Error(e))
	}
}

func outputPath(cfg *config.Config) string {
	if filepath.IsAbs(cfg.Output) {
		return cfg.Output
	}
	return filepath.Join(cfg.Package, cfg.Output)
}
