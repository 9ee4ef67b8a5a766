// Package cliconfig resolves the CLI's flags and optional config file into a
// Config, and builds the process logr.Logger: flag parsing with a viper
// overlay, slog-backed structured logging.
package cliconfig

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/viper"

	"github.com/bmcpi/redfish-modelgen/internal/modelerr"
)

// Config is the resolved set of options driving one generation run.
type Config struct {
	InputRoot  string
	OutputRoot string

	Verbose           bool
	StrictMissingRefs bool

	// GoModuleBase is the Go import path OutputRoot will live under once
	// written, used to qualify cross-domain package imports in generated
	// files (e.g. "chassis.Status" needs an import of
	// "{GoModuleBase}/chassis"). Resolved from the nearest go.mod above
	// OutputRoot unless -go-module overrides it; empty when neither is
	// available, in which case generated files get no import for a
	// cross-domain reference; the generator does not log this, and only the
	// failed go.mod lookup is logged at debug level.
	GoModuleBase string

	Log logr.Logger
}

// Parse reads args (the command line without the program name), optionally overlaying a config file named by
// -config, and validates the two required positional arguments: both must
// exist, and both are canonicalized.
func Parse(args []string) (*Config, error) {
	fs := flag.NewFlagSet("redfish-modelgen", flag.ContinueOnError)

	verbose := fs.Bool("verbose", false, "enable debug-level logging")
	fs.BoolVar(verbose, "v", false, "enable debug-level logging (shorthand)")
	configPath := fs.String("config", "", "optional YAML/JSON config file overlaying defaults")
	strict := fs.Bool("strict-missing-refs", false, "treat an unresolved $ref as fatal instead of warn-and-skip")
	goModule := fs.String("go-module", "", "Go import path of the output tree (default: resolved from the nearest go.mod above output-root)")
	help := fs.Bool("help", false, "show usage and exit")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: redfish-modelgen [flags] <input-root> <output-root>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Walks <input-root> for openapi.yaml shards, computes the transitive")
		fmt.Fprintln(os.Stderr, "$ref closure of every operation's request/response schema, and")
		fmt.Fprintln(os.Stderr, "generates a statically-typed Go data model under <output-root>.")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "flags:")
		fs.PrintDefaults()
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "example:")
		fmt.Fprintln(os.Stderr, "  redfish-modelgen ./DSP8010_2023.3/json-schema ./internal/model")
	}

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", modelerr.ErrArgument, err)
	}
	if *help {
		fs.Usage()
		os.Exit(0)
	}

	if *configPath != "" {
		if err := overlayConfigFile(*configPath, verbose, strict); err != nil {
			return nil, err
		}
	}

	positional := fs.Args()
	if len(positional) != 2 {
		fs.Usage()
		return nil, fmt.Errorf("%w: expected 2 positional arguments (input root, output root), got %d", modelerr.ErrArgument, len(positional))
	}

	inputRoot, err := canonicalize(positional[0])
	if err != nil {
		return nil, err
	}
	outputRoot, err := canonicalize(positional[1])
	if err != nil {
		return nil, err
	}

	level := "info"
	if *verbose {
		level = "debug"
	}
	log := defaultLogger(level)

	moduleBase := *goModule
	if moduleBase == "" {
		resolved, err := resolveGoModuleBase(outputRoot)
		if err != nil {
			log.V(1).Info("could not resolve output module path; cross-domain references will not compile", "reason", err.Error())
		} else {
			moduleBase = resolved
		}
	}

	return &Config{
		InputRoot:         inputRoot,
		OutputRoot:        outputRoot,
		Verbose:           *verbose,
		StrictMissingRefs: *strict,
		GoModuleBase:      moduleBase,
		Log:               log,
	}, nil
}

// resolveGoModuleBase finds the nearest go.mod at or above outputRoot and
// derives the import path OutputRoot's generated tree will live under: the
// module directive plus outputRoot's path relative to the module root.
func resolveGoModuleBase(outputRoot string) (string, error) {
	dir := outputRoot
	for {
		data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
		if err == nil {
			modPath := parseModuleDirective(string(data))
			if modPath == "" {
				return "", fmt.Errorf("%s has no module directive", filepath.Join(dir, "go.mod"))
			}
			rel, err := filepath.Rel(dir, outputRoot)
			if err != nil {
				return "", err
			}
			if rel == "." {
				return modPath, nil
			}
			return modPath + "/" + filepath.ToSlash(rel), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no go.mod found above %s", outputRoot)
		}
		dir = parent
	}
}

// parseModuleDirective returns the module path named by a go.mod's "module"
// line, or "" if none is found.
func parseModuleDirective(goMod string) string {
	for _, line := range strings.Split(goMod, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "module "); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

// overlayConfigFile lets a handful of flags be set from a config file
// instead of the command line. This tool only has two boolean knobs worth
// exposing this way.
func overlayConfigFile(path string, verbose, strict *bool) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("%w: reading config %s: %v", modelerr.ErrIO, path, err)
	}
	if v.IsSet("verbose") {
		*verbose = v.GetBool("verbose")
	}
	if v.IsSet("strict_missing_refs") {
		*strict = v.GetBool("strict_missing_refs")
	}
	return nil
}

// canonicalize resolves path to an absolute, symlink-free form and confirms
// it exists (both must exist; both are canonicalized).
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: resolving %s: %v", modelerr.ErrArgument, path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s does not exist: %v", modelerr.ErrArgument, path, err)
	}
	return resolved, nil
}

// defaultLogger builds a logr.Logger over a JSON slog handler, with a
// ReplaceAttr hook that truncates source file/function paths to their last
// three segments. Writes to stderr so structured log lines never interleave
// with the CLI's plain-text progress banner on stdout.
func defaultLogger(level string) logr.Logger {
	customAttr := func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.SourceKey {
			ss, ok := a.Value.Any().(*slog.Source)
			if !ok || ss == nil {
				return a
			}
			f := strings.Split(ss.Function, "/")
			if len(f) > 3 {
				ss.Function = filepath.Join(f[len(f)-3:]...)
			}
			p := strings.Split(ss.File, "/")
			if len(p) > 3 {
				ss.File = filepath.Join(p[len(p)-3:]...)
			}
			return a
		}
		return a
	}

	opts := &slog.HandlerOptions{AddSource: true, ReplaceAttr: customAttr}
	switch level {
	case "debug":
		opts.Level = slog.LevelDebug
	default:
		opts.Level = slog.LevelInfo
	}
	log := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	return logr.FromSlogHandler(log.Handler())
}
