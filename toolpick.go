// Package toolpick locates the best-matching installed build of a named
// toolchain component among side-by-side rustup-style installations.
//
// Every installation directory under the toolchains root is probed through
// its compiler binary, the self-reported version string is parsed into a
// (semantic version, build date) key, and the component path from the
// highest-ranked installation is returned. Lookup is best-effort throughout:
// unreadable directories, missing compilers and garbled version output
// degrade individual candidates instead of failing the call.
package toolpick

import (
	"context"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/quantmind-br/toolpick/discover"
	"github.com/quantmind-br/toolpick/internal/config"
	"github.com/quantmind-br/toolpick/internal/fsops"
	"github.com/quantmind-br/toolpick/internal/paths"
	"github.com/quantmind-br/toolpick/logging"
	"github.com/quantmind-br/toolpick/probe"
)

// DefaultCompiler is the binary probed for the toolchain's version.
const DefaultCompiler = "rustc"

// Finder locates installed toolchain components.
type Finder struct {
	fs       afero.Fs
	runner   probe.CommandRunner
	log      *zerolog.Logger
	root     string
	compiler string
	flag     string
	goos     string
}

// Option configures a Finder.
type Option func(*Finder)

// WithFs sets the filesystem the scan runs on. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(f *Finder) { f.fs = fs }
}

// WithRoot sets the toolchains installation root, bypassing configuration
// and RUSTUP_HOME resolution.
func WithRoot(root string) Option {
	return func(f *Finder) { f.root = root }
}

// WithLogger sets the logger. Defaults to a no-op logger; the lookup emits
// no output of its own.
func WithLogger(log *zerolog.Logger) Option {
	return func(f *Finder) {
		if log != nil {
			f.log = log
		}
	}
}

// WithCompiler sets the base name of the co-located compiler binary used as
// the version source. Defaults to DefaultCompiler.
func WithCompiler(name string) Option {
	return func(f *Finder) {
		if name != "" {
			f.compiler = name
		}
	}
}

// WithVersionFlag sets the flag passed to the compiler when probing.
// Defaults to probe.DefaultVersionFlag.
func WithVersionFlag(flag string) Option {
	return func(f *Finder) {
		if flag != "" {
			f.flag = flag
		}
	}
}

// WithRunner sets the subprocess runner, mainly for tests.
func WithRunner(r probe.CommandRunner) Option {
	return func(f *Finder) { f.runner = r }
}

// New creates a Finder. Without options it scans the real filesystem under
// the root resolved from configuration, RUSTUP_HOME, or ~/.rustup/toolchains.
func New(opts ...Option) *Finder {
	nop := zerolog.Nop()
	f := &Finder{
		fs:       afero.NewOsFs(),
		log:      &nop,
		compiler: DefaultCompiler,
		flag:     probe.DefaultVersionFlag,
		goos:     runtime.GOOS,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Find searches every installed toolchain for the named component and
// returns the path of the newest build. The bool result distinguishes
// "found" from "component not installed anywhere"; there is no error: a
// missing root, empty tree or broken installation all collapse into a
// smaller candidate set. Candidates whose exact (version, date) keys tie are
// resolved to the one encountered last in directory order.
func (f *Finder) Find(ctx context.Context, component string) (string, bool) {
	root := f.root
	if root == "" {
		root = defaultRoot()
	}

	if !fsops.Exists(f.fs, root) {
		f.log.Debug().Str("root", root).Msg("toolchains root not present")
		return "", false
	}
	if !fsops.IsDir(f.fs, root) {
		f.log.Debug().Str("root", root).Msg("toolchains root is not a directory")
		return "", false
	}

	prober := probe.NewProber(f.runner, f.flag, f.log)
	scanner := discover.NewScanner(f.fs, prober, f.compiler, f.goos, f.log)

	candidates := scanner.Scan(ctx, root, component)
	path, ok := discover.Best(candidates)
	if ok {
		f.log.Debug().
			Str("component", component).
			Str("path", path).
			Int("candidates", len(candidates)).
			Msg("selected component")
	}
	return path, ok
}

// FindInstalledComponent searches the default installation root for the
// named component. It is the one-call form of New().Find.
func FindInstalledComponent(name string) (string, bool) {
	return New().Find(context.Background(), name)
}

// NewDefaultLogger builds the console+file logger described by the loaded
// configuration (logging.level, logging.color, paths.log_file). Pass the
// result to WithLogger to make lookups observable; without it the Finder
// stays silent.
func NewDefaultLogger() *zerolog.Logger {
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{}
	}
	return logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		LogFile: cfg.Paths.LogFile,
		NoColor: cfg.Logging.Color == "never",
	})
}

// defaultRoot resolves the toolchains root from config and environment.
// Config load failures fall back to the pure home-relative default.
func defaultRoot() string {
	cfg, err := config.Load()
	if err != nil {
		cfg = nil
	}
	return paths.NewResolver(cfg).ToolchainsDir()
}
