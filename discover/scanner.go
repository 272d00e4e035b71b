package discover

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/quantmind-br/toolpick/internal/platform"
	"github.com/quantmind-br/toolpick/probe"
)

// maxScanDepth bounds the walk to the known installation shape:
// root → toolchain directory → bin directory → file. Anything deeper is a
// vendored or nested copy we must not pick up.
const maxScanDepth = 3

// Scanner enumerates toolchain installations under a rustup-style root and
// probes each one that carries the requested component.
type Scanner struct {
	fs       afero.Fs
	prober   *probe.Prober
	compiler string
	goos     string
	log      *zerolog.Logger
}

// NewScanner creates a Scanner. compiler is the base name of the co-located
// compiler binary used as the version source (rustc for rust toolchains);
// goos selects the executable suffix convention.
func NewScanner(fs afero.Fs, prober *probe.Prober, compiler, goos string, log *zerolog.Logger) *Scanner {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &Scanner{
		fs:       fs,
		prober:   prober,
		compiler: compiler,
		goos:     goos,
		log:      log,
	}
}

// Scan walks at most three levels below root and returns one Candidate per
// file named after the component whose immediate parent directory is bin.
// Each match is probed through its toolchain's compiler in the same bin
// directory. Unreadable entries and broken symlinks are skipped; a partial
// scan of a half-removed installation is expected on real systems.
func (s *Scanner) Scan(ctx context.Context, root, component string) []Candidate {
	wantName := platform.ExeName(component, s.goos)
	compilerName := platform.ExeName(s.compiler, s.goos)

	var found []Candidate
	_ = afero.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if depthBelow(root, path) >= maxScanDepth {
				return filepath.SkipDir
			}
			return nil
		}
		parent := filepath.Dir(path)
		if filepath.Base(parent) != "bin" || info.Name() != wantName {
			return nil
		}

		cand := Candidate{
			Path: path,
			Key:  s.prober.Probe(ctx, filepath.Join(parent, compilerName)),
		}
		s.log.Debug().
			Str("path", cand.Path).
			Bool("probed", cand.Key != nil).
			Msg("found component candidate")
		found = append(found, cand)
		return nil
	})

	return found
}

// depthBelow counts how many levels path sits below root.
func depthBelow(root, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
