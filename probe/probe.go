// Package probe obtains self-reported version information from toolchain
// binaries by invoking them with a version-query flag.
package probe

import (
	"context"
	"errors"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/quantmind-br/toolpick/version"
)

// DefaultVersionFlag is what rustc-style compilers accept for a one-line
// version report.
const DefaultVersionFlag = "-V"

// Prober extracts a version Key from a compiler binary. The compiler is used
// as the authoritative version source for its whole toolchain installation,
// so the probed path is the co-located compiler, not the component itself.
type Prober struct {
	runner CommandRunner
	parser *version.Parser
	flag   string
	log    *zerolog.Logger
}

// NewProber creates a Prober. A nil runner falls back to the OS runner, an
// empty flag to DefaultVersionFlag.
func NewProber(runner CommandRunner, flag string, log *zerolog.Logger) *Prober {
	if runner == nil {
		runner = NewOSCommandRunner()
	}
	if flag == "" {
		flag = DefaultVersionFlag
	}
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}
	return &Prober{
		runner: runner,
		parser: version.NewParser(),
		flag:   flag,
		log:    log,
	}
}

// Probe invokes the binary at binPath with the version-query flag and parses
// its standard output. It returns nil when the process cannot be launched
// (missing binary, permission denied) or when the output carries no
// recognizable version line. The exit code is ignored: a compiler that
// prints its version and then exits nonzero is still a usable version
// source. One subprocess per call, no retries.
func (p *Prober) Probe(ctx context.Context, binPath string) *version.Key {
	out, err := p.runner.Output(ctx, binPath, p.flag)
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			p.log.Debug().
				Str("bin", binPath).
				Err(err).
				Msg("version probe could not launch")
			return nil
		}
	}

	key := p.parser.Parse(out)
	if key == nil {
		p.log.Debug().
			Str("bin", binPath).
			Msg("version output did not match expected shape")
	}
	return key
}
