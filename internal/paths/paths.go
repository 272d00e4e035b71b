// Package paths resolves where toolchain installations live on this machine.
package paths

import (
	"os"
	"path/filepath"

	"github.com/quantmind-br/toolpick/internal/config"
)

// Resolver computes the toolchains installation root from the user's HOME and
// the configuration. Configuration (which already folds in RUSTUP_HOME) wins
// over the home-relative default.
type Resolver struct {
	homeDir string
	cfg     *config.Config
}

// NewResolver creates a Resolver using the current user's HOME.
func NewResolver(cfg *config.Config) *Resolver {
	homeDir, _ := os.UserHomeDir()
	return &Resolver{
		homeDir: homeDir,
		cfg:     cfg,
	}
}

// NewResolverWithHome creates a Resolver with an explicit homeDir (useful for
// tests).
func NewResolverWithHome(cfg *config.Config, homeDir string) *Resolver {
	return &Resolver{
		homeDir: homeDir,
		cfg:     cfg,
	}
}

// HomeDir returns the resolved HOME directory.
func (r *Resolver) HomeDir() string {
	return r.homeDir
}

// RustupHome returns the configured rustup home or ~/.rustup.
func (r *Resolver) RustupHome() string {
	base := ""
	if r.cfg != nil {
		base = r.cfg.Paths.RustupHome
	}
	if base == "" {
		base = filepath.Join(r.homeDir, ".rustup")
	}
	return base
}

// ToolchainsDir returns the installation root scanned for components.
func (r *Resolver) ToolchainsDir() string {
	return filepath.Join(r.RustupHome(), "toolchains")
}
