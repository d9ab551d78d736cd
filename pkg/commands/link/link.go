// Package link implements the link command: converge every declared link
// toward existence.
package link

import (
	"io"

	"github.com/arthur-debert/relink/pkg/commands/internal"
	"github.com/arthur-debert/relink/pkg/config"
	"github.com/arthur-debert/relink/pkg/filesystem"
	"github.com/arthur-debert/relink/pkg/linker"
	"github.com/arthur-debert/relink/pkg/logging"
	"github.com/arthur-debert/relink/pkg/paths"
	"github.com/arthur-debert/relink/pkg/report"
	"github.com/arthur-debert/relink/pkg/vars"
)

// Options holds options for the link command
type Options struct {
	// ConfigPath is an explicit config file; empty means the default
	// search locations.
	ConfigPath string

	// Force overrides the per-link force flag for every link.
	Force bool

	// Out receives the per-link lines and the summary.
	Out io.Writer
}

// Apply processes all configured links in declaration order. Per-link
// failures never abort the batch; configuration and alias resolution
// failures abort before any link is touched. The caller derives the exit
// verdict from the returned aggregator.
func Apply(opts Options) (*report.Aggregator, error) {
	logger := logging.GetLogger("commands.link")

	path, err := paths.FindConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	resolver, err := vars.New(cfg.Aliases)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("config", path).Int("links", len(cfg.Links)).Msg("applying links")

	fsys := filesystem.NewOS()
	agg := report.New(opts.Out)

	for _, l := range cfg.Links {
		expanded, err := internal.ExpandLink(l, resolver)
		if err != nil {
			agg.LinkError(l.Destination, err)
			continue
		}
		if opts.Force {
			expanded.Force = true
		}

		result, cerr := linker.CreateLink(fsys, expanded)
		agg.LinkResult(expanded, result, cerr)
	}

	agg.PrintSummary()
	return agg, nil
}
