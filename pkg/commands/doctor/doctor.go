// Package doctor implements the doctor command: audit every declared
// link's health without mutating anything.
package doctor

import (
	"io"

	"github.com/arthur-debert/relink/pkg/commands/internal"
	"github.com/arthur-debert/relink/pkg/config"
	"github.com/arthur-debert/relink/pkg/filesystem"
	"github.com/arthur-debert/relink/pkg/logging"
	"github.com/arthur-debert/relink/pkg/paths"
	"github.com/arthur-debert/relink/pkg/report"
	"github.com/arthur-debert/relink/pkg/status"
	"github.com/arthur-debert/relink/pkg/vars"
)

// Options holds options for the doctor command
type Options struct {
	ConfigPath string
	Out        io.Writer
}

// Check inspects all configured links in declaration order. Inspection
// errors outside the five-way classification are reported per link and
// count toward the unhealthy verdict.
func Check(opts Options) (*report.Aggregator, error) {
	logger := logging.GetLogger("commands.doctor")

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

	logger.Info().Str("config", path).Int("links", len(cfg.Links)).Msg("auditing links")

	fsys := filesystem.NewOS()
	agg := report.New(opts.Out)

	for _, l := range cfg.Links {
		expanded, err := internal.ExpandLink(l, resolver)
		if err != nil {
			agg.LinkError(l.Destination, err)
			continue
		}

		st, cerr := status.CheckLink(fsys, expanded)
		if cerr != nil {
			agg.LinkError(expanded.Destination, cerr)
			continue
		}
		agg.LinkStatus(expanded, st)
	}

	agg.PrintSummary()
	return agg, nil
}
