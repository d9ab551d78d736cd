// Package internal holds helpers shared by the command packages.
package internal

import (
	"github.com/arthur-debert/relink/pkg/errors"
	"github.com/arthur-debert/relink/pkg/paths"
	"github.com/arthur-debert/relink/pkg/types"
	"github.com/arthur-debert/relink/pkg/vars"
)

// ExpandLink applies variable interpolation and tilde expansion to both
// paths of a link, exactly once. Paths that expand to nothing are invalid.
func ExpandLink(link types.Link, resolver *vars.Resolver) (types.ExpandedLink, error) {
	source, err := paths.Expand(link.Source, resolver)
	if err != nil {
		return types.ExpandedLink{}, err
	}
	if source == "" {
		return types.ExpandedLink{}, errors.Newf(errors.ErrInvalidInput,
			"source %q expands to an empty path", link.Source)
	}

	destination, err := paths.Expand(link.Destination, resolver)
	if err != nil {
		return types.ExpandedLink{}, err
	}
	if destination == "" {
		return types.ExpandedLink{}, errors.Newf(errors.ErrInvalidInput,
			"destination %q expands to an empty path", link.Destination)
	}

	return types.ExpandedLink{
		Source:      source,
		Destination: destination,
		Force:       link.Force,
	}, nil
}
