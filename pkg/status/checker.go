// Package status classifies the on-disk state of a declared link without
// mutating anything.
package status

import (
	stderrors "errors"
	"io/fs"
	"os"

	"github.com/arthur-debert/relink/pkg/errors"
	"github.com/arthur-debert/relink/pkg/logging"
	"github.com/arthur-debert/relink/pkg/types"
)

// Status is the five-way health classification of a link.
type Status string

const (
	// StatusOK means the destination is a symlink to the expected source
	// and the source exists.
	StatusOK Status = "ok"

	// StatusBroken means the symlink's target cannot be read, or the
	// recorded target matches but the source is absent from disk.
	StatusBroken Status = "broken"

	// StatusMissing means nothing exists at the destination.
	StatusMissing Status = "missing"

	// StatusNotSymlink means the destination exists but is not a symlink.
	StatusNotSymlink Status = "not-a-symlink"

	// StatusWrongTarget means the symlink points somewhere other than the
	// expected source.
	StatusWrongTarget Status = "wrong-target"
)

// CheckLink classifies the current relationship between an expanded link
// and the filesystem. The destination is inspected with a link-aware stat;
// the link itself is never followed for the primary check. Any I/O failure
// other than "not found" propagates as an inspector-level error outside
// the five-way classification.
func CheckLink(fsys types.FS, link types.ExpandedLink) (Status, error) {
	logger := logging.GetLogger("status")

	info, err := fsys.Lstat(link.Destination)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return StatusMissing, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess,
			"could not inspect %s", link.Destination)
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return StatusNotSymlink, nil
	}

	target, err := fsys.Readlink(link.Destination)
	if err != nil {
		// Cannot even read the recorded target; fold into broken.
		logger.Debug().Err(err).Str("destination", link.Destination).Msg("readlink failed")
		return StatusBroken, nil
	}

	// Target mismatch is checked before source existence, so a link to the
	// wrong (but existing) path reports wrong-target, never ok or broken.
	if target != link.Source {
		logger.Trace().
			Str("destination", link.Destination).
			Str("expected", link.Source).
			Str("actual", target).
			Msg("target mismatch")
		return StatusWrongTarget, nil
	}

	if _, err := fsys.Stat(link.Source); err != nil {
		return StatusBroken, nil
	}

	return StatusOK, nil
}
