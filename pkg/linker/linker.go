// Package linker converges a declared link toward existence on disk.
package linker

import (
	"path/filepath"

	"github.com/arthur-debert/relink/pkg/errors"
	"github.com/arthur-debert/relink/pkg/logging"
	"github.com/arthur-debert/relink/pkg/types"
)

// Result is the outcome of one creation attempt.
type Result string

const (
	// ResultCreated means the symlink was created and its source exists.
	ResultCreated Result = "created"

	// ResultCreatedBroken means the symlink was created but its source is
	// absent from disk. The creation still counts as a success; the report
	// warns the operator.
	ResultCreatedBroken Result = "created-broken"

	// ResultSkipped means the destination already exists and force was off.
	ResultSkipped Result = "skipped"

	// ResultFailed means removal or symlink creation failed.
	ResultFailed Result = "failed"
)

// CreateLink creates the symlink described by link. An existing destination
// is left alone unless Force is set, in which case it is removed first
// (files directly, directories recursively). The accompanying error is
// non-nil only for ResultFailed.
//
// There is no rollback on partial failure: parent directories created
// before a failed symlink stay in place, and re-running is idempotent.
func CreateLink(fsys types.FS, link types.ExpandedLink) (Result, error) {
	logger := logging.GetLogger("linker")

	// A dereferencing existence check is fine here; existence is what
	// matters, not identity.
	if _, err := fsys.Stat(link.Destination); err == nil {
		if !link.Force {
			logger.Debug().Str("destination", link.Destination).Msg("destination exists, skipping")
			return ResultSkipped, nil
		}

		if err := remove(fsys, link.Destination); err != nil {
			return ResultFailed, err
		}
		logger.Debug().Str("destination", link.Destination).Msg("removed existing destination")
	}

	// Best effort: a failure here is tolerated so that the symlink call
	// below surfaces the real error.
	if err := fsys.MkdirAll(filepath.Dir(link.Destination), 0755); err != nil {
		logger.Debug().Err(err).Str("destination", link.Destination).Msg("parent directory creation failed")
	}

	if err := fsys.Symlink(link.Source, link.Destination); err != nil {
		return ResultFailed, errors.Wrapf(err, errors.ErrSymlinkCreate,
			"could not create symlink %s -> %s", link.Destination, link.Source)
	}

	if _, err := fsys.Stat(link.Source); err != nil {
		logger.Warn().
			Str("source", link.Source).
			Str("destination", link.Destination).
			Msg("symlink created but source does not exist")
		return ResultCreatedBroken, nil
	}

	logger.Debug().
		Str("source", link.Source).
		Str("destination", link.Destination).
		Msg("symlink created")
	return ResultCreated, nil
}

// remove deletes whatever occupies path: as a file first, recursively if
// the path turns out to be a directory.
func remove(fsys types.FS, path string) error {
	if err := fsys.Remove(path); err != nil {
		info, statErr := fsys.Stat(path)
		if statErr == nil && info.IsDir() {
			if err := fsys.RemoveAll(path); err != nil {
				return errors.Wrapf(err, errors.ErrFileRemove,
					"could not remove directory %s", path)
			}
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileRemove, "could not remove %s", path)
	}
	return nil
}
