// Package genconfig implements the gen-config command.
package genconfig

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/relink/pkg/config"
	"github.com/arthur-debert/relink/pkg/errors"
	"github.com/arthur-debert/relink/pkg/logging"
	"github.com/arthur-debert/relink/pkg/paths"
)

// Options holds options for the gen-config command
type Options struct {
	// Write saves the starter config to the default location instead of
	// printing it.
	Write bool

	Out io.Writer
}

// GenConfig prints or writes the starter configuration. Writing refuses to
// overwrite an existing file.
func GenConfig(opts Options) error {
	logger := logging.GetLogger("commands.genconfig")

	content, err := config.Starter()
	if err != nil {
		return err
	}

	if !opts.Write {
		_, err := io.WriteString(opts.Out, content)
		return err
	}

	path := paths.DefaultConfigPath()
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrInvalidInput,
			"%s already exists, not overwriting", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate,
			"could not create config directory for %s", path)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess,
			"could not write %s", path)
	}

	logger.Info().Str("path", path).Msg("starter config written")
	fmt.Fprintf(opts.Out, "wrote %s\n", path)
	return nil
}
