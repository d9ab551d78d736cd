package config

import (
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/relink/pkg/errors"
	"github.com/arthur-debert/relink/pkg/types"
)

const starterHeader = `# relink configuration
#
# aliases are named path fragments; values may reference other aliases,
# environment variables and the built-ins _home, _user and _host with
# the ${name} syntax.
#
# Each [[links]] entry declares a symlink at "destination" pointing to
# "source". Set force = true to replace whatever already occupies the
# destination.

`

type starterConfig struct {
	Aliases map[string]string `toml:"aliases"`
	Links   []types.Link      `toml:"links"`
}

// Starter renders a commented example configuration in TOML form.
func Starter() (string, error) {
	example := starterConfig{
		Aliases: map[string]string{
			"dotfiles": "${_home}/.dotfiles",
		},
		Links: []types.Link{
			{Source: "${dotfiles}/bashrc", Destination: "~/.bashrc"},
			{Source: "${dotfiles}/gitconfig", Destination: "~/.gitconfig", Force: true},
		},
	}

	out, err := toml.Marshal(example)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "could not render starter config")
	}
	return starterHeader + string(out), nil
}
