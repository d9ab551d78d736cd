// Package vars implements ${name} variable interpolation over a layered
// namespace: built-in identities, user aliases, then the process
// environment as a fallback.
package vars

import (
	"os"
	"os/user"
	"strings"

	"github.com/arthur-debert/relink/pkg/errors"
	"github.com/arthur-debert/relink/pkg/logging"
	"github.com/arthur-debert/relink/pkg/paths"
)

// Built-in variable names, seeded before user aliases are read so aliases
// may reference them. A user alias of the same name shadows the built-in.
const (
	BuiltinHome = "_home"
	BuiltinUser = "_user"
	BuiltinHost = "_host"
)

// maxDepth bounds nested reference resolution. This is a depth bound, not
// cycle detection: a self-referential alias recurses until the bound trips.
const maxDepth = 32

// Resolver holds the fully-resolved namespace. It is immutable after New
// returns and safe to share without synchronization.
type Resolver struct {
	namespace map[string]string
	lookupEnv func(string) (string, bool)
}

// New builds a Resolver from user aliases. Built-ins are seeded first,
// aliases overlaid (last write wins), and every value is then eagerly
// resolved into its final form. Construction fails if the home directory
// is unavailable or any alias value cannot be resolved.
func New(aliases map[string]string) (*Resolver, error) {
	logger := logging.GetLogger("vars")

	home, err := paths.GetHomeDirectory()
	if err != nil {
		return nil, err
	}

	namespace := map[string]string{
		BuiltinHome: home,
		BuiltinUser: currentUser(),
		BuiltinHost: hostname(),
	}
	for name, value := range aliases {
		namespace[name] = value
	}

	r := &Resolver{
		namespace: namespace,
		lookupEnv: os.LookupEnv,
	}

	// Eager one-time resolution pass. Order across keys does not matter:
	// each value is resolved independently with its own recursion.
	for name, value := range r.namespace {
		resolved, err := r.interpolate(value, 0)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"could not resolve alias %q", name)
		}
		r.namespace[name] = resolved
	}

	logger.Debug().Int("entries", len(r.namespace)).Msg("namespace resolved")
	return r, nil
}

// Interpolate substitutes every ${name} reference in s and returns the
// fully expanded string. $name without braces is literal.
func (r *Resolver) Interpolate(s string) (string, error) {
	return r.interpolate(s, 0)
}

// Lookup returns the resolved value of a namespace entry.
func (r *Resolver) Lookup(name string) (string, bool) {
	value, ok := r.namespace[name]
	return value, ok
}

func (r *Resolver) interpolate(s string, depth int) (string, error) {
	if depth > maxDepth {
		return "", errors.Newf(errors.ErrVarMaxDepth,
			"variable expansion exceeded %d levels (reference cycle?)", maxDepth)
	}

	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] == '$' && i+1 < len(s) && s[i+1] == '{' {
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				return "", errors.Newf(errors.ErrVarSyntax,
					"unterminated ${ in %q", s)
			}
			name := s[i+2 : i+2+end]

			value, ok := r.namespace[name]
			if !ok {
				value, ok = r.lookupEnv(name)
			}
			if !ok {
				return "", errors.Newf(errors.ErrVarUnknown,
					"undefined variable %q", name)
			}

			resolved, err := r.interpolate(value, depth+1)
			if err != nil {
				return "", err
			}
			b.WriteString(resolved)
			i += end + 3
			continue
		}

		b.WriteByte(s[i])
		i++
	}

	return b.String(), nil
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

func hostname() string {
	host, err := os.Hostname()
	if err != nil {
		return ""
	}
	return host
}
