package vars

import (
	"errors"
	"strings"
	"testing"

	relinkerrors "github.com/arthur-debert/relink/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T, aliases map[string]string) *Resolver {
	t.Helper()
	t.Setenv("HOME", "/home/testuser")

	r, err := New(aliases)
	require.NoError(t, err)
	return r
}

func TestInterpolate_Identity(t *testing.T) {
	r := newResolver(t, nil)

	tests := []string{
		"",
		"plain string",
		"/absolute/path",
		"$name without braces is literal",
		"trailing dollar $",
		"$ {not a reference}",
	}

	for _, input := range tests {
		got, err := r.Interpolate(input)
		require.NoError(t, err)
		assert.Equal(t, input, got)
	}
}

func TestInterpolate_SimpleReference(t *testing.T) {
	r := newResolver(t, map[string]string{"dotfiles": "/home/testuser/.dotfiles"})

	got, err := r.Interpolate("${dotfiles}/bashrc")
	require.NoError(t, err)
	assert.Equal(t, "/home/testuser/.dotfiles/bashrc", got)
}

func TestInterpolate_NestedReference(t *testing.T) {
	r := newResolver(t, map[string]string{
		"a": "${b}",
		"b": "X",
	})

	got, err := r.Interpolate("${a}")
	require.NoError(t, err)
	assert.Equal(t, "X", got)
}

func TestInterpolate_ChainFlattens(t *testing.T) {
	r := newResolver(t, map[string]string{
		"root":  "${_home}/.dotfiles",
		"shell": "${root}/shell",
	})

	got, err := r.Interpolate("${shell}/bashrc")
	require.NoError(t, err)
	assert.Equal(t, "/home/testuser/.dotfiles/shell/bashrc", got)
}

func TestInterpolate_MultipleReferences(t *testing.T) {
	r := newResolver(t, map[string]string{
		"x": "1",
		"y": "2",
	})

	got, err := r.Interpolate("${x}-${y}-${x}")
	require.NoError(t, err)
	assert.Equal(t, "1-2-1", got)
}

func TestInterpolate_UnterminatedToken(t *testing.T) {
	r := newResolver(t, nil)

	_, err := r.Interpolate("${abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, relinkerrors.New(relinkerrors.ErrVarSyntax, "")))
}

func TestInterpolate_UnknownVariable(t *testing.T) {
	r := newResolver(t, nil)

	_, err := r.Interpolate("${definitely_not_defined_anywhere}")
	require.Error(t, err)
	assert.True(t, errors.Is(err, relinkerrors.New(relinkerrors.ErrVarUnknown, "")))
}

func TestInterpolate_EnvironmentFallback(t *testing.T) {
	t.Setenv("RELINK_TEST_VALUE", "from-env")
	r := newResolver(t, nil)

	got, err := r.Interpolate("${RELINK_TEST_VALUE}")
	require.NoError(t, err)
	assert.Equal(t, "from-env", got)
}

func TestInterpolate_NamespaceWinsOverEnvironment(t *testing.T) {
	t.Setenv("RELINK_TEST_VALUE", "from-env")
	r := newResolver(t, map[string]string{"RELINK_TEST_VALUE": "from-alias"})

	got, err := r.Interpolate("${RELINK_TEST_VALUE}")
	require.NoError(t, err)
	assert.Equal(t, "from-alias", got)
}

func TestNew_SelfReferenceTripsDepthBound(t *testing.T) {
	t.Setenv("HOME", "/home/testuser")

	_, err := New(map[string]string{"a": "${a}"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, relinkerrors.New(relinkerrors.ErrVarMaxDepth, "")))
}

func TestNew_TransitiveCycleTripsDepthBound(t *testing.T) {
	t.Setenv("HOME", "/home/testuser")

	_, err := New(map[string]string{
		"a": "${b}",
		"b": "${a}",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, relinkerrors.New(relinkerrors.ErrVarMaxDepth, "")))
}

func TestNew_DeepButBoundedChainResolves(t *testing.T) {
	t.Setenv("HOME", "/home/testuser")

	// A 20-deep chain stays under the bound
	aliases := map[string]string{"v": "bottom"}
	for i := 1; i <= 20; i++ {
		aliases["v"+strings.Repeat("x", i)] = "${v" + strings.Repeat("x", i-1) + "}"
	}

	r, err := New(aliases)
	require.NoError(t, err)

	got, err := r.Interpolate("${v" + strings.Repeat("x", 20) + "}")
	require.NoError(t, err)
	assert.Equal(t, "bottom", got)
}

func TestNew_BuiltinsSeeded(t *testing.T) {
	r := newResolver(t, nil)

	home, ok := r.Lookup(BuiltinHome)
	require.True(t, ok)
	assert.Equal(t, "/home/testuser", home)

	_, ok = r.Lookup(BuiltinHost)
	assert.True(t, ok)
	_, ok = r.Lookup(BuiltinUser)
	assert.True(t, ok)
}

func TestNew_AliasShadowsBuiltin(t *testing.T) {
	r := newResolver(t, map[string]string{BuiltinHost: "overridden"})

	got, err := r.Interpolate("${_host}")
	require.NoError(t, err)
	assert.Equal(t, "overridden", got)
}

func TestNew_EagerResolution(t *testing.T) {
	r := newResolver(t, map[string]string{"dotfiles": "${_home}/.dotfiles"})

	// The stored value is already flat after construction
	value, ok := r.Lookup("dotfiles")
	require.True(t, ok)
	assert.Equal(t, "/home/testuser/.dotfiles", value)
}

func TestNew_BadAliasFailsConstruction(t *testing.T) {
	t.Setenv("HOME", "/home/testuser")

	_, err := New(map[string]string{"bad": "${nope_not_set}"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, relinkerrors.New(relinkerrors.ErrVarUnknown, "")))
}
