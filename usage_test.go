package argv

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rootUsage = `Usage: prog ...

feed the animals

Commands:

  cat feed the cat
  monkey feed the monkey

Options:

  -h, --help show this help message
  --version show version information
  -v, --verbose increase verbosity
`

const catUsage = `Usage: prog cat ...

feed the cat

Options:

  -h, --help show this help message
  -r, --rate feeding rate
  -a, --auto feed automatically

Positionals:

  food what to feed
`

func TestHelpBuiltin(t *testing.T) {
	t.Parallel()

	t.Run("root help", func(t *testing.T) {
		t.Parallel()

		root := feedGrammar(t)
		out := &bytes.Buffer{}
		root.SetOutput(out)

		res, err := root.Parse([]string{"prog", "--help"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTerminated))
		assert.Nil(t, res)
		assert.Equal(t, rootUsage, out.String())
	})

	t.Run("subcommand help with usage prefix", func(t *testing.T) {
		t.Parallel()

		root := feedGrammar(t)
		out := &bytes.Buffer{}
		root.SetOutput(out)

		_, err := root.Parse([]string{"prog", "cat", "-h"})
		require.ErrorIs(t, err, ErrTerminated)
		assert.Equal(t, catUsage, out.String())
	})

	t.Run("help inside a cluster", func(t *testing.T) {
		t.Parallel()

		root := feedGrammar(t)
		out := &bytes.Buffer{}
		root.SetOutput(out)

		_, err := root.Parse([]string{"prog", "-vh"})
		require.ErrorIs(t, err, ErrTerminated)
		assert.Equal(t, rootUsage, out.String())
	})
}

func TestVersionBuiltin(t *testing.T) {
	t.Parallel()

	t.Run("with a version string", func(t *testing.T) {
		t.Parallel()

		root := feedGrammar(t)
		out := &bytes.Buffer{}
		root.SetOutput(out)

		res, err := root.Parse([]string{"prog", "--version"})
		require.ErrorIs(t, err, ErrTerminated)
		assert.Nil(t, res)
		assert.Equal(t, "1.0.0\n", out.String())
	})

	t.Run("absent without a version string", func(t *testing.T) {
		t.Parallel()

		cmd := New("prog", "", "")
		_, err := cmd.Parse([]string{"prog", "--version"})
		require.Error(t, err)
		assert.EqualError(t, err, "invalid option '--version'")
	})
}

func TestUsageLayout(t *testing.T) {
	t.Parallel()

	t.Run("bare command", func(t *testing.T) {
		t.Parallel()

		cmd := New("tool", "", "")
		expected := `Usage: tool ...

Options:

  -h, --help show this help message
`
		assert.Equal(t, expected, cmd.usage())
	})

	t.Run("option without help text", func(t *testing.T) {
		t.Parallel()

		cmd := New("tool", "", "")
		require.NoError(t, cmd.AddOption(Option{Long: "--quiet"}))

		expected := `Usage: tool ...

Options:

  -h, --help show this help message
  --quiet
`
		assert.Equal(t, expected, cmd.usage())
	})

	t.Run("nested usage prefix", func(t *testing.T) {
		t.Parallel()

		root := New("prog", "", "")
		sub, err := root.AddCommand("remote", "", "")
		require.NoError(t, err)
		leaf, err := sub.AddCommand("add", "", "")
		require.NoError(t, err)

		assert.Equal(t, "prog remote add", leaf.path())
	})
}

func TestTerminationIsNotAParseError(t *testing.T) {
	t.Parallel()

	root := feedGrammar(t)
	root.SetOutput(&bytes.Buffer{})

	_, err := root.Parse([]string{"prog", "--help"})
	require.Error(t, err)

	// The termination signal is a control condition: it must not be
	// mistaken for the typed parse errors.
	var perr *Error
	assert.False(t, errors.As(err, &perr))
	assert.False(t, IsConfig(err))
}
