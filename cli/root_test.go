package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/allxie/aspiration-takehome/cli"
	"github.com/allxie/aspiration-takehome/doubleset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := cli.Run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun_Capitalize(t *testing.T) {
	t.Run("default nth is three", func(t *testing.T) {
		out, _, err := run(t, "capitalize", "hello,", "Dave")
		require.NoError(t, err)
		assert.Equal(t, "heLlo, DavE\n", out)
	})

	t.Run("nth flag", func(t *testing.T) {
		out, _, err := run(t, "capitalize", "--nth", "2", "hello, Dave")
		require.NoError(t, err)
		assert.Equal(t, "hElLo, DaVe\n", out)
	})

	t.Run("nth from environment", func(t *testing.T) {
		t.Setenv("TAKEHOME_NTH", "1")

		out, _, err := run(t, "capitalize", "not small")
		require.NoError(t, err)
		assert.Equal(t, "NOT SMALL\n", out)
	})

	t.Run("flag wins over environment", func(t *testing.T) {
		t.Setenv("TAKEHOME_NTH", "1")

		out, _, err := run(t, "capitalize", "-n", "0", "NOT BIG")
		require.NoError(t, err)
		assert.Equal(t, "not big\n", out)
	})

	t.Run("nth from config file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "takehome.yaml"), []byte("nth: 4\n"), 0o600))

		out, _, err := run(t, "--config", dir, "capitalize", "Aspiration.com")
		require.NoError(t, err)
		assert.Equal(t, "aspIratIon.cOm\n", out)
	})

	t.Run("debug logs go to stderr", func(t *testing.T) {
		_, stderr, err := run(t, "--debug", "capitalize", "abc")
		require.NoError(t, err)
		assert.Contains(t, stderr, "capitalized")
		assert.Contains(t, stderr, "counted=3")
	})

	t.Run("text is required", func(t *testing.T) {
		_, _, err := run(t, "capitalize")
		require.Error(t, err)
	})
}

func TestRun_DoubleSet(t *testing.T) {
	tt := []struct {
		name string
		args []string
		exp  string
	}{
		{name: "parse", args: []string{"doubleset", "parse", "{{1:2},{-3:1}}"}, exp: "{{1: 2}, {-3: 1}}\n"},
		{name: "add", args: []string{"doubleset", "add", "{{1:2},{2:1}}", "{{1:1},{2:1},{-3:1}}"}, exp: "{{1: 2}, {2: 2}, {-3: 1}}\n"},
		{name: "subtract", args: []string{"ds", "subtract", "{{1:2},{2:1},{4:1}}", "{{1:1},{2:2},{-3:1}}"}, exp: "{{1: 1}, {4: 1}}\n"},
		{name: "count", args: []string{"doubleset", "count", "{{4: 2}}", "4"}, exp: "2\n"},
		{name: "count absent", args: []string{"doubleset", "count", "{{4: 2}}", "11"}, exp: "0\n"},
		{name: "count negative member", args: []string{"doubleset", "count", "--", "{{-5: 2}}", "-5"}, exp: "2\n"},
		{name: "set", args: []string{"doubleset", "set", "{{4: 2}}", "7", "1"}, exp: "{{4: 2}, {7: 1}}\n"},
		{name: "delete", args: []string{"doubleset", "delete", "{{4: 2}, {5: 1}}", "4"}, exp: "{{5: 1}}\n"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, out)
		})
	}
}

func TestRun_Errors(t *testing.T) {
	t.Run("malformed set", func(t *testing.T) {
		out, stderr, err := run(t, "doubleset", "parse", "{{1:3}}")
		require.Error(t, err)
		assert.True(t, errors.Is(err, doubleset.ErrParse))
		assert.Empty(t, out)
		assert.Contains(t, stderr, "level=error")
	})

	t.Run("invalid count", func(t *testing.T) {
		_, _, err := run(t, "doubleset", "set", "{{4: 2}}", "a", "2")
		require.Error(t, err)
		assert.True(t, errors.Is(err, doubleset.ErrValidation))
	})

	t.Run("unknown command", func(t *testing.T) {
		_, _, err := run(t, "nope")
		require.Error(t, err)
	})
}
