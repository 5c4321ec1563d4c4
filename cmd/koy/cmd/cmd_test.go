package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	koyconfig "github.com/msto63/koy/foundation/core/config"
	koyerror "github.com/msto63/koy/foundation/core/error"
	koylog "github.com/msto63/koy/foundation/core/log"
)

// execute runs the root command with fresh flag state and isolated config
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("KOY_OUTPUT_COLOR", "false")

	cfgFile, verbose, outputFormat = "", false, ""
	execSource, tokensComments, astTree, replNoHistory = "", false, false, false
	settings, configPath, logger = koyconfig.Settings{}, "", koylog.Nop()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeKoy(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExec(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"arithmetic", []string{"exec", "(1 + 2) * 3"}, "9\n"},
		{"joined args", []string{"exec", "1", "+", "2"}, "3\n"},
		{"expr flag", []string{"exec", "-e", `{a: "x", b: [1]}`}, "{a: \"x\", b: [1]}\n"},
		{"json", []string{"exec", "--format", "json", "-e", "{a: [1, 2.5]}"}, "{\n  \"a\": [\n    1,\n    2.5\n  ]\n}\n"},
		{"yaml", []string{"exec", "-f", "yaml", "-e", "{a: 1}"}, "a: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestExec_ReportsDiagnostic(t *testing.T) {
	out, errOut, err := execute(t, "", "exec", "1 2")

	assert.ErrorIs(t, err, errReported)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "invalid syntax: expected '+', '-', '*', '/' or end of input\nFile \"stdin\", line 1")
	assert.Contains(t, errOut, "   1 | 1 2\n     |   ^")
}

func TestEval_Files(t *testing.T) {
	dir := t.TempDir()
	good := writeKoy(t, dir, "good.koy", "// service\n{port: 8000 + 80}\n")
	bad := writeKoy(t, dir, "bad.koy", "{a: 1 / 0}")
	other := writeKoy(t, dir, "other.koy", "[true, null]")

	out, errOut, err := execute(t, "", "eval", strings.TrimSuffix(good, ".koy"), bad, other)

	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "{port: 8080}\n")
	assert.Contains(t, out, "[true, null]\n")
	assert.Contains(t, errOut, "runtime error: division by zero\nFile \"bad.koy\", line 1")
}

func TestEval_Stdin(t *testing.T) {
	out, _, err := execute(t, "{x: -1.5 * 2}", "run", "-")
	require.NoError(t, err)
	assert.Equal(t, "{x: -3.0}\n", out)
}

func TestEval_MissingFile(t *testing.T) {
	_, errOut, err := execute(t, "", "eval", filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, errOut, "nope.koy\" does not exist")
}

func TestEval_TOMLRequiresObject(t *testing.T) {
	path := writeKoy(t, t.TempDir(), "list.koy", "[1, 2]")
	_, errOut, err := execute(t, "", "eval", "--format", "toml", path)
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, errOut, "TOML requires an object at the top level, got array")
}

func TestTokens(t *testing.T) {
	path := writeKoy(t, t.TempDir(), "t.koy", "// c\n{a: 1}")

	out, _, err := execute(t, "", "tokens", path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2:1     OPEN_OBJ",
		"2:2     IDENT:a",
		"2:3     ASSIGN",
		"2:5     INT:1",
		"2:6     CLOSE_OBJ",
		"2:7     EOF",
	}, strings.Split(strings.TrimSpace(out), "\n"))

	out, _, err = execute(t, "", "tokens", "--comments", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "1:1     COMMENT: c\n"))
}

func TestAST(t *testing.T) {
	path := writeKoy(t, t.TempDir(), "t.koy", "{a: 1 + 2 * 3}")

	out, _, err := execute(t, "", "ast", path)
	require.NoError(t, err)
	assert.Equal(t, "{a: (1 + (2 * 3))}\n", out)

	out, _, err = execute(t, "", "ast", "--tree", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Object (1) [1:1-1:15]\n"))
}

func TestAST_SyntaxError(t *testing.T) {
	path := writeKoy(t, t.TempDir(), "t.koy", "{a: }")
	_, errOut, err := execute(t, "", "ast", path)
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, errOut, "invalid syntax: expected value")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "koy v0.1.0\n")
	assert.Contains(t, out, "Go Version:")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeKoy(t, dir, "koy.toml", "[output]\nformat = \"json\"\n\n[parser]\nmax_depth = 2\n")

	out, _, err := execute(t, "", "--config", cfg, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "file: "+cfg)
	assert.Contains(t, out, "output.format      json")
	assert.Contains(t, out, "parser.max_depth   2")

	out, _, err = execute(t, "", "--config", cfg, "exec", "[1]")
	require.NoError(t, err)
	assert.Equal(t, "[\n  1\n]\n", out)

	_, errOut, err := execute(t, "", "--config", cfg, "exec", "[[[1]]]")
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, errOut, "nesting exceeds maximum depth of 2")
}

func TestConfig_EnvironmentOverride(t *testing.T) {
	t.Setenv("KOY_OUTPUT_FORMAT", "yaml")

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", home)
	cfgFile, verbose, outputFormat, execSource = "", false, "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"exec", "{a: 1}"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "a: 1\n", out.String())
}

func TestSettingsErrors(t *testing.T) {
	_, _, err := execute(t, "", "--format", "xml", "exec", "1")
	require.Error(t, err)
	assert.True(t, koyerror.HasCode(err, koyerror.CodeInvalidConfig))

	_, _, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "absent.toml"), "exec", "1")
	require.Error(t, err)
	assert.True(t, koyerror.HasCode(err, koyerror.CodeNotFound))
}
