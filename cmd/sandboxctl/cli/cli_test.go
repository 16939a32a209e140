package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func sandboxDir(t *testing.T) (dir, config string) {
	t.Helper()
	dir = t.TempDir()
	writeFile(t, dir, "defs/strings.whitelist", "method java.lang.String *\n")
	writeFile(t, dir, "defs/math.whitelist", "staticMethod java.lang.Math max int int\nfield java.awt.Point x\n")
	writeFile(t, dir, "blocked.blacklist", "method java.lang.String intern\n")
	config = writeFile(t, dir, "sandbox.yaml", `
allow:
  - path: defs/*.whitelist
  - builtin: default
deny:
  - path: blocked.blacklist
env_allow: ["PATH_.*"]
approvals_path: approvals.yaml
`)
	return dir, config
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var ec interface{ ExitCode() int }
	require.ErrorAs(t, err, &ec)
	return ec.ExitCode()
}

func TestCheck(t *testing.T) {
	dir, config := sandboxDir(t)

	tests := []struct {
		name    string
		args    []string
		allowed bool
	}{
		{"wildcard member", []string{"method java.lang.String trim"}, true},
		{"deny list wins", []string{"method java.lang.String intern"}, false},
		{"second glob match", []string{"staticMethod", "java.lang.Math", "max", "int", "int"}, true},
		{"builtin", []string{"new java.util.ArrayList"}, true},
		{"field read", []string{"field java.awt.Point x"}, true},
		{"field write follows read", []string{"field java.awt.Point x", "--set", "--arg", "3"}, true},
		{"env gate", []string{"staticMethod java.lang.System getenv java.lang.String", "--arg", "PATH_HOME"}, true},
		{"env gate miss", []string{"staticMethod java.lang.System getenv java.lang.String", "--arg", "HOME"}, false},
		{"not listed", []string{"new java.io.File java.lang.String"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "", append([]string{"check", "-c", config}, tt.args...)...)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, "allowed\n", out)
				return
			}
			assert.Equal(t, 1, exitCode(t, err))
			assert.Contains(t, out, "Insecure call to '")
		})
	}

	_, err := os.Stat(filepath.Join(dir, "approvals.yaml"))
	assert.True(t, os.IsNotExist(err), "check must not record without --record")
}

func TestCheck_Record(t *testing.T) {
	dir, config := sandboxDir(t)

	_, err := run(t, "", "check", "-c", config, "--record", "new java.io.File java.lang.String")
	assert.Equal(t, 1, exitCode(t, err))

	data, err := os.ReadFile(filepath.Join(dir, "approvals.yaml"))
	require.NoError(t, err)
	var state struct {
		Pending []string `yaml:"pending"`
	}
	require.NoError(t, yaml.Unmarshal(data, &state))
	assert.Equal(t, []string{"new java.io.File java.lang.String"}, state.Pending)

	out, err := run(t, "", "approvals", "--store", filepath.Join(dir, "approvals.yaml"),
		"--approve", "new java.io.File java.lang.String")
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = run(t, "", "check", "-c", config, "new java.io.File java.lang.String")
	require.NoError(t, err)
	assert.Equal(t, "allowed\n", out)
}

func TestCheck_Errors(t *testing.T) {
	_, config := sandboxDir(t)

	_, err := run(t, "", "check", "-c", config, "methd java.lang.String trim")
	assert.ErrorContains(t, err, "methd java.lang.String trim")

	_, err = run(t, "", "check", "-c", config, "method java.lang.String *")
	assert.ErrorContains(t, err, "wildcard")

	_, err = run(t, "", "check", "method java.lang.String trim")
	assert.ErrorContains(t, err, "config")

	broken := writeFile(t, t.TempDir(), "sandbox.yaml", "allow:\n  - {}\n")
	_, err = run(t, "", "check", "-c", broken, "method java.lang.String trim")
	assert.ErrorContains(t, err, "exactly one")

	_, err = run(t, "", "--log-level", "loud", "check", "-c", config, "method java.lang.String trim")
	assert.ErrorContains(t, err, "log-level")
}

func TestLint(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.whitelist", "# ok\nmethod java.lang.String trim\nmethod java.lang.String trim\nstaticMethod java.lang.System exit int\n")
	bad := writeFile(t, dir, "bad.whitelist", "method java.lang.String trim\nfield java.awt.Point\n")

	out, err := run(t, "", "lint", good)
	require.NoError(t, err)
	assert.Contains(t, out, `duplicate "method java.lang.String trim"`)
	assert.Contains(t, out, `"staticMethod java.lang.System exit int" is permanently blacklisted`)
	assert.Contains(t, out, "0 error(s), 2 warning(s)")

	_, err = run(t, "", "lint", "--strict", good)
	assert.Equal(t, 1, exitCode(t, err))

	out, err = run(t, "", "lint", good, bad)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, out, bad+":2:")
	assert.Contains(t, out, "1 error(s)")
}

func TestLint_Catalog(t *testing.T) {
	dir := t.TempDir()
	catalog := writeFile(t, dir, "types.yaml", `
types:
  - name: java.lang.String
    methods:
      - name: trim
`)
	defs := writeFile(t, dir, "a.whitelist", "method java.lang.String trim\nmethod java.lang.String trimm\nmethod java.lang.String *\n")

	out, err := run(t, "", "lint", "--catalog", catalog, defs)
	require.NoError(t, err)
	assert.Contains(t, out, `"method java.lang.String trimm" does not exist`)
	assert.NotContains(t, out, `"method java.lang.String trim" does not exist`)
	assert.Contains(t, out, "0 error(s), 1 warning(s)")
}

func TestLint_Config(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "sandbox.yaml", "allow:\n  - builtin: default\npermit_all: sometimes\n")

	out, err := run(t, "", "lint", "--config", cfg)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, out, "permit_all")
}

func TestSchema(t *testing.T) {
	out, err := run(t, "", "schema")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, decoded["properties"], "env_allow")
}

func TestApprovals(t *testing.T) {
	store := writeFile(t, t.TempDir(), "approvals.yaml", "approved:\n  - method java.lang.String trim\npending:\n  - new java.util.Random\n")

	out, err := run(t, "", "approvals", "--store", store, "--list")
	require.NoError(t, err)
	assert.Equal(t, "approved:\n  method java.lang.String trim\npending:\n  new java.util.Random\n", out)

	_, err = run(t, "", "approvals", "--store", store)
	assert.ErrorContains(t, err, "1 signature(s) awaiting approval")

	empty := filepath.Join(t.TempDir(), "none.yaml")
	out, err = run(t, "", "approvals", "--store", empty)
	require.NoError(t, err)
	assert.Equal(t, "nothing pending\n", out)
}

func runWithStderr(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := New()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCheck_JSONOutput(t *testing.T) {
	_, config := sandboxDir(t)

	out, err := run(t, "", "check", "--output", "json", "-c", config, "method java.lang.String trim")
	require.NoError(t, err)
	var allowed checkResult
	require.NoError(t, json.Unmarshal([]byte(out), &allowed))
	assert.Equal(t, checkResult{Signature: "method java.lang.String trim", Allowed: true}, allowed)

	out, err = run(t, "", "check", "--output", "json", "-c", config, "method java.lang.String intern")
	assert.Equal(t, 1, exitCode(t, err))
	var rejected checkResult
	require.NoError(t, json.Unmarshal([]byte(out), &rejected))
	assert.False(t, rejected.Allowed)
	require.NotNil(t, rejected.Error)
	assert.Equal(t, "security", rejected.Error.Type)
	assert.Equal(t, "rejected", rejected.Error.Code)
	assert.Equal(t, "method java.lang.String intern", rejected.Error.Details["signature"])
}

func TestLint_JSONOutput(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.whitelist", "method java.lang.String trim\nmethod java.lang.String trim\n")
	bad := writeFile(t, dir, "bad.whitelist", "field java.awt.Point\n")

	out, err := run(t, "", "lint", "--output", "json", good, bad)
	assert.Equal(t, 1, exitCode(t, err))

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)

	var dup, parse map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &dup))
	assert.Equal(t, "lint", dup["type"])
	assert.Equal(t, "duplicate", dup["code"])
	assert.Equal(t, "warning", dup["details"].(map[string]any)["severity"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &parse))
	assert.Equal(t, "parse", parse["type"])
	assert.Equal(t, "invalid_signature", parse["code"])
	assert.Equal(t, "field java.awt.Point", parse["details"].(map[string]any)["line"])

	assert.JSONEq(t, `{"errors":1,"warnings":1}`, lines[2])
}

func TestJSONOutput_CommandFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	_, stderr, err := runWithStderr(t, "check", "--output", "json", "-c", missing, "new a.B")
	assert.Equal(t, 1, exitCode(t, err))

	var decoded struct {
		Error struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(stderr), &decoded))
	assert.Equal(t, "internal", decoded.Error.Type)
	assert.Contains(t, decoded.Error.Message, "failed to read config")
}

func TestInvalidOutput(t *testing.T) {
	_, err := run(t, "", "schema", "--output", "xml")
	assert.ErrorContains(t, err, `invalid --output "xml"`)
}
