package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func executeValidate(t *testing.T, format, path string) (*bytes.Buffer, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})
	return buf, cmd.Execute()
}

func TestValidateValidYAML(t *testing.T) {
	path := writeConfig(t, "suite.yaml", "start: 10\nstop: 20\nstep: 5\nrepeats: 2\nfunctions: [len, std-sort]\n")

	buf, err := executeValidate(t, "text", path)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "✓ Config valid: 3 sizes x 2 repeats, 2 function(s)")
}

func TestValidateValidCUEJSON(t *testing.T) {
	path := writeConfig(t, "suite.cue", "functions: [\"bubble-sort\"]\n")

	buf, err := executeValidate(t, "json", path)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["valid"])
	assert.Equal(t, float64(181), data["sizes"])
}

func TestValidateNonExistentFile(t *testing.T) {
	buf, err := executeValidate(t, "text", "/nonexistent/suite.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "E005")
	assert.Contains(t, buf.String(), "not found")
}

func TestValidateSchemaViolation(t *testing.T) {
	path := writeConfig(t, "bad.cue", "step: -5\nfunctions: [\"len\"]\n")

	buf, err := executeValidate(t, "text", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "Error [E006]")
}

func TestValidateContentFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    string
	}{
		{"inverted range", "start: 50\nstop: 10\nfunctions: [len]\n", ErrCodeInvalidSpec},
		{"bad legend", "functions: [len]\nplot:\n  legend_loc: middle\n", ErrCodeInvalidSpec},
		{"no functions", "start: 1\n", ErrCodeNoFunctions},
		{"unknown function", "functions: [len, quantum-sort]\n", ErrCodeUnknownFunction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "suite.yaml", tt.content)

			buf, err := executeValidate(t, "json", path)
			require.Error(t, err)
			assert.Equal(t, ExitFailure, GetExitCode(err))

			var resp CLIResponse
			require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}
