package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idp-tools/codebook/internal/cli/commands"
	"github.com/idp-tools/codebook/internal/cli/testutil"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	want := []string{"critique", "convert", "template", "schema", "watch", "version", "completion"}
	for _, name := range want {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}

	for _, flag := range []string{"config", "verbose", "output", "cutoff", "scorer", "title-rows", "parallel"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRootCmd_CritiqueJSON(t *testing.T) {
	path := testutil.WriteSampleWorkbook(t)

	out, _, err := run(t, "critique", path, "-o", "json", "--fail-on", "never", "--parallel")
	require.NoError(t, err)

	var report struct {
		ID        string `json:"id"`
		Structure []struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		} `json:"structure"`
		Sheets []struct {
			Sheet string `json:"sheet"`
		} `json:"sheets"`
		Codebook *struct {
			Variables []map[string]any `json:"variables"`
		} `json:"codebook"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.NotEmpty(t, report.ID)
	require.Len(t, report.Structure, 1)
	assert.Equal(t, "success", report.Structure[0].Type)
	require.Len(t, report.Sheets, 3)
	assert.Equal(t, "codebook", report.Sheets[0].Sheet)
	assert.Equal(t, "metadata information", report.Sheets[1].Sheet)
	assert.Equal(t, "additional information", report.Sheets[2].Sheet)
	require.NotNil(t, report.Codebook)
	assert.Len(t, report.Codebook.Variables, 3)
}

func TestRootCmd_FailOnDefault(t *testing.T) {
	path := testutil.WriteSampleWorkbook(t)

	_, _, err := run(t, "critique", path)
	assert.ErrorIs(t, err, commands.ErrCritiqueFailed)
}

func TestRootCmd_InvalidFlagValue(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "cutoff out of range", args: []string{"schema", "--cutoff", "150"}},
		{name: "unknown scorer", args: []string{"schema", "--scorer", "jaro"}},
		{name: "unknown output", args: []string{"schema", "-o", "html"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestRootCmd_SchemaJSON(t *testing.T) {
	out, _, err := run(t, "schema", "additional", "-o", "json")
	require.NoError(t, err)

	var views []struct {
		Name    string `json:"name"`
		Columns []struct {
			Name     string `json:"name"`
			Type     string `json:"type"`
			Required bool   `json:"required"`
		} `json:"columns"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "additional information", views[0].Name)

	last := views[0].Columns[len(views[0].Columns)-1]
	assert.Equal(t, "number of indicators", last.Name)
	assert.Equal(t, "int", last.Type)
	assert.True(t, last.Required)
}

func TestRootCmd_VerboseLogsToStderr(t *testing.T) {
	path := testutil.WriteSampleWorkbook(t)

	out, errOut, err := run(t, "critique", path, "--fail-on", "never", "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "critiquing workbook")
	assert.NotContains(t, out, "critiquing workbook")
}

func TestRootCmd_Completion(t *testing.T) {
	out, _, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "codebook")
}
