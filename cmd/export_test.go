package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m8811163008/visitor-desing-pattern/service"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flag values persist on the shared command between Execute calls.
	require.NoError(t, exportCmd.Flags().Set("format", service.FormatText))
	require.NoError(t, exportCmd.Flags().Set("repo", ""))

	output := &bytes.Buffer{}
	RootCmd.SetOut(output)
	RootCmd.SetErr(output)
	RootCmd.SetArgs(args)

	err := RootCmd.Execute()
	return output.String(), err
}

func TestExportCmd(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantErr      bool
		wantContains string
	}{
		{
			name:         "text format",
			args:         []string{"export", "-f", "text"},
			wantContains: "Bohemian Rhapsody\n\tAlbum:A Night at the Opera\n",
		},
		{
			name:         "xml format",
			args:         []string{"export", "-f", "xml"},
			wantContains: "<Files>\n",
		},
		{
			name:    "unknown format",
			args:    []string{"export", "-f", "yaml"},
			wantErr: true,
		},
		{
			name:    "nonexistent repository",
			args:    []string{"export", "-f", "text", "-r", "/nonexistent/path"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, tt.args...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantContains)
		})
	}
}

func TestExportCmd_XMLEndsWithClosingWrapper(t *testing.T) {
	out, err := runCommand(t, "export", "-f", "xml")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "</Files>\n"), "output does not end with </Files>:\n%s", out)
}

func TestExportersCmd(t *testing.T) {
	out, err := runCommand(t, "exporters")
	require.NoError(t, err)

	assert.Contains(t, out, "text\tExport as text\n")
	assert.Contains(t, out, "xml\tExport as XML\n")
}
