package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const infoJSON = `{
    "id": "regional-gdp",
    "title": "Regional GDP",
    "published": "2021-05-25",
    "columns": {
        "Area": {"label": "Area", "description": "ONS region"},
        "Value": {
            "measure": "http://gss-data.org.uk/def/measure/gdp",
            "unit": "http://gss-data.org.uk/def/concept/measurement-units/gbp-million"
        }
    }
}`

func writeFixtures(t *testing.T) (dir, configPath string) {
	t.Helper()

	dir = t.TempDir()
	configPath = filepath.Join(dir, "info.json")

	require.NoError(t, os.WriteFile(configPath, []byte(infoJSON), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "q1.csv"), []byte("Area,Value\nE12000001,10\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "q2.csv"), []byte("Area,Value\nE12000002,20\n"), 0o600))

	return dir, configPath
}

func TestRunGen(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	dir, configPath := writeFixtures(t)
	out := filepath.Join(dir, "out")

	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{
		"gen",
		"--config", configPath,
		"--id", "regional-gdp",
		"--data", filepath.Join(dir, "q1.csv"),
		"--data", "second=" + filepath.Join(dir, "q2.csv"),
		"--out", out,
	}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	assert.FileExists(t, filepath.Join(out, "regional-gdp.csv-metadata.json"))
	assert.FileExists(t, filepath.Join(out, "q1", "q1.csv"))
	assert.FileExists(t, filepath.Join(out, "second", "second.table.json"))
	assert.Contains(t, stderr.String(), "wrote bundle")
	assert.Contains(t, stderr.String(), "run_id=")
}

func TestRunCheck(t *testing.T) {
	dir, configPath := writeFixtures(t)

	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{
		"check",
		"--config", configPath,
		"--id", "regional-gdp",
		"--data", filepath.Join(dir, "q1.csv"),
		"--dump",
	}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())

	assert.Contains(t, stdout.String(), "regional-gdp: 1 chunk(s), 0 warning(s)")
	assert.Contains(t, stdout.String(), "virt_unit")
	assert.NoDirExists(t, filepath.Join(dir, "out"))
}

func TestRunEnvironmentDefaults(t *testing.T) {
	dir, configPath := writeFixtures(t)
	out := filepath.Join(dir, "env-out")

	t.Setenv(envConfig, configPath)
	t.Setenv(envID, "regional-gdp")
	t.Setenv(envOut, out)

	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"gen", "--data", filepath.Join(dir, "q1.csv")}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())
	assert.FileExists(t, filepath.Join(out, "regional-gdp", "regional-gdp.csv"))
}

func TestRunErrors(t *testing.T) {
	dir, configPath := writeFixtures(t)
	q1 := filepath.Join(dir, "q1.csv")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no command", nil, "no command given"},
		{"unknown command", []string{"publish"}, `unknown command "publish"`},
		{"missing id", []string{"check", "--config", configPath, "--data", q1}, "--id is required"},
		{"missing data", []string{"check", "--config", configPath, "--id", "regional-gdp"}, "--data"},
		{"unknown cube", []string{"check", "--config", configPath, "--id", "nope", "--data", q1}, `"nope"`},
		{"duplicate chunk", []string{"check", "--config", configPath, "--id", "regional-gdp", "--data", "a=" + q1, "--data", "a=" + q1}, "duplicate chunk"},
		{"stray argument", []string{"check", "--config", configPath, "--id", "regional-gdp", "--data", q1, "extra"}, "unexpected arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(envID, "")

			var stdout, stderr bytes.Buffer

			err := run(context.Background(), tt.args, &stdout, &stderr)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer

	require.NoError(t, run(context.Background(), []string{"help"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "commands:")

	require.NoError(t, run(context.Background(), []string{"gen", "--help"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "--strict-names")
}

func TestParseDataArgs(t *testing.T) {
	tests := []struct {
		name string
		raw  []string
		want []dataArg
	}{
		{
			name: "single unnamed",
			raw:  []string{"data/q1.csv"},
			want: []dataArg{{chunk: "", path: "data/q1.csv"}},
		},
		{
			name: "named",
			raw:  []string{"Q2-2020=data/q2.csv"},
			want: []dataArg{{chunk: "Q2-2020", path: "data/q2.csv"}},
		},
		{
			name: "several unnamed use base names",
			raw:  []string{"data/q1.csv", "x=data/q2.csv", "other/q3.csv"},
			want: []dataArg{
				{chunk: "q1", path: "data/q1.csv"},
				{chunk: "x", path: "data/q2.csv"},
				{chunk: "q3", path: "other/q3.csv"},
			},
		},
		{
			name: "equals inside a path",
			raw:  []string{"dir/a=b.csv"},
			want: []dataArg{{chunk: "", path: "dir/a=b.csv"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDataArgs(tt.raw))
		})
	}
}
