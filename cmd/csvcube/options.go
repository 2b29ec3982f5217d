package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"
)

const (
	cmdGen   = "gen"
	cmdCheck = "check"
)

// Environment variables providing flag defaults.
const (
	envConfig = "CSVCUBE_CONFIG"
	envID     = "CSVCUBE_ID"
	envOut    = "CSVCUBE_OUT"
)

type options struct {
	configPath  string
	cubeID      string
	data        []dataArg
	out         string
	strictNames bool
	verbose     bool
	dump        bool
}

// dataArg is one --data value: an optional chunk name and a CSV path.
type dataArg struct {
	chunk string
	path  string
}

func parseOptions(command string, args []string, stderr io.Writer) (*options, error) {
	o := &options{}

	var rawData []string

	fs := flag.NewFlagSet("csvcube "+command, flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&o.configPath, "config", envOr(envConfig, "info.json"), "configuration document, JSON or YAML (or set "+envConfig+")")
	fs.StringVar(&o.cubeID, "id", os.Getenv(envID), "dataset identifier to build (or set "+envID+")")
	fs.StringArrayVar(&rawData, "data", nil, "data chunk as [name=]file.csv, repeatable")
	fs.BoolVar(&o.strictNames, "strict-names", false, "fail when two column titles normalize to the same name")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "enable verbose (debug) logging")

	switch command {
	case cmdGen:
		fs.StringVar(&o.out, "out", envOr(envOut, "out"), "output directory or s3://bucket/prefix (or set "+envOut+")")
	case cmdCheck:
		fs.BoolVar(&o.dump, "dump", false, "print the projected table schemas")
	}

	err := fs.Parse(args)
	if err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if o.cubeID == "" {
		return nil, fmt.Errorf("--id is required (or set %s)", envID)
	}

	if len(rawData) == 0 {
		return nil, errors.New("at least one --data file is required")
	}

	o.data = parseDataArgs(rawData)

	return o, nil
}

// parseDataArgs splits [name=]path values. A single unnamed file becomes the
// dataset's default chunk; several unnamed files are named after their base
// names.
func parseDataArgs(raw []string) []dataArg {
	out := make([]dataArg, 0, len(raw))

	for _, v := range raw {
		name, path, ok := strings.Cut(v, "=")
		if !ok || strings.ContainsAny(name, `/\`) {
			name, path = "", v
		}

		out = append(out, dataArg{chunk: name, path: path})
	}

	if len(out) == 1 {
		return out
	}

	for i := range out {
		if out[i].chunk == "" {
			base := filepath.Base(out[i].path)
			out[i].chunk = strings.TrimSuffix(base, filepath.Ext(base))
		}
	}

	return out
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
