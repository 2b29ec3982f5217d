package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	flag "github.com/spf13/pflag"

	"csvcube/internal/config"
	"csvcube/internal/csvw"
	"csvcube/internal/cube"
	"csvcube/internal/diagnostic"
	"csvcube/internal/logger"
	"csvcube/internal/sink"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func runCommand(ctx context.Context, command string, args []string, stdout, stderr io.Writer) error {
	o, err := parseOptions(command, args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}

	if err != nil {
		return err
	}

	log := logger.New(stderr, o.verbose).With("run_id", uuid.NewString(), "command", command)

	bundle, err := project(log, o)
	if err != nil {
		return err
	}

	reportDiagnostics(log, bundle.Diagnostics)

	switch command {
	case cmdCheck:
		if o.dump {
			for _, chunk := range bundle.Chunks {
				fmt.Fprintf(stdout, "# %s\n", chunk.SchemaPath())
				dumpConfig.Fdump(stdout, chunk.Schema.Columns)
			}
		}

		fmt.Fprintf(stdout, "%s: %d chunk(s), %d warning(s)\n",
			bundle.DatasetID, len(bundle.Chunks), len(bundle.Diagnostics.Warnings))

		return nil

	default:
		s, err := sink.Open(ctx, o.out)
		if err != nil {
			return err
		}

		err = csvw.Write(ctx, s, bundle)
		if err != nil {
			return err
		}

		log.Info("wrote bundle",
			"dataset", bundle.DatasetID,
			"location", s.Location(),
			"metadata", bundle.MetadataPath())

		return nil
	}
}

// project loads the configuration and data and projects the cube.
func project(log *slog.Logger, o *options) (*csvw.Bundle, error) {
	cfg, err := config.LoadFromFile(o.configPath, o.cubeID)
	if err != nil {
		return nil, err
	}

	log.Debug("loaded configuration",
		"path", o.configPath,
		"dataset", cfg.DatasetID,
		"base_uri", cfg.BaseURI,
		"columns", cfg.Columns.Len())

	c := cube.New(cfg)

	for _, d := range o.data {
		tbl, err := cube.ReadCSVFile(d.path)
		if err != nil {
			return nil, err
		}

		err = c.SetData(tbl, d.chunk)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.path, err)
		}

		log.Debug("loaded chunk", "path", d.path, "chunk", d.chunk, "rows", tbl.Len())
	}

	return csvw.NewProjector(csvw.Config{
		Logger:      log,
		StrictNames: o.strictNames,
	}).Project(c)
}

func reportDiagnostics(log *slog.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		switch d.Severity {
		case diagnostic.SeverityWarning:
			log.Warn(d.String(), "code", d.Code)
		default:
			log.Debug(d.String(), "code", d.Code)
		}
	}
}
