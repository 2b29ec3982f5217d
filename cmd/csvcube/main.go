// Package main provides the csvcube CLI.
//
// csvcube turns a column-mapping configuration document and one or more CSV
// data chunks into a CSV on the Web metadata bundle describing a data cube:
//
//	csvcube gen   --config info.json --id <dataset> --data [name=]file.csv ... --out <dir|s3://bucket/prefix>
//	csvcube check --config info.json --id <dataset> --data [name=]file.csv ... [--dump]
//
// Flags default from CSVCUBE_CONFIG, CSVCUBE_ID and CSVCUBE_OUT, which may be
// set in a .env file in the working directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

const usage = `usage: csvcube <command> [flags]

commands:
  gen     resolve columns and write the CSVW bundle
  check   resolve columns and report diagnostics without writing

run "csvcube <command> --help" for the flags of a command
`

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return errors.New("no command given")
	}

	switch args[0] {
	case cmdGen, cmdCheck:
		return runCommand(ctx, args[0], args[1:], stdout, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}
