package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/overlaykit/ocaval/pkg/bundle"
	"github.com/overlaykit/ocaval/pkg/dataset"
	"github.com/overlaykit/ocaval/pkg/serializer"
	"github.com/overlaykit/ocaval/pkg/validator"
)

func validateCmd(version string) *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate a tabular data set against an OCA schema bundle",
		Description: `Validates a CSV data set against an OCA schema bundle and reports every
finding: unmatched or missing attributes, format mismatches, missing
mandatory values, entry code violations and character encoding problems.

The full report is written as YAML or JSON; a human-readable overview is
printed to stderr.

# Examples

Validate a data set and print the report:
  ocaval validate --bundle schema.json --data entries.csv

Write the report to a file as YAML:
  ocaval validate -b schema.json -d entries.csv -o report.yaml --format yaml

Fail the process when findings exist (CI pipelines):
  ocaval validate -b schema.json -d entries.csv --fail-on-error`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "bundle",
				Aliases:  []string{"b"},
				Required: true,
				Usage:    "Path to the OCA schema bundle file (JSON or YAML)",
			},
			&cli.StringFlag{
				Name:     "data",
				Aliases:  []string{"d"},
				Required: true,
				Usage:    "Path to the CSV data set to validate",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   serializer.StdoutURI,
				Usage:   "Output path for the report, '-' for stdout",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   string(serializer.FormatYAML),
				Usage:   "Report output format: yaml or json",
			},
			&cli.BoolFlag{
				Name:  "preview",
				Usage: "Print a preview of the data set before validating",
			},
			&cli.BoolFlag{
				Name:  "no-flagged-alarm",
				Usage: "Suppress the flagged (sensitive) attribute notice",
			},
			&cli.BoolFlag{
				Name:  "no-version-alarm",
				Usage: "Suppress the spec version compatibility notice",
			},
			&cli.BoolFlag{
				Name:  "fail-on-error",
				Usage: "Exit non-zero when the report contains findings",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			b, err := bundle.Load(cmd.String("bundle"))
			if err != nil {
				return fmt.Errorf("loading bundle: %w", err)
			}
			ds, err := dataset.ReadCSV(cmd.String("data"))
			if err != nil {
				return fmt.Errorf("loading data set: %w", err)
			}

			opts := []validator.Option{validator.WithVersion(version)}
			if cmd.Bool("preview") {
				opts = append(opts, validator.WithPreview(os.Stderr))
			}
			if cmd.Bool("no-flagged-alarm") {
				opts = append(opts, validator.WithoutFlaggedAlarm())
			}
			if cmd.Bool("no-version-alarm") {
				opts = append(opts, validator.WithoutVersionAlarm())
			}

			doc, err := validator.New(opts...).Validate(ctx, b, ds)
			if err != nil {
				return fmt.Errorf("validating data set: %w", err)
			}

			fmt.Fprintln(os.Stderr, doc.Report.Overview())

			w, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if err != nil {
				return err
			}
			if err := w.Serialize(ctx, doc); err != nil {
				w.Close()
				return fmt.Errorf("writing report: %w", err)
			}
			if err := w.Close(); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}

			if cmd.Bool("fail-on-error") && doc.Summary.Status == validator.StatusFail {
				return fmt.Errorf("validation failed with %d attribute, %d format, %d entry code and %d encoding finding(s)",
					doc.Summary.AttributeErrors, doc.Summary.FormatErrors,
					doc.Summary.EntryCodeErrors, doc.Summary.EncodingErrors)
			}
			return nil
		},
	}
}
