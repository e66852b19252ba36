package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/overlaykit/ocaval/pkg/bundle"
	"github.com/overlaykit/ocaval/pkg/serializer"
)

// bundleSummary is the serializable view printed by the inspect
// command.
type bundleSummary struct {
	Attributes        []attributeSummary      `json:"attributes" yaml:"attributes"`
	FlaggedAttributes []string                `json:"flaggedAttributes,omitempty" yaml:"flaggedAttributes,omitempty"`
	Sections          []bundle.SectionVersion `json:"sections,omitempty" yaml:"sections,omitempty"`
}

type attributeSummary struct {
	Name       string   `json:"name" yaml:"name"`
	Type       string   `json:"type" yaml:"type"`
	Format     string   `json:"format,omitempty" yaml:"format,omitempty"`
	Mandatory  bool     `json:"mandatory,omitempty" yaml:"mandatory,omitempty"`
	EntryCodes []string `json:"entryCodes,omitempty" yaml:"entryCodes,omitempty"`
	Encoding   string   `json:"encoding" yaml:"encoding"`
}

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "inspect",
		EnableShellCompletion: true,
		Usage:                 "Print a summary of an OCA schema bundle",
		Description: `Loads an OCA schema bundle and prints its attribute declarations with
their resolved constraints: type, format pattern, mandatory flag, entry
codes, and character encoding.

# Examples

  ocaval inspect --bundle schema.json
  ocaval inspect -b schema.json --format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "bundle",
				Aliases:  []string{"b"},
				Required: true,
				Usage:    "Path to the OCA schema bundle file (JSON or YAML)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   string(serializer.FormatYAML),
				Usage:   "Output format: yaml or json",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   serializer.StdoutURI,
				Usage:   "Output path, '-' for stdout",
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

			summary := bundleSummary{
				FlaggedAttributes: b.FlaggedAttributes(),
				Sections:          b.SectionVersions(),
			}
			for _, name := range b.AttributeNames() {
				attrType, _ := b.Type(name)
				format, _ := b.Format(name)
				codes, _ := b.EntryCodes(name)
				summary.Attributes = append(summary.Attributes, attributeSummary{
					Name:       name,
					Type:       attrType.String(),
					Format:     format,
					Mandatory:  b.Mandatory(name),
					EntryCodes: codes,
					Encoding:   b.CharacterEncoding(name),
				})
			}

			w, err := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			if err != nil {
				return err
			}
			if err := w.Serialize(ctx, summary); err != nil {
				w.Close()
				return err
			}
			return w.Close()
		},
	}
}
