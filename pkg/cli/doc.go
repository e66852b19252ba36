// Package cli implements the command-line interface for the ocaval tool.
//
// # Commands
//
// validate - validate a data set against a schema bundle:
//
//	ocaval validate --bundle schema.json --data entries.csv [--format yaml|json]
//	ocaval validate -b schema.json -d entries.csv --fail-on-error  # CI/CD
//
// inspect - summarize a schema bundle:
//
//	ocaval inspect --bundle schema.json
//
// serve - run the validation HTTP API:
//
//	ocaval serve --port 8080
//
// The validate command writes the full report document (header,
// summary, per-pass findings, notices) to stdout or a file, and a
// short human-readable overview to stderr. --fail-on-error gives a
// non-zero exit when findings exist.
package cli
