// Package cmd provides the pyson subcommands.
//
// Every command decodes a single PYSON source (or, for [Check], several)
// named by path, with "-" reading standard input:
//
//   - [Dump] prints each record in file order.
//   - [Get] prints the value of one key, suggesting near matches for
//     unknown keys.
//   - [Check] reports whether sources decode, optionally rejecting repeated
//     keys.
//   - [Fmt] converts a source to JSON or YAML.
//   - [Eval] evaluates an expression over the document's keys.
//
// Commands write to the writer set with [WithOutput], falling back to the
// kong application's stdout.
package cmd
