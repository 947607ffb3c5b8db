// Package commands defines the canalyze CLI.
//
// Commands
//
//   - stats    Parse complex numbers from a file or stdin and print summary statistics
//   - plot     Render the parsed values as a scatter chart (PNG or SVG)
//   - repl     Interactively accumulate values and inspect them
//   - version  Print the build version
//
// # Implementation
//
// Subcommands share one tiny pipeline: read text, split it into tokens, parse
// each token as a complex literal, then aggregate or plot. Parsing never
// fails a run; tokens that are not complex literals are skipped, and an input
// with no values at all is reported as a plain message rather than an error.
package commands
