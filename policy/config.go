// Package policy implements the auxiliary passes of spec.md §4.6 that
// run after the resolution engine has finished ingesting every input:
// --undefined forcing, --dynamic-list, --version-script,
// --trace-symbol, and the shared-library undefined scan. None of these
// mutate the engine's precedence rules; they only read or nudge the
// finished (or in-progress) symtab.Index through the public
// resolve.Engine surface, matching spec.md §6's "via a configuration
// object, not parsed by the core."
package policy

import "github.com/pkujhd/golink/resolve"

// Config is the configuration object spec.md §6 calls for: every
// command-line switch that a driver (e.g. cmd/golink-demo) collects
// and that this package's passes consume, gathered in one place
// instead of being threaded through individual function parameters.
type Config struct {
	Engine resolve.Config

	// Undefined lists --undefined names: forced references that pull in
	// archive members even with no other reference to them.
	Undefined []string

	// DynamicListFiles are --dynamic-list file paths (YAML, see
	// dynamiclist.go), each naming a set of glob patterns to mark
	// export-dynamic.
	DynamicListFiles []string

	// VersionScriptFile is a --version-script path, in either the
	// traditional linker-script grammar or the structured YAML form
	// (see versionscript.go).
	VersionScriptFile string

	// TraceSymbols lists --trace-symbol names to report the resolution
	// outcome for for after linking finishes.
	TraceSymbols []string

	// WrapNames lists --wrap=name switches, applied in command-line
	// order via resolve.Engine.Wrap once resolution is complete.
	WrapNames []string
}
