// Package diag implements spec.md §7's error-handling design: a single
// collaborator sink, a four-level severity taxonomy, and a record of
// the first Fatal diagnostic. Reporting a Fatal diagnostic does not stop
// the process; the driver checks Diagnostics.Fatal or ErrorCount and
// ends the link itself.
//
// Structurally grounded on ComedicChimera-chai's src/logging package
// (Logger: error count, level gate, mutex-guarded handling of
// CompileMessage/ConfigError); backed by
// github.com/sirupsen/logrus (grafana-k6 go.mod) instead of chai's
// bespoke fmt-based Logger, since the retrieval pack shows logrus as
// the ecosystem's structured-logging choice and spec.md §4.7 wants
// diagnostics to carry file/symbol attribution as data, not just text.
package diag

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Severity classifies a diagnostic per spec.md §7.
type Severity int

const (
	Informational Severity = iota
	Warning
	Recoverable
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Informational:
		return "info"
	case Warning:
		return "warning"
	case Recoverable:
		return "recoverable"
	case Fatal:
		return "fatal"
	default:
		return "severity(?)"
	}
}

// Diagnostic is one reported condition, with the file/symbol
// attribution spec.md §4.7 and §7 require ("Diagnostic messages
// identify offending files by path and symbol by demangled name").
type Diagnostic struct {
	Severity Severity
	Message  string
	Symbol   string
	Files    []string
}

// Sink is the single collaborator diagnostics are reported through
// (spec.md §7). The engine and policy passes never print directly.
type Sink interface {
	Report(Diagnostic)
}

// Diagnostics is the default Sink: a logrus-backed, level-gated,
// error-counting sink. Single-threaded by contract (spec.md §5), so
// unlike chai's Logger it carries no mutex.
type Diagnostics struct {
	Log *logrus.Logger

	errorCount int
	fatal      *Diagnostic
}

// NewDiagnostics creates a Diagnostics sink writing through log, or a
// fresh default logrus.Logger if log is nil.
func NewDiagnostics(log *logrus.Logger) *Diagnostics {
	if log == nil {
		log = logrus.New()
	}
	return &Diagnostics{Log: log}
}

// Report records and logs d. A Fatal diagnostic is remembered so
// Fatal() can be checked after the current operation returns; the
// engine's contract (spec.md §7) is that it never silently proceeds
// past a fatal, but propagating Go errors out of every Add* call would
// depart from the teacher's style of reporting failures through a
// side-channel sink rather than a return value (spec.md §4.1 "Each
// signals diagnostics through the error component, not through its
// return").
func (d *Diagnostics) Report(diagnostic Diagnostic) {
	entry := d.Log.WithField("severity", diagnostic.Severity.String())
	if diagnostic.Symbol != "" {
		entry = entry.WithField("symbol", diagnostic.Symbol)
	}
	if len(diagnostic.Files) > 0 {
		entry = entry.WithField("files", diagnostic.Files)
	}

	switch diagnostic.Severity {
	case Fatal:
		d.errorCount++
		if d.fatal == nil {
			cp := diagnostic
			d.fatal = &cp
		}
		entry.Error(diagnostic.Message)
	case Recoverable, Warning:
		entry.Warn(diagnostic.Message)
	default:
		entry.Info(diagnostic.Message)
	}
}

// Fatal returns the first Fatal diagnostic reported, or nil if none
// has been.
func (d *Diagnostics) Fatal() *Diagnostic { return d.fatal }

// ErrorCount returns the number of Fatal diagnostics reported so far.
func (d *Diagnostics) ErrorCount() int { return d.errorCount }

// conflictMessage formats a duplicate/conflict diagnostic message in
// lld's own wording, ported from SymbolTable.cpp::conflictMsg
// ("duplicate symbol: NAME in FILE1 and FILE2").
func conflictMessage(kind, symbol string, files []string) string {
	switch len(files) {
	case 0:
		return fmt.Sprintf("%s: %s", kind, symbol)
	case 1:
		return fmt.Sprintf("%s: %s in %s", kind, symbol, files[0])
	default:
		return fmt.Sprintf("%s: %s in %s and %s", kind, symbol, files[0], files[1])
	}
}

// DuplicateSymbol reports spec.md §4.1's "duplicate symbol" diagnostic.
// allowMultipleDefinition downgrades it to a warning, per spec.md §7's
// "Recoverable" case.
func DuplicateSymbol(sink Sink, symbol string, files []string, allowMultipleDefinition bool) {
	sev := Fatal
	if allowMultipleDefinition {
		sev = Recoverable
	}
	sink.Report(Diagnostic{
		Severity: sev,
		Message:  conflictMessage("duplicate symbol", symbol, files),
		Symbol:   symbol,
		Files:    files,
	})
}

// TLSMismatch reports spec.md §4.1 step 5's TLS attribute mismatch.
func TLSMismatch(sink Sink, symbol string, files []string) {
	sink.Report(Diagnostic{
		Severity: Fatal,
		Message:  conflictMessage("TLS attribute mismatch for symbol", symbol, files),
		Symbol:   symbol,
		Files:    files,
	})
}

// CommonOverridden reports the "common overridden" warning (spec.md
// §4.1 common-symbol rule), gated by warnCommon.
func CommonOverridden(sink Sink, symbol string, warnCommon bool) {
	if !warnCommon {
		return
	}
	sink.Report(Diagnostic{
		Severity: Warning,
		Message:  fmt.Sprintf("common %s is overridden", symbol),
		Symbol:   symbol,
	})
}

// MultipleCommon reports the "multiple common" warning.
func MultipleCommon(sink Sink, symbol string, warnCommon bool) {
	if !warnCommon {
		return
	}
	sink.Report(Diagnostic{
		Severity: Warning,
		Message:  fmt.Sprintf("multiple common of %s", symbol),
		Symbol:   symbol,
	})
}

// UndefinedVersion reports spec.md §4.5's "undefined version"
// diagnostic for a name referencing a version tag no script declared.
func UndefinedVersion(sink Sink, symbol, tag string) {
	sink.Report(Diagnostic{
		Severity: Fatal,
		Message:  fmt.Sprintf("symbol %s has undefined version %s", symbol, tag),
		Symbol:   symbol,
	})
}
