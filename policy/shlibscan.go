package policy

import (
	"github.com/pkujhd/golink/diag"
	"github.com/pkujhd/golink/resolve"
	"github.com/pkujhd/golink/symtab"
)

// ScanSharedUndefined implements spec.md §4.6's shared-object undefined
// scan: after resolution, every name a shared library itself left
// unresolved (its own DT_UNDEF-equivalent list, symtab.SharedFile.Undefined)
// must have wound up Defined somewhere in the final link, or the link
// is unresolvable at runtime. Reports one Fatal diagnostic per name
// still missing, unless allowShlibUndefined permits it through as a
// warning.
func ScanSharedUndefined(e *resolve.Engine, sink diag.Sink, allowShlibUndefined bool) {
	idx := e.Index()
	for _, shared := range e.Registry().Shared {
		for _, name := range shared.Undefined() {
			env, ok := idx.Lookup(symtab.Name(name))
			if ok && env.Slot != nil && env.Slot.Kind().IsDefined() {
				continue
			}
			reportShlibUndefined(sink, name, shared.Name(), allowShlibUndefined)
		}
	}
}

func reportShlibUndefined(sink diag.Sink, symbol, soname string, allow bool) {
	sev := diag.Fatal
	if allow {
		sev = diag.Warning
	}
	sink.Report(diag.Diagnostic{
		Severity: sev,
		Message:  "undefined reference to " + symbol + " required by " + soname,
		Symbol:   symbol,
		Files:    []string{soname},
	})
}
