package policy

import (
	"github.com/pkujhd/golink/diag"
	"github.com/pkujhd/golink/resolve"
	"github.com/pkujhd/golink/symtab"
)

// TraceReport is one --trace-symbol result line, spec.md §4.6.
type TraceReport struct {
	Symbol string
	Found  bool
	Kind   string
	File   string
}

// TraceSymbols reports, for every requested name, what the resolution
// engine finally settled on — which file supplied the winning
// definition and what kind of record it was — informational severity,
// since spec.md §4.6 treats --trace-symbol as observability rather
// than a pass/fail check.
func TraceSymbols(e *resolve.Engine, sink diag.Sink, names []string) []TraceReport {
	idx := e.Index()
	reports := make([]TraceReport, 0, len(names))
	for _, name := range names {
		r := TraceReport{Symbol: name}
		env, ok := idx.Lookup(symtab.Name(name))
		if !ok || env.Slot == nil {
			sink.Report(diag.Diagnostic{
				Severity: diag.Informational,
				Message:  "trace: " + name + " not seen",
				Symbol:   name,
			})
			reports = append(reports, r)
			continue
		}
		r.Found = true
		r.Kind = env.Slot.Kind().String()
		r.File = fileNameOf(env.Slot)
		sink.Report(diag.Diagnostic{
			Severity: diag.Informational,
			Message:  "trace: " + name + " resolved as " + r.Kind,
			Symbol:   name,
			Files:    fileNamesOf(r.File),
		})
		reports = append(reports, r)
	}
	return reports
}

func fileNameOf(r symtab.Record) string {
	switch v := r.(type) {
	case symtab.UndefinedRecord:
		return fileNameOrEmpty(v.File)
	case symtab.RegularRecord:
		return fileNameOrEmpty(v.File)
	case symtab.CommonRecord:
		return fileNameOrEmpty(v.File)
	case symtab.SharedRecord:
		return fileNameOrEmpty(v.File)
	case symtab.BitcodeRecord:
		return fileNameOrEmpty(v.File)
	default:
		return ""
	}
}

func fileNameOrEmpty(f symtab.File) string {
	if f == nil {
		return ""
	}
	return f.Name()
}

func fileNamesOf(name string) []string {
	if name == "" {
		return nil
	}
	return []string{name}
}
