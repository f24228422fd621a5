// Command golink-demo drives resolve.Engine from command-line switches,
// the way a real linker driver would, and renders the resulting
// diagnostic summary to the console. It does not parse object files or
// produce an executable (spec.md §1's non-goals) — inputs are
// described on the command line as plain symbol names tagged with
// their kind, enough to exercise every operation end to end.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/pkujhd/golink/diag"
	"github.com/pkujhd/golink/objabi/visibility"
	"github.com/pkujhd/golink/policy"
	"github.com/pkujhd/golink/resolve"
	"github.com/pkujhd/golink/symtab"
)

// namedFile is the symtab.File this demo attributes every symbol it
// reads from the command line to.
type namedFile struct {
	name     string
	priority int
	bitcode  bool
}

func (f namedFile) Name() string    { return f.name }
func (f namedFile) Priority() int   { return f.priority }
func (f namedFile) IsBitcode() bool { return f.bitcode }

func main() {
	var (
		shared          bool
		exportDynamic   bool
		allowMultiDef   bool
		warnCommon      bool
		undefinedNames  []string
		traceNames      []string
		wrapNames       []string
		dynamicListPath string
		versionScript   string
	)

	flags := pflag.NewFlagSet("golink-demo", pflag.ExitOnError)
	flags.BoolVar(&shared, "shared", false, "link a shared object")
	flags.BoolVar(&exportDynamic, "export-dynamic", false, "export all global symbols to the dynamic symbol table")
	flags.BoolVar(&allowMultiDef, "allow-multiple-definition", false, "downgrade duplicate-symbol errors to warnings")
	flags.BoolVar(&warnCommon, "warn-common", false, "warn when commons are overridden or merged")
	flags.StringArrayVar(&undefinedNames, "undefined", nil, "force a symbol to be undefined")
	flags.StringArrayVar(&traceNames, "trace-symbol", nil, "report how a symbol resolved")
	flags.StringArrayVar(&wrapNames, "wrap", nil, "wrap a symbol with __wrap_/__real_")
	flags.StringVar(&dynamicListPath, "dynamic-list", "", "YAML file of export-dynamic patterns")
	flags.StringVar(&versionScript, "version-script", "", "version script file (linker-script grammar)")
	regularSpecs := flags.StringArray("defined", nil, "name[:weak] defined as a regular symbol from this input")
	undefRefs := flags.StringArray("ref", nil, "name[:weak] referenced as undefined from this input")
	commonSpecs := flags.StringArray("common", nil, "name:size defined as a tentative common symbol")

	if err := flags.Parse(os.Args[1:]); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	sink := diag.NewDiagnostics(nil)
	engine := resolve.New(resolve.Config{
		Shared:                  shared,
		ExportDynamic:           exportDynamic,
		AllowMultipleDefinition: allowMultiDef,
		WarnCommon:              warnCommon,
	}, sink)

	priority := 0
	for _, spec := range *regularSpecs {
		name, weak := splitWeak(spec)
		priority++
		engine.AddRegular(symtab.Name(name), ".text", 0, 0, false, weak, false, visibility.Default,
			namedFile{name: fmt.Sprintf("input%d.o", priority), priority: priority})
	}
	for _, spec := range *undefRefs {
		name, weak := splitWeak(spec)
		priority++
		engine.AddUndefined(symtab.Name(name), false, weak,
			namedFile{name: fmt.Sprintf("input%d.o", priority), priority: priority})
	}
	for _, spec := range *commonSpecs {
		name, size := splitSize(spec)
		priority++
		engine.AddCommon(symtab.Name(name), size, 8, false, false,
			namedFile{name: fmt.Sprintf("input%d.o", priority), priority: priority})
	}

	policy.ApplyUndefined(engine, undefinedNames)

	for _, name := range wrapNames {
		if err := engine.Wrap(symtab.Name(name)); err != nil {
			sink.Report(diag.Diagnostic{Severity: diag.Warning, Message: err.Error(), Symbol: name})
		}
	}

	if dynamicListPath != "" {
		f, err := os.Open(dynamicListPath)
		if err == nil {
			patterns, err := policy.LoadDynamicList(f)
			f.Close()
			if err == nil {
				policy.ApplyDynamicList(engine.Index(), patterns)
			}
		}
	}

	if versionScript != "" {
		if f, err := os.Open(versionScript); err == nil {
			nodes, err := policy.ParseVersionScript(f)
			f.Close()
			if err == nil {
				policy.ApplyVersionScript(engine, engine.Index(), nodes)
			}
		}
	}

	reports := policy.TraceSymbols(engine, sink, traceNames)

	renderSummary(engine, sink, reports)

	if sink.ErrorCount() > 0 {
		os.Exit(1)
	}
}

func splitWeak(spec string) (name string, weak bool) {
	if strings.HasSuffix(spec, ":weak") {
		return strings.TrimSuffix(spec, ":weak"), true
	}
	return spec, false
}

func splitSize(spec string) (name string, size uint64) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return spec, 0
	}
	var n uint64
	fmt.Sscanf(parts[1], "%d", &n)
	return parts[0], n
}

func renderSummary(e *resolve.Engine, d *diag.Diagnostics, traces []policy.TraceReport) {
	pterm.DefaultHeader.WithFullWidth().Println("golink-demo resolution summary")

	rows := [][]string{{"name", "kind", "binding", "export-dynamic"}}
	for _, name := range e.Index().Names() {
		env, ok := e.Index().Lookup(name)
		if !ok || env.Slot == nil {
			continue
		}
		rows = append(rows, []string{
			string(name),
			env.Slot.Kind().String(),
			env.Binding.String(),
			fmt.Sprintf("%v", env.ExportDynamic),
		})
	}
	if tbl, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender(); err == nil {
		fmt.Println(tbl)
	}

	for _, tr := range traces {
		if tr.Found {
			pterm.Info.Printfln("%s resolved as %s (%s)", tr.Symbol, tr.Kind, tr.File)
		} else {
			pterm.Warning.Printfln("%s not seen", tr.Symbol)
		}
	}

	if fatal := d.Fatal(); fatal != nil {
		pterm.Error.Println(fatal.Message)
	} else {
		pterm.Success.Printfln("resolved %d symbols, 0 errors", e.Index().Len())
	}
}
