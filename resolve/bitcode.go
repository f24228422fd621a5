package resolve

import (
	"github.com/pkujhd/golink/lto"
	"github.com/pkujhd/golink/objabi/binding"
	"github.com/pkujhd/golink/objabi/symkind"
	"github.com/pkujhd/golink/objabi/visibility"
	"github.com/pkujhd/golink/symtab"
)

// AddBitcode records a definition carried by an LTO bitcode unit
// (spec.md §4.1's "Bitcode" row). It is treated as a strong defined
// record for ordinary precedence purposes — a second Regular
// definition of the same name is a genuine duplicate, not an
// automatic override — until AdoptLTOResult replaces it with the
// compiler's native output.
func (e *Engine) AddBitcode(name symtab.Name, isTLS, weak bool, vis visibility.Visibility, file symtab.BitcodeFile) *symtab.Envelope {
	b := binding.Global
	if weak {
		b = binding.Weak
	}

	env, created := e.insertWithAttrs(name, isTLS, vis, true, false, file)
	rec := symtab.BitcodeRecord{File: file, IsTLS: isTLS}

	cmp := compareDefinedNonCommon(e, env, created, b)
	switch {
	case cmp > 0:
		env.Slot = rec
		env.Binding = b
	case cmp < 0:
	default:
		e.reportConflict(env, file, b)
	}
	return env
}

// RunLTO presents every bitcode input registered in the engine's
// Registry to compiler and folds the results back into resolution via
// AdoptLTOResult, completing spec.md §6's "Core → LTO compiler"
// boundary. Bitcode units whose envelope was discarded as a losing
// duplicate before RunLTO runs are still passed to the compiler —
// dropping them early would require bitcode to track its own
// envelope, which spec.md's data model does not provide for.
func (e *Engine) RunLTO(compiler lto.Compiler, moduleOf func(symtab.BitcodeFile) lto.Unit) ([]lto.Result, error) {
	units := make([]lto.Unit, 0, len(e.reg.Bitcode))
	for _, f := range e.reg.Bitcode {
		units = append(units, moduleOf(f))
	}
	if len(units) == 0 {
		return nil, nil
	}
	results, err := compiler.Compile(units)
	if err != nil {
		return nil, err
	}
	for _, res := range results {
		e.AdoptLTOResult(res)
	}
	return results, nil
}

// AdoptLTOResult replaces every Bitcode record named in res with a
// native Regular definition, per the Open Question resolution in
// SPEC_FULL.md: a native record arriving through AdoptLTOResult always
// replaces bitcode for the same name, never treated as a duplicate of
// it.
func (e *Engine) AdoptLTOResult(res lto.Result) {
	for _, name := range res.Symbols {
		env, ok := e.idx.Lookup(symtab.Name(name))
		if !ok || env.Slot == nil || env.Slot.Kind() != symkind.Bitcode {
			continue
		}
		env.UsedInRegularObject = true
		env.Slot = symtab.RegularRecord{
			Section: ".text",
			File:    ltoFile{name: res.ObjectName},
		}
		env.Binding = binding.Global
	}
}

// ltoFile is the minimal symtab.File identity given to symbols
// produced by AdoptLTOResult, so diagnostics after LTO still have
// something to name.
type ltoFile struct{ name string }

func (f ltoFile) Name() string    { return f.name }
func (f ltoFile) Priority() int   { return -1 }
func (f ltoFile) IsBitcode() bool { return false }
