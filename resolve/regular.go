package resolve

import (
	"github.com/pkujhd/golink/diag"
	"github.com/pkujhd/golink/objabi/binding"
	"github.com/pkujhd/golink/objabi/visibility"
	"github.com/pkujhd/golink/symtab"
)

// AddRegular records a concrete definition bound to an input section,
// spec.md §4.1's "Regular" row. weak selects the incoming binding;
// canOmitFromDynSym mirrors an already-hidden or already-local symbol
// that never needs a dynamic symbol table entry regardless of --shared
// / --export-dynamic.
func (e *Engine) AddRegular(name symtab.Name, sec string, value, size uint64, isTLS, weak, canOmitFromDynSym bool, vis visibility.Visibility, file symtab.File) *symtab.Envelope {
	b := binding.Global
	if weak {
		b = binding.Weak
	}

	env, created := e.insertWithAttrs(name, isTLS, vis, canOmitFromDynSym, !file.IsBitcode(), file)
	rec := symtab.RegularRecord{Section: sec, Value: value, Size: size, File: file, IsTLS: isTLS}

	cmp := compareDefinedNonCommon(e, env, created, b)
	switch {
	case cmp > 0:
		env.Slot = rec
		env.Binding = b
	case cmp < 0:
		// Incoming weak loses to an existing strong definition; nothing
		// changes.
	default:
		e.reportConflict(env, file, b)
	}
	return env
}

// AddSynthetic installs a linker-introduced absolute/defined symbol
// (spec.md §4.1's "Synthetic" row), e.g. section boundary markers. It
// always wins over an Undefined or lazy promise and conflicts with any
// prior strong definition exactly like AddRegular.
func (e *Engine) AddSynthetic(name symtab.Name, value uint64, vis visibility.Visibility) *symtab.Envelope {
	env, created := e.insertWithAttrs(name, false, vis, true, true, nil)
	rec := symtab.SyntheticRecord{Value: value}

	cmp := compareDefinedNonCommon(e, env, created, binding.Global)
	switch {
	case cmp > 0:
		env.Slot = rec
		env.Binding = binding.Global
	case cmp == cmpConflict:
		e.reportConflict(env, nil, binding.Global)
	}
	return env
}

// AddAbsolute defines name as an absolute value, ported verbatim from
// SymbolTable.cpp::addAbsolute: unlike AddSynthetic it only takes
// effect on a name the index already knows about (a prior reference or
// definition); a wholly new absolute symbol with no existing envelope
// is simply not materialized.
func (e *Engine) AddAbsolute(name symtab.Name, value uint64) *symtab.Envelope {
	env, ok := e.idx.Lookup(name)
	if !ok {
		return nil
	}
	env.Slot = symtab.SyntheticRecord{Value: value}
	env.Binding = binding.Global
	return env
}

// AddIgnored behaves like AddAbsolute but with value 0, ported from
// SymbolTable.cpp::addIgnored — used for symbols a version script
// or --defsym references that the link should tolerate without
// providing a real definition.
func (e *Engine) AddIgnored(name symtab.Name) *symtab.Envelope {
	return e.AddAbsolute(name, 0)
}

// reportConflict reports a duplicate-symbol diagnostic for a strong
// incoming definition racing an existing strong one. Per spec.md §8
// scenario 2 and lld's reportDuplicate (SymbolTable.cpp), the existing
// definition (F1) is always retained — --allow-multiple-definition only
// downgrades the diagnostic to a warning, it never replaces the body.
func (e *Engine) reportConflict(env *symtab.Envelope, file symtab.File, incomingBinding binding.Binding) {
	if incomingBinding == binding.Weak && env.IsWeak() {
		// Both weak: first one wins silently, no diagnostic. compareDefined
		// already answers cmpLose for any weak candidate, so this is a
		// guard: two weak definitions never count as a conflict.
		return
	}
	diag.DuplicateSymbol(e.sink, string(env.Name), fileNames(fileOf(env.Slot), file), e.cfg.AllowMultipleDefinition)
}
