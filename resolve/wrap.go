package resolve

import (
	"fmt"

	"github.com/pkujhd/golink/symtab"
)

// Wrap implements --wrap=name (spec.md §4.4): every reference to name
// is rewired to resolve against __wrap_name, and references to
// __real_name are rewired to resolve against the original name, by
// swapping the two envelopes' Slot/Binding/Visibility payloads in
// place. Because Envelope addresses never move (symtab.Index's
// append-only arena), anything that already holds a *symtab.Envelope
// pointer for either name keeps pointing at the right place after the
// swap.
//
// Per the Open Question resolution recorded in SPEC_FULL.md, wrapping
// the same name twice is rejected rather than silently reapplied or
// silently ignored.
func (e *Engine) Wrap(name symtab.Name) error {
	base := string(name)
	if e.wrapped[base] {
		return fmt.Errorf("resolve: %q already wrapped", base)
	}

	real, realOK := e.idx.Lookup(name)
	if !realOK {
		// No reference to name exists at all; SymbolTable.cpp::wrap treats
		// this as a no-op rather than an error, per SPEC_FULL.md's
		// supplemented-feature note.
		e.wrapped[base] = true
		return nil
	}

	wrapName := symtab.Name("__wrap_" + base)
	realName := symtab.Name("__real_" + base)

	wrapEnv, wrapCreated := e.idx.GetOrCreate(wrapName)
	realEnv, realCreated := e.idx.GetOrCreate(realName)

	// Neither envelope may carry a nil Slot past this point (spec.md §3:
	// the kind payload is non-null after first insertion); a freshly
	// created __wrap_name/__real_name with no prior definition starts
	// out undefined, same as any other unreferenced-so-far symbol.
	if wrapCreated {
		wrapEnv.Slot = symtab.UndefinedRecord{}
	}
	if realCreated {
		realEnv.Slot = symtab.UndefinedRecord{}
	}

	// __real_name now resolves to whatever name originally resolved to.
	realEnv.Slot = real.Slot
	realEnv.Binding = real.Binding
	realEnv.Visibility = real.Visibility
	realEnv.UsedInRegularObject = real.UsedInRegularObject || realEnv.UsedInRegularObject

	// name now resolves to whatever __wrap_name resolves to.
	real.Slot = wrapEnv.Slot
	real.Binding = wrapEnv.Binding
	real.Visibility = wrapEnv.Visibility

	e.wrapped[base] = true
	return nil
}
