package resolve

import (
	"github.com/pkujhd/golink/diag"
	"github.com/pkujhd/golink/objabi/binding"
	"github.com/pkujhd/golink/objabi/symkind"
	"github.com/pkujhd/golink/symtab"
)

// cmpResult mirrors lld's compareDefined return convention: +1 the
// incoming candidate wins, -1 it loses, 0 both are strong defined
// (a real conflict).
type cmpResult int

const (
	cmpLose    cmpResult = -1
	cmpConflict cmpResult = 0
	cmpWin     cmpResult = 1
)

// compareDefined decides between an existing envelope and an incoming
// defined candidate with the given binding, ported from
// SymbolTable.cpp::compareDefined. wasInserted is true when the
// envelope was just created (nothing to compare against).
func compareDefined(env *symtab.Envelope, wasInserted bool, incoming binding.Binding) cmpResult {
	if wasInserted {
		return cmpWin
	}
	switch env.Slot.Kind() {
	case symkind.LazyArchive, symkind.LazyObject, symkind.Undefined, symkind.Shared:
		return cmpWin
	}
	if incoming == binding.Weak {
		return cmpLose
	}
	if env.IsWeak() {
		return cmpWin
	}
	return cmpConflict
}

// compareDefinedNonCommon additionally gives non-common definitions
// precedence over a resident Common, per spec.md §4.1's "Non-common
// symbols take precedence over common symbols," ported from
// SymbolTable.cpp::compareDefinedNonCommon. On a win it also updates
// env.Binding to the incoming one, matching lld's side effect. e's
// sink receives the "common overridden" warning lld emits on that
// branch, gated by e's WarnCommon config.
func compareDefinedNonCommon(e *Engine, env *symtab.Envelope, wasInserted bool, incoming binding.Binding) cmpResult {
	cmp := compareDefined(env, wasInserted, incoming)
	if cmp != cmpConflict {
		if cmp == cmpWin {
			env.Binding = incoming
		}
		return cmp
	}
	if env.Slot.Kind() == symkind.Common {
		diag.CommonOverridden(e.sink, string(env.Name), e.cfg.WarnCommon)
		env.Binding = incoming
		return cmpWin
	}
	return cmpConflict
}
