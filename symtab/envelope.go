package symtab

import (
	"github.com/pkujhd/golink/objabi/binding"
	"github.com/pkujhd/golink/objabi/version"
	"github.com/pkujhd/golink/objabi/visibility"
)

// Envelope is the stable per-name record described in spec.md §3.
// Its address never moves once allocated (see Index, which owns an
// append-only arena of Envelopes) — --wrap (spec.md §4.4) depends on
// that: it shuffles Slot contents but never reallocates the Envelope
// itself, so pointers held elsewhere into the envelope keep working.
type Envelope struct {
	Name Name

	// Slot holds the currently resolved payload. Non-nil after first
	// insertion (spec.md §3 invariant).
	Slot Record

	Binding    binding.Binding
	Visibility visibility.Visibility
	VersionID  version.ID

	// UsedInRegularObject is set once the envelope has been touched by
	// a non-bitcode input (spec.md §4.1 step 4).
	UsedInRegularObject bool
	// ExportDynamic marks the symbol for inclusion in the dynamic
	// symbol table (spec.md §4.1 step 3, and the policy passes of §4.6).
	ExportDynamic bool
	// VersionedName records whether the name itself carried an '@' tag
	// at first insertion (spec.md §3 invariant: fixed at insertion).
	VersionedName bool
}

// IsWeak reports whether the envelope's current binding is weak.
func (e *Envelope) IsWeak() bool { return e.Binding == binding.Weak }

// newEnvelope creates an envelope for name with the defaults lld's
// SymbolTable::insert uses: weak binding, default visibility. The
// version id itself is assigned by resolve.Engine's insert immediately
// after, per spec.md §4.5 — that decision needs the engine's
// declared-version table, which symtab does not own.
func newEnvelope(name Name) *Envelope {
	return &Envelope{
		Name:          name,
		Binding:       binding.Weak,
		Visibility:    visibility.Default,
		VersionedName: name.HasVersion(),
	}
}
