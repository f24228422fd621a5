package resolve

import (
	"github.com/pkujhd/golink/objabi/binding"
	"github.com/pkujhd/golink/objabi/symkind"
	"github.com/pkujhd/golink/objabi/visibility"
	"github.com/pkujhd/golink/symtab"
)

// AddShared records a definition contributed by a dynamic library
// (spec.md §4.1's "Shared" row). A shared definition never overrides
// an existing Regular/Common/Bitcode/Synthetic definition — those
// preempt the DSO, per lld's rule that only Undefined, Lazy*, or
// another Shared record yields to an incoming Shared one. A shared
// definition with default visibility is always export-dynamic,
// mirroring ld's "referenced by a DSO -> exported" rule, since a
// consumer of the .so must be able to find it again at runtime.
func (e *Engine) AddShared(name symtab.Name, ver *symtab.VersionDescriptor, isTLS bool, vis visibility.Visibility, file symtab.SharedFile) *symtab.Envelope {
	canOmit := vis != visibility.Default
	env, created := e.insertWithAttrs(name, isTLS, vis, canOmit, false, file)
	rec := symtab.SharedRecord{File: file, Version: ver, IsTLS: isTLS}

	if !canOmit {
		env.ExportDynamic = true
	}

	switch {
	case created:
		env.Slot = rec
		env.Binding = binding.Global
	default:
		switch env.Slot.Kind() {
		case symkind.Undefined, symkind.LazyArchive, symkind.LazyObject, symkind.Shared:
			env.Slot = rec
			env.Binding = binding.Global
		default:
			// Regular/Common/Bitcode/Synthetic already defines this name;
			// the DSO's copy is preempted and ignored.
		}
	}
	return env
}
