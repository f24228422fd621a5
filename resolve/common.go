package resolve

import (
	"github.com/pkujhd/golink/diag"
	"github.com/pkujhd/golink/objabi/binding"
	"github.com/pkujhd/golink/objabi/symkind"
	"github.com/pkujhd/golink/objabi/visibility"
	"github.com/pkujhd/golink/symtab"
)

// AddCommon records a tentative, uninitialized definition (spec.md
// §4.1's "Common" row). Two commons for the same name merge by taking
// the maximum size and alignment, per the common-symbol rule; a strong
// non-common definition already present keeps its precedence over an
// incoming common, since compareDefined's conflict verdict leaves it in
// place.
func (e *Engine) AddCommon(name symtab.Name, size, alignment uint64, isTLS, weak bool, file symtab.File) *symtab.Envelope {
	b := binding.Global
	if weak {
		b = binding.Weak
	}

	env, created := e.insertWithAttrs(name, isTLS, visibility.Default, true, !file.IsBitcode(), file)
	rec := symtab.CommonRecord{Size: size, Alignment: alignment, File: file, IsTLS: isTLS}

	if !created && env.Slot.Kind() == symkind.Common {
		existing := env.Slot.(symtab.CommonRecord)
		diag.MultipleCommon(e.sink, string(name), e.cfg.WarnCommon)
		if size > existing.Size {
			existing.Size = size
		}
		if alignment > existing.Alignment {
			existing.Alignment = alignment
		}
		env.Slot = existing
		if !b.IsWeak() {
			env.Binding = binding.Global
		}
		return env
	}

	cmp := compareDefined(env, created, b)
	if cmp > 0 {
		env.Slot = rec
		env.Binding = b
	}
	return env
}
