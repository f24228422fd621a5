package resolve

import (
	"github.com/pkujhd/golink/objabi/symkind"
	"github.com/pkujhd/golink/symtab"
)

// AddLazyArchive records a promise that archive defines name, without
// pulling the member in (spec.md §4.1's "LazyArchive" row, §4.2's lazy
// pull-in driver). If the envelope already holds an Undefined
// reference, the archive is fetched immediately instead — matching
// SymbolTable.cpp::addLazyArchive's ordering, where a lazy symbol
// presented after a reference already exists triggers pull-in on the
// spot rather than waiting for a later AddUndefined.
func (e *Engine) AddLazyArchive(name symtab.Name, archive symtab.ArchiveFile) *symtab.Envelope {
	env, created := e.idx.GetOrCreate(name)
	if created {
		env.Slot = symtab.LazyArchiveRecord{Archive: archive, Member: string(name)}
		return env
	}

	switch env.Slot.Kind() {
	case symkind.Undefined:
		env.Slot = symtab.LazyArchiveRecord{Archive: archive, Member: string(name)}
		e.pullIn(env)
	case symkind.LazyArchive, symkind.LazyObject:
		// A lazy promise already occupies this name; per spec.md §8's
		// command-line-order confluence, the one encountered first wins
		// and this later one is simply not recorded.
	default:
		// Already defined; the archive member is never needed.
	}
	return env
}

// AddLazyObject records a promise that a buffered object file defines
// name, mirroring AddLazyArchive for the --start-lib/plain-object lazy
// case (spec.md §4.1's "LazyObject" row).
func (e *Engine) AddLazyObject(name symtab.Name, object symtab.LazyObjectFile) *symtab.Envelope {
	env, created := e.idx.GetOrCreate(name)
	if created {
		env.Slot = symtab.LazyObjectRecord{Object: object}
		return env
	}

	switch env.Slot.Kind() {
	case symkind.Undefined:
		env.Slot = symtab.LazyObjectRecord{Object: object}
		e.pullIn(env)
	case symkind.LazyArchive, symkind.LazyObject:
	default:
	}
	return env
}
