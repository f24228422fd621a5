// Package serialize snapshots a finalized symtab.Index, grounded
// directly on the teacher's own serialize.go (Serialize/UnSerialize
// via gob.NewEncoder/gob.NewDecoder over *Linker) — carried forward
// unchanged in shape, aimed at *symtab.Index instead.
package serialize

import (
	"encoding/gob"
	"io"

	"github.com/pkujhd/golink/objabi/binding"
	"github.com/pkujhd/golink/objabi/symkind"
	"github.com/pkujhd/golink/objabi/version"
	"github.com/pkujhd/golink/objabi/visibility"
	"github.com/pkujhd/golink/symtab"
)

// Snapshot is the gob-encodable projection of a symtab.Index: File
// values are collaborator interfaces with no stable encoding of their
// own (spec.md §6 keeps parsing out of scope), so only the file name
// each record points back to is kept, matching what diagnostics
// already key off of.
type Snapshot struct {
	Entries []Entry
}

// Entry is one envelope's snapshotted state.
type Entry struct {
	Name       string
	Kind       symkind.Kind
	Binding    binding.Binding
	Visibility visibility.Visibility
	VersionID  version.ID

	ExportDynamic       bool
	UsedInRegularObject bool

	File string // originating file name, if the record kind carries one
	Size uint64 // Regular/Common size, if applicable
}

// snapshot builds a gob-encodable snapshot of idx, in insertion order.
func snapshot(idx *symtab.Index) Snapshot {
	names := idx.Names()
	snap := Snapshot{Entries: make([]Entry, 0, len(names))}
	for _, name := range names {
		env, ok := idx.Lookup(name)
		if !ok || env.Slot == nil {
			continue
		}
		e := Entry{
			Name:                string(name),
			Kind:                env.Slot.Kind(),
			Binding:             env.Binding,
			Visibility:          env.Visibility,
			VersionID:           env.VersionID,
			ExportDynamic:       env.ExportDynamic,
			UsedInRegularObject: env.UsedInRegularObject,
		}
		switch rec := env.Slot.(type) {
		case symtab.RegularRecord:
			e.Size = rec.Size
			if rec.File != nil {
				e.File = rec.File.Name()
			}
		case symtab.CommonRecord:
			e.Size = rec.Size
			if rec.File != nil {
				e.File = rec.File.Name()
			}
		case symtab.SharedRecord:
			if rec.File != nil {
				e.File = rec.File.Name()
			}
		case symtab.BitcodeRecord:
			if rec.File != nil {
				e.File = rec.File.Name()
			}
		case symtab.UndefinedRecord:
			if rec.File != nil {
				e.File = rec.File.Name()
			}
		}
		snap.Entries = append(snap.Entries, e)
	}
	return snap
}

// Write encodes idx's current state to w.
func Write(idx *symtab.Index, w io.Writer) error {
	return gob.NewEncoder(w).Encode(snapshot(idx))
}

// Read decodes a previously-written Snapshot from r. It does not
// reconstruct a live symtab.Index — File collaborators cannot be
// recreated from a bare name — so the result is the read-only Snapshot
// itself, for inspection or diffing against a later run.
func Read(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	err := gob.NewDecoder(r).Decode(&snap)
	return snap, err
}
