package symtab

import "github.com/pkujhd/golink/objabi/symkind"

// Record is the tagged-variant payload held by an Envelope's slot.
// spec.md §9 calls for "tagged variants over inheritance": the
// source's symbol class hierarchy becomes a small interface with one
// concrete payload type per symkind.Kind, dispatched by a type switch
// rather than a vtable. Grounded on the teacher's obj.ObjSymbol/obj.Sym
// (a single struct with a Kind discriminant field) — expressed here as
// one struct per kind instead, which is the idiomatic Go rendition of
// the same sum type.
type Record interface {
	Kind() symkind.Kind
}

// UndefinedRecord is a reference: spec.md §3 "Undefined."
type UndefinedRecord struct {
	Type string // declared type, if any
	File File   // originating file; may be nil for linker-injected references
}

func (UndefinedRecord) Kind() symkind.Kind { return symkind.Undefined }

// RegularRecord is a concrete definition bound to an input section.
type RegularRecord struct {
	Section string
	Value   uint64
	Size    uint64
	Type    string
	File    File
	IsTLS   bool
}

func (RegularRecord) Kind() symkind.Kind { return symkind.Regular }

// CommonRecord is an uninitialized tentative definition, mergeable by
// maximum size and alignment per spec.md §3/§4.1.
type CommonRecord struct {
	Size      uint64
	Alignment uint64
	File      File
	IsTLS     bool
}

func (CommonRecord) Kind() symkind.Kind { return symkind.Common }

// VersionDescriptor names the version a shared-library definition was
// tagged with by its originating DSO, if any.
type VersionDescriptor struct {
	Name string
}

// SharedRecord is a definition contributed by a dynamic library.
type SharedRecord struct {
	File    File
	Version *VersionDescriptor
	IsTLS   bool
}

func (SharedRecord) Kind() symkind.Kind { return symkind.Shared }

// LazyArchiveRecord is a promise that an archive member defines Name.
type LazyArchiveRecord struct {
	Archive ArchiveFile
	Member  string
	// Type is copied in from a weak undefined reference that preserved
	// this lazy record instead of triggering pull-in; see spec.md §4.2.
	Type string
}

func (LazyArchiveRecord) Kind() symkind.Kind { return symkind.LazyArchive }

// LazyObjectRecord is a promise that a buffered object file defines Name.
type LazyObjectRecord struct {
	Object LazyObjectFile
	Type   string
}

func (LazyObjectRecord) Kind() symkind.Kind { return symkind.LazyObject }

// BitcodeRecord is a definition carried by an LTO bitcode unit, liable
// to be replaced by the LTO compiler's native output.
type BitcodeRecord struct {
	File  BitcodeFile
	IsTLS bool
}

func (BitcodeRecord) Kind() symkind.Kind { return symkind.Bitcode }

// SyntheticRecord is a linker-introduced absolute/hidden definition
// (addAbsolute, addIgnored, addSynthetic in spec.md §4.1).
type SyntheticRecord struct {
	Value uint64
}

func (SyntheticRecord) Kind() symkind.Kind { return symkind.Synthetic }

// IsTLS reports whether r is a TLS-typed definition, used by the TLS
// attribute-mismatch check in spec.md §4.1 step 5.
func IsTLS(r Record) bool {
	switch v := r.(type) {
	case RegularRecord:
		return v.IsTLS
	case CommonRecord:
		return v.IsTLS
	case SharedRecord:
		return v.IsTLS
	case BitcodeRecord:
		return v.IsTLS
	default:
		return false
	}
}
