// Package symkind enumerates the tagged-variant discriminants of
// symtab.Record. Grounded on the teacher's objabi/symkind package: a
// plain int-backed enum with a String method, minus the
// go1.8/go1.9/go1.24 build-tag forks the teacher needs to track
// cmd/objfile/objabi across Go versions — this core has no such
// runtime-version dependency, so one unconditional file suffices.
package symkind

// Kind discriminates the payload a symtab.Record carries.
type Kind int

const (
	// Sxxx is the invalid zero value, matching the teacher's convention
	// of reserving the zero kind as "not yet set."
	Sxxx Kind = iota
	Undefined
	Regular
	Common
	Shared
	LazyArchive
	LazyObject
	Bitcode
	Synthetic
)

func (k Kind) String() string {
	switch k {
	case Sxxx:
		return "sxxx"
	case Undefined:
		return "undefined"
	case Regular:
		return "regular"
	case Common:
		return "common"
	case Shared:
		return "shared"
	case LazyArchive:
		return "lazy-archive"
	case LazyObject:
		return "lazy-object"
	case Bitcode:
		return "bitcode"
	case Synthetic:
		return "synthetic"
	default:
		return "kind(?)"
	}
}

// IsLazy reports whether k is one of the two promise kinds.
func (k Kind) IsLazy() bool {
	return k == LazyArchive || k == LazyObject
}

// IsDefined reports whether k denotes an actual definition (as opposed
// to a reference or a promise of one). Used by symtab.Index.Glob, which
// per spec.md §4.3 returns only "defined (non-undefined) symbols."
func (k Kind) IsDefined() bool {
	switch k {
	case Regular, Common, Shared, Bitcode, Synthetic:
		return true
	default:
		return false
	}
}
