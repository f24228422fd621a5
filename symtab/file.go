package symtab

// File identifies an input that owns symbol records. The registry is
// the exclusive owner of File values for the lifetime of the link
// (spec.md §5); the core only ever reads File.Name for diagnostics and
// File.IsBitcode for the used-in-regular-object flag.
type File interface {
	Name() string
	// Priority is the input's position on the command line: lower
	// values were seen earlier. The core does not read it: precedence
	// and lazy pull-in confluence follow the order of the Add* calls.
	Priority() int
	// IsBitcode reports whether this file is a bitcode unit. Plain
	// object/archive-member/shared files answer false; only bitcode
	// answers true. addUndefined's "used-in-regular-object" rule
	// (spec.md §4.1 step 4) keys off this.
	IsBitcode() bool
}

// ArchiveFile is a lazily-loaded archive. GetMember is called by the
// lazy pull-in driver (spec.md §4.2); an empty buffer is a no-op.
type ArchiveFile interface {
	File
	GetMember(symbol string) ([]byte, error)
}

// LazyObjectFile is a single buffered object file not yet pulled in.
type LazyObjectFile interface {
	File
	Buffer() ([]byte, error)
}

// SharedFile is a dynamic library. Soname is used for DSO
// uniquification (spec.md §3 invariant); Undefined lists the names the
// shared library itself leaves unresolved, consumed by the
// shared-undefined scan (spec.md §4.6).
type SharedFile interface {
	File
	Soname() string
	Undefined() []string
}

// BitcodeFile is an LLVM bitcode input. It adds no methods to File: its
// symbols reach the engine through resolve.Engine.AddBitcode, and code
// generation is deferred to the LTO collaborator (package lto).
type BitcodeFile interface {
	File
}

// ObjectFile is a regular relocatable object.
type ObjectFile interface {
	File
}
