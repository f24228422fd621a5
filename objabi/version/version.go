// Package version holds the symbol-versioning sentinels from spec.md
// §3 and §4.5. Grounded on SymbolTable.cpp's VER_NDX_LOCAL/GLOBAL
// handling (original_source/ELF/SymbolTable.cpp, getVersionId/insert).
package version

// ID is a dynamic-symbol-table version tag. 0 is reserved (unassigned);
// Local and Global are sentinels; anything >= UserBase is a
// script-declared version, possibly OR'd with Hidden.
type ID uint16

const (
	// Unassigned is the reserved zero value: no version decided yet.
	Unassigned ID = 0
	// Local symbols are stripped from the dynamic symbol table.
	Local ID = 1
	// Global symbols are kept in the dynamic symbol table with no
	// specific version tag.
	Global ID = 2
	// UserBase is the first id available to script-declared versions.
	UserBase ID = 3
	// Hidden, OR'd into a user version id, marks a non-default version
	// (assigned via "name@version" rather than "name@@version").
	Hidden ID = 1 << 15
)

// WithoutHidden strips the hidden bit, for comparisons against declared
// version ids.
func (id ID) WithoutHidden() ID { return id &^ Hidden }

// IsHidden reports whether the hidden bit is set.
func (id ID) IsHidden() bool { return id&Hidden != 0 }

// IsSentinel reports whether id is Local or Global.
func (id ID) IsSentinel() bool {
	return id == Local || id == Global
}
