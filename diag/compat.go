package diag

import "fmt"

// Target describes the machine/class/byte-order the link has
// committed to, per spec.md §4.7: "the first accepted ELF file
// establishes the baseline if no emulation is configured."
type Target struct {
	MachineClass string // e.g. "ELF32", "ELF64"
	ByteOrder    string // e.g. "little", "big"
	Machine      string // e.g. "x86-64", "aarch64"
}

// Baseline decides the effective link target from an explicit
// emulation string (--emulation) or, if empty, from the first file's
// target.
type Baseline struct {
	target  *Target
	pinned  bool
	firstOf string
}

// NewBaseline creates a Baseline, pinned to emulation if non-empty.
func NewBaseline(emulation *Target) *Baseline {
	b := &Baseline{}
	if emulation != nil {
		b.target = emulation
		b.pinned = true
	}
	return b
}

// Check compares file's target against the baseline, establishing the
// baseline from the first file seen if none is pinned. Returns a
// non-nil Diagnostic (Fatal) on mismatch, naming both files, per
// spec.md §4.7 "Mismatch ⇒ hard error with both filenames."
func (b *Baseline) Check(fileName string, fileTarget Target) *Diagnostic {
	if b.target == nil {
		b.target = &fileTarget
		b.firstOf = fileName
		return nil
	}
	if *b.target == fileTarget {
		return nil
	}
	baselineName := b.firstOf
	if b.pinned {
		baselineName = "emulation " + fmt.Sprintf("%s/%s/%s", b.target.MachineClass, b.target.ByteOrder, b.target.Machine)
	}
	return &Diagnostic{
		Severity: Fatal,
		Message:  fmt.Sprintf("%s is incompatible with %s", fileName, baselineName),
		Files:    []string{fileName, baselineName},
	}
}
