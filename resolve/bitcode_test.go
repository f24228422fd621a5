package resolve

import (
	"testing"

	"github.com/pkujhd/golink/diag"
	"github.com/pkujhd/golink/lto"
	"github.com/pkujhd/golink/objabi/visibility"
	"github.com/pkujhd/golink/symtab"
)

type fakeBitcodeFile struct{ name string }

func (f fakeBitcodeFile) Name() string    { return f.name }
func (f fakeBitcodeFile) Priority() int   { return 0 }
func (f fakeBitcodeFile) IsBitcode() bool { return true }

func TestAddBitcodeThenNativeDuplicateConflicts(t *testing.T) {
	e, sink := newEngine()
	e.AddBitcode(symtab.Name("foo"), false, false, visibility.Default, fakeBitcodeFile{name: "a.bc"})
	e.AddRegular(symtab.Name("foo"), ".text", 0, 4, false, false, false, visibility.Default, testFile{name: "b.o"})

	if !sink.has(diag.Fatal) {
		t.Fatal("expected a duplicate-symbol diagnostic for a native definition racing an unresolved bitcode record")
	}
}

func TestAdoptLTOResultReplacesBitcode(t *testing.T) {
	e, _ := newEngine()
	e.AddBitcode(symtab.Name("foo"), false, false, visibility.Default, fakeBitcodeFile{name: "a.bc"})

	e.AdoptLTOResult(lto.Result{ObjectName: "lto.o", Symbols: []string{"foo"}})

	env, ok := e.Index().Lookup(symtab.Name("foo"))
	if !ok {
		t.Fatal("expected foo to remain in the index")
	}
	if env.Slot.Kind().String() != "regular" {
		t.Fatalf("env.Slot.Kind() = %v, want regular after AdoptLTOResult", env.Slot.Kind())
	}
}
