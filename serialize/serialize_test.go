package serialize

import (
	"bytes"
	"testing"

	"github.com/pkujhd/golink/objabi/visibility"
	"github.com/pkujhd/golink/symtab"
)

type testFile struct{ name string }

func (f testFile) Name() string    { return f.name }
func (f testFile) Priority() int   { return 0 }
func (f testFile) IsBitcode() bool { return false }

func TestWriteReadRoundTrip(t *testing.T) {
	idx := symtab.NewIndex()
	env, _ := idx.GetOrCreate(symtab.Name("foo"))
	env.Slot = symtab.RegularRecord{Section: ".text", Size: 8, File: testFile{name: "a.o"}}
	env.ExportDynamic = true
	env.Visibility = visibility.Default

	var buf bytes.Buffer
	if err := Write(idx, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	snap, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(snap.Entries) != 1 {
		t.Fatalf("len(snap.Entries) = %d, want 1", len(snap.Entries))
	}
	entry := snap.Entries[0]
	if entry.Name != "foo" || entry.File != "a.o" || entry.Size != 8 || !entry.ExportDynamic {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestWriteSkipsUnresolvedEnvelopes(t *testing.T) {
	idx := symtab.NewIndex()
	idx.GetOrCreate(symtab.Name("unresolved")) // never given a Slot

	var buf bytes.Buffer
	if err := Write(idx, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	snap, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(snap.Entries) != 0 {
		t.Fatalf("len(snap.Entries) = %d, want 0", len(snap.Entries))
	}
}
