package resolve

import (
	"testing"

	"github.com/pkujhd/golink/symtab"
)

type fakeArchive struct {
	name    string
	members map[string][]byte
}

func (f fakeArchive) Name() string    { return f.name }
func (f fakeArchive) Priority() int   { return 0 }
func (f fakeArchive) IsBitcode() bool { return false }
func (f fakeArchive) GetMember(symbol string) ([]byte, error) {
	return f.members[symbol], nil
}

// recordingFetcher remembers which archive members were fetched,
// without actually parsing them into new symbol records — enough to
// verify the engine triggers pull-in at the right moment.
type recordingFetcher struct {
	fetchedMembers []string
}

func (f *recordingFetcher) FetchArchiveMember(e *Engine, archive symtab.ArchiveFile, member []byte) {
	f.fetchedMembers = append(f.fetchedMembers, string(member))
}

func (f *recordingFetcher) FetchLazyObject(e *Engine, object symtab.LazyObjectFile, buf []byte) {}

func TestAddLazyArchiveNotFetchedWithoutReference(t *testing.T) {
	e, _ := newEngine()
	fetcher := &recordingFetcher{}
	e.SetFetcher(fetcher)

	archive := fakeArchive{name: "libfoo.a", members: map[string][]byte{"foo": []byte("foo")}}
	e.AddLazyArchive(symtab.Name("foo"), archive)

	if len(fetcher.fetchedMembers) != 0 {
		t.Fatal("a lazy archive record with no reference must not be fetched")
	}
	env, ok := e.Index().Lookup(symtab.Name("foo"))
	if !ok || env.Slot.Kind().String() != "lazy-archive" {
		t.Fatal("expected a lazy-archive record to remain in the index")
	}
}

func TestAddUndefinedTriggersPullIn(t *testing.T) {
	e, _ := newEngine()
	fetcher := &recordingFetcher{}
	e.SetFetcher(fetcher)

	archive := fakeArchive{name: "libfoo.a", members: map[string][]byte{"foo": []byte("foo-body")}}
	e.AddLazyArchive(symtab.Name("foo"), archive)
	e.AddUndefined(symtab.Name("foo"), false, false, testFile{name: "main.o"})

	if len(fetcher.fetchedMembers) != 1 || fetcher.fetchedMembers[0] != "foo-body" {
		t.Fatalf("fetchedMembers = %v, want [foo-body]", fetcher.fetchedMembers)
	}
}

func TestAddLazyArchiveAfterUndefinedFetchesImmediately(t *testing.T) {
	e, _ := newEngine()
	fetcher := &recordingFetcher{}
	e.SetFetcher(fetcher)

	e.AddUndefined(symtab.Name("foo"), false, false, testFile{name: "main.o"})
	archive := fakeArchive{name: "libfoo.a", members: map[string][]byte{"foo": []byte("foo-body")}}
	e.AddLazyArchive(symtab.Name("foo"), archive)

	if len(fetcher.fetchedMembers) != 1 {
		t.Fatalf("expected the archive to be fetched as soon as the lazy record meets an existing reference, got %v", fetcher.fetchedMembers)
	}
}

func TestAddLazyArchiveConfluenceFirstWins(t *testing.T) {
	e, _ := newEngine()

	first := fakeArchive{name: "first.a", members: map[string][]byte{"foo": []byte("first")}}
	second := fakeArchive{name: "second.a", members: map[string][]byte{"foo": []byte("second")}}

	e.AddLazyArchive(symtab.Name("foo"), first)
	e.AddLazyArchive(symtab.Name("foo"), second)

	env, _ := e.Index().Lookup(symtab.Name("foo"))
	rec := env.Slot.(symtab.LazyArchiveRecord)
	if rec.Archive.Name() != "first.a" {
		t.Fatalf("lazy record archive = %q, want %q (command-line order)", rec.Archive.Name(), "first.a")
	}
}
