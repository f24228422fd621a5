package resolve

import (
	"github.com/pkujhd/golink/objabi/binding"
	"github.com/pkujhd/golink/objabi/symkind"
	"github.com/pkujhd/golink/objabi/visibility"
	"github.com/pkujhd/golink/symtab"
)

// AddUndefined records a reference to name from file (spec.md §4.1's
// "Undefined" row). An undefined reference never overwrites an
// existing definition of any kind. Beyond first insertion, a strong
// reference triggers lazy pull-in when the envelope currently holds a
// LazyArchive or LazyObject promise, while a weak one leaves the
// promise unfetched and records its type on it; a strong reference
// strengthens a prior weak undefined one; and a TLS mismatch is
// reported if the types disagree.
func (e *Engine) AddUndefined(name symtab.Name, isTLS bool, weak bool, file symtab.File) *symtab.Envelope {
	b := binding.Global
	if weak {
		b = binding.Weak
	}

	env, created := e.insertWithAttrs(name, isTLS, visibility.Default, true, !file.IsBitcode(), file)
	if created {
		env.Slot = symtab.UndefinedRecord{Type: typeTag(isTLS), File: file}
		env.Binding = b
		return env
	}

	switch env.Slot.Kind() {
	case symkind.LazyArchive, symkind.LazyObject:
		if weak {
			// A weak reference keeps the promise and only records its
			// type, for the case no strong reference ever arrives.
			switch rec := env.Slot.(type) {
			case symtab.LazyArchiveRecord:
				rec.Type = typeTag(isTLS)
				env.Slot = rec
			case symtab.LazyObjectRecord:
				rec.Type = typeTag(isTLS)
				env.Slot = rec
			}
		} else {
			e.pullIn(env)
		}
	case symkind.Undefined:
		// A second undefined reference only strengthens a prior weak one;
		// it never loses information, matching lld's Undefined::Undefined
		// merge which keeps the stronger binding.
		if !weak && env.IsWeak() {
			env.Binding = binding.Global
		}
	default:
		// Already defined (Regular/Common/Shared/Bitcode/Synthetic): the
		// reference is satisfied, nothing changes.
	}
	return env
}

func typeTag(isTLS bool) string {
	if isTLS {
		return "tls"
	}
	return ""
}

// pullIn triggers lazy pull-in for env, which must currently hold a
// LazyArchive or LazyObject record, per spec.md §4.2. The fetched
// buffer is handed to the Fetcher collaborator configured on the
// engine; if none is configured, the promise is left in place (the
// driver is expected to supply one whenever lazy records exist).
func (e *Engine) pullIn(env *symtab.Envelope) {
	if e.fetcher == nil {
		return
	}
	switch rec := env.Slot.(type) {
	case symtab.LazyArchiveRecord:
		buf, err := rec.Archive.GetMember(string(env.Name))
		if err != nil || len(buf) == 0 {
			return
		}
		e.fetcher.FetchArchiveMember(e, rec.Archive, buf)
	case symtab.LazyObjectRecord:
		buf, err := rec.Object.Buffer()
		if err != nil || len(buf) == 0 {
			return
		}
		e.fetcher.FetchLazyObject(e, rec.Object, buf)
	}
}

// Fetcher is the lazy pull-in collaborator of spec.md §4.2: given a
// fetched archive member or lazy object buffer, it parses the buffer
// and re-enters the engine with the symbols that buffer defines. The
// actual object-file parsing is out of scope for this module (spec.md
// §1's "a full toolchain" non-goal); Fetcher is the seam a real parser
// plugs into.
type Fetcher interface {
	FetchArchiveMember(e *Engine, archive symtab.ArchiveFile, member []byte)
	FetchLazyObject(e *Engine, object symtab.LazyObjectFile, buf []byte)
}

// SetFetcher installs the lazy pull-in collaborator. Must be called
// before any AddLazyArchive/AddLazyObject record can be resolved by a
// later AddUndefined.
func (e *Engine) SetFetcher(f Fetcher) { e.fetcher = f }
