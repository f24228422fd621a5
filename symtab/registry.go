package symtab

// Registry owns every accepted input file for the duration of the
// link (spec.md §3 "File records"). It is the only place sonames are
// tracked, which is what makes DSO uniquification possible: "at most
// one shared file per soname is retained" (spec.md §3 invariant),
// grounded on SymbolTable.cpp::addFile's
// "SoNames.insert(F->getSoName()).second" check.
type Registry struct {
	Archives     []ArchiveFile
	LazyObjects  []LazyObjectFile
	Shared       []SharedFile
	Objects      []ObjectFile
	Bitcode      []BitcodeFile
	sonamesAdded map[string]bool
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sonamesAdded: make(map[string]bool)}
}

func (r *Registry) AddArchive(f ArchiveFile) { r.Archives = append(r.Archives, f) }

func (r *Registry) AddLazyObject(f LazyObjectFile) { r.LazyObjects = append(r.LazyObjects, f) }

func (r *Registry) AddObject(f ObjectFile) { r.Objects = append(r.Objects, f) }

func (r *Registry) AddBitcode(f BitcodeFile) { r.Bitcode = append(r.Bitcode, f) }

// AddShared admits a shared file, uniquified by soname. It reports
// false (and does not retain the file for symbol contribution) when
// the soname has already been seen.
func (r *Registry) AddShared(f SharedFile) (accepted bool) {
	soname := f.Soname()
	if r.sonamesAdded[soname] {
		return false
	}
	r.sonamesAdded[soname] = true
	r.Shared = append(r.Shared, f)
	return true
}
