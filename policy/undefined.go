package policy

import (
	"github.com/pkujhd/golink/resolve"
	"github.com/pkujhd/golink/symtab"
)

// cliFile is the symtab.File identity attributed to references the
// driver itself introduces (--undefined, --defsym-style forcing)
// rather than any real input file, so diagnostics still have a name to
// print.
type cliFile struct{ label string }

func (f cliFile) Name() string    { return f.label }
func (f cliFile) Priority() int   { return -1 }
func (f cliFile) IsBitcode() bool { return false }

// ApplyUndefined implements --undefined=name (spec.md §4.6): each name
// is given a forced strong reference, which is enough on its own to
// trigger lazy pull-in for any archive member defining it, exactly as
// an ordinary reference from an object file would.
func ApplyUndefined(e *resolve.Engine, names []string) {
	f := cliFile{label: "--undefined"}
	for _, name := range names {
		e.AddUndefined(symtab.Name(name), false, false, f)
	}
}
