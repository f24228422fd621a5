package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkujhd/golink/diag"
	"github.com/pkujhd/golink/objabi/visibility"
	"github.com/pkujhd/golink/symtab"
)

// recordingSink collects every diagnostic reported to it, for tests
// that need to assert on what fired without logrus formatting noise.
type recordingSink struct {
	diags []diag.Diagnostic
}

func (s *recordingSink) Report(d diag.Diagnostic) { s.diags = append(s.diags, d) }

func (s *recordingSink) has(sev diag.Severity) bool {
	for _, d := range s.diags {
		if d.Severity == sev {
			return true
		}
	}
	return false
}

type testFile struct {
	name     string
	priority int
}

func (f testFile) Name() string    { return f.name }
func (f testFile) Priority() int   { return f.priority }
func (f testFile) IsBitcode() bool { return false }

func newEngine() (*Engine, *recordingSink) {
	sink := &recordingSink{}
	return New(Config{}, sink), sink
}

func TestAddRegularFirstInsertion(t *testing.T) {
	e, sink := newEngine()
	env := e.AddRegular(symtab.Name("foo"), ".text", 0, 4, false, false, false, visibility.Default, testFile{name: "a.o"})
	require.NotNil(t, env)
	assert.Equal(t, "regular", env.Slot.Kind().String())
	assert.False(t, sink.has(diag.Fatal))
}

func TestAddRegularStrongDuplicateConflicts(t *testing.T) {
	e, sink := newEngine()
	e.AddRegular(symtab.Name("foo"), ".text", 0, 4, false, false, false, visibility.Default, testFile{name: "a.o"})
	e.AddRegular(symtab.Name("foo"), ".text", 0, 4, false, false, false, visibility.Default, testFile{name: "b.o"})

	assert.True(t, sink.has(diag.Fatal), "expected a duplicate symbol diagnostic")
}

func TestAddRegularWeakLosesToStrong(t *testing.T) {
	e, sink := newEngine()
	e.AddRegular(symtab.Name("foo"), ".text", 0x10, 4, false, false, false, visibility.Default, testFile{name: "a.o"})
	env := e.AddRegular(symtab.Name("foo"), ".text", 0x20, 4, false, true, false, visibility.Default, testFile{name: "b.weak.o"})

	rec := env.Slot.(symtab.RegularRecord)
	assert.Equal(t, uint64(0x10), rec.Value, "strong definition from a.o must win")
	assert.False(t, sink.has(diag.Fatal))
}

func TestAddRegularStrongOverridesPriorWeak(t *testing.T) {
	e, _ := newEngine()
	e.AddRegular(symtab.Name("foo"), ".text", 0x10, 4, false, true, false, visibility.Default, testFile{name: "a.weak.o"})
	env := e.AddRegular(symtab.Name("foo"), ".text", 0x20, 4, false, false, false, visibility.Default, testFile{name: "b.o"})

	rec := env.Slot.(symtab.RegularRecord)
	assert.Equal(t, uint64(0x20), rec.Value, "strong definition must override a prior weak one")
}

func TestAddRegularTwoWeakDuplicatesSilent(t *testing.T) {
	e, sink := newEngine()
	e.AddRegular(symtab.Name("foo"), ".text", 0x10, 4, false, true, false, visibility.Default, testFile{name: "a.o"})
	env := e.AddRegular(symtab.Name("foo"), ".text", 0x20, 4, false, true, false, visibility.Default, testFile{name: "b.o"})

	rec := env.Slot.(symtab.RegularRecord)
	assert.Equal(t, uint64(0x10), rec.Value, "first weak definition wins, silently")
	assert.False(t, sink.has(diag.Fatal))
	assert.False(t, sink.has(diag.Warning))
}

func TestAddUndefinedTriggersNoDiagnosticAndIsSatisfiedByRegular(t *testing.T) {
	e, sink := newEngine()
	e.AddUndefined(symtab.Name("foo"), false, false, testFile{name: "a.o"})
	env := e.AddRegular(symtab.Name("foo"), ".text", 0, 4, false, false, false, visibility.Default, testFile{name: "b.o"})

	assert.Equal(t, "regular", env.Slot.Kind().String())
	assert.False(t, sink.has(diag.Fatal))
}

func TestAddCommonMergesByMaxSize(t *testing.T) {
	e, sink := newEngine()
	e.AddCommon(symtab.Name("buf"), 16, 4, false, false, testFile{name: "a.o"})
	env := e.AddCommon(symtab.Name("buf"), 64, 8, false, false, testFile{name: "b.o"})

	rec := env.Slot.(symtab.CommonRecord)
	assert.Equal(t, uint64(64), rec.Size)
	assert.Equal(t, uint64(8), rec.Alignment)
	assert.False(t, sink.has(diag.Warning), "WarnCommon defaults off")
}

func TestAddRegularStrongOverridesCommonWithWarning(t *testing.T) {
	e, _ := newEngine()
	e.cfg.WarnCommon = true
	e.AddCommon(symtab.Name("buf"), 16, 4, false, false, testFile{name: "a.o"})

	sink := &recordingSink{}
	e.sink = sink
	env := e.AddRegular(symtab.Name("buf"), ".data", 0, 16, false, false, false, visibility.Default, testFile{name: "b.o"})

	assert.Equal(t, "regular", env.Slot.Kind().String())
	assert.True(t, sink.has(diag.Warning), "expected a common-overridden warning")
}

func TestAddSharedDoesNotPreemptRegular(t *testing.T) {
	e, _ := newEngine()
	e.AddRegular(symtab.Name("foo"), ".text", 0, 4, false, false, false, visibility.Default, testFile{name: "a.o"})

	env := e.AddShared(symtab.Name("foo"), nil, false, visibility.Default, fakeSharedFile{name: "libfoo.so"})
	assert.Equal(t, "regular", env.Slot.Kind().String(), "a regular definition must preempt the DSO's copy")
}

func TestAddSharedSatisfiesUndefined(t *testing.T) {
	e, _ := newEngine()
	e.AddUndefined(symtab.Name("foo"), false, false, testFile{name: "a.o"})

	env := e.AddShared(symtab.Name("foo"), nil, false, visibility.Default, fakeSharedFile{name: "libfoo.so"})
	assert.Equal(t, "shared", env.Slot.Kind().String())
	assert.True(t, env.ExportDynamic)
}

func TestWrapRewiresReferences(t *testing.T) {
	e, _ := newEngine()
	e.AddRegular(symtab.Name("malloc"), ".text", 0x100, 4, false, false, false, visibility.Default, testFile{name: "a.o"})
	e.AddRegular(symtab.Name("__wrap_malloc"), ".text", 0x200, 4, false, false, false, visibility.Default, testFile{name: "wrapper.o"})

	require.NoError(t, e.Wrap(symtab.Name("malloc")))

	malloc, _ := e.Index().Lookup(symtab.Name("malloc"))
	real, _ := e.Index().Lookup(symtab.Name("__real_malloc"))

	assert.Equal(t, uint64(0x200), malloc.Slot.(symtab.RegularRecord).Value, "malloc must now resolve to __wrap_malloc's definition")
	assert.Equal(t, uint64(0x100), real.Slot.(symtab.RegularRecord).Value, "__real_malloc must resolve to the original definition")
}

func TestWrapTwiceRejected(t *testing.T) {
	e, _ := newEngine()
	e.AddRegular(symtab.Name("malloc"), ".text", 0, 4, false, false, false, visibility.Default, testFile{name: "a.o"})
	require.NoError(t, e.Wrap(symtab.Name("malloc")))
	assert.Error(t, e.Wrap(symtab.Name("malloc")))
}

func TestDeclareVersionIsIdempotent(t *testing.T) {
	e, _ := newEngine()
	id1 := e.DeclareVersion("VERS_1.0")
	id2 := e.DeclareVersion("VERS_1.0")
	assert.Equal(t, id1, id2)
}

type fakeSharedFile struct{ name string }

func (f fakeSharedFile) Name() string      { return f.name }
func (f fakeSharedFile) Priority() int     { return 0 }
func (f fakeSharedFile) IsBitcode() bool   { return false }
func (f fakeSharedFile) Soname() string    { return f.name }
func (f fakeSharedFile) Undefined() []string { return nil }
