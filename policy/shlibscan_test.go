package policy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkujhd/golink/diag"
	"github.com/pkujhd/golink/objabi/visibility"
	"github.com/pkujhd/golink/resolve"
	"github.com/pkujhd/golink/symtab"
)

type fakeSharedForScan struct {
	name      string
	undefined []string
}

func (f fakeSharedForScan) Name() string       { return f.name }
func (f fakeSharedForScan) Priority() int      { return 0 }
func (f fakeSharedForScan) IsBitcode() bool    { return false }
func (f fakeSharedForScan) Soname() string     { return f.name }
func (f fakeSharedForScan) Undefined() []string { return f.undefined }

type collectingSink struct {
	diags []diag.Diagnostic
}

func (s *collectingSink) Report(d diag.Diagnostic) { s.diags = append(s.diags, d) }

func TestScanSharedUndefinedReportsMissingSymbol(t *testing.T) {
	sink := &collectingSink{}
	e := resolve.New(resolve.Config{}, sink)

	shared := fakeSharedForScan{name: "libfoo.so", undefined: []string{"missing_fn"}}
	accepted := e.Registry().AddShared(shared)
	require.True(t, accepted)

	ScanSharedUndefined(e, sink, false)

	require.NotEmpty(t, sink.diags)
	require.Equal(t, diag.Fatal, sink.diags[len(sink.diags)-1].Severity)
}

func TestScanSharedUndefinedSatisfiedByRegular(t *testing.T) {
	sink := &collectingSink{}
	e := resolve.New(resolve.Config{}, sink)

	e.AddRegular(symtab.Name("present_fn"), ".text", 0, 4, false, false, false, visibility.Default, testFileForScan{name: "a.o"})
	shared := fakeSharedForScan{name: "libfoo.so", undefined: []string{"present_fn"}}
	e.Registry().AddShared(shared)

	ScanSharedUndefined(e, sink, false)

	require.Empty(t, sink.diags)
}

type testFileForScan struct{ name string }

func (f testFileForScan) Name() string    { return f.name }
func (f testFileForScan) Priority() int   { return 0 }
func (f testFileForScan) IsBitcode() bool { return false }
