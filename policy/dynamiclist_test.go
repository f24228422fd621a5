package policy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkujhd/golink/symtab"
)

func TestLoadDynamicList(t *testing.T) {
	doc := "patterns:\n  - foo\n  - \"bar_*\"\n"
	patterns, err := LoadDynamicList(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, []string{"foo", "bar_*"}, patterns)
}

func TestApplyDynamicListMarksExportDynamic(t *testing.T) {
	idx := symtab.NewIndex()
	env, _ := idx.GetOrCreate(symtab.Name("bar_thing"))
	env.Slot = symtab.RegularRecord{}
	other, _ := idx.GetOrCreate(symtab.Name("unrelated"))
	other.Slot = symtab.RegularRecord{}

	ApplyDynamicList(idx, []string{"bar_*"})

	require.True(t, env.ExportDynamic)
	require.False(t, other.ExportDynamic)
}
