package policy

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/pkujhd/golink/symtab"
)

// dynamicListDoc is the YAML shape LoadDynamicList accepts: a flat
// sequence of name patterns, each matched the same way symtab.Index.Glob
// matches --dynamic-symbol patterns.
//
//	patterns:
//	  - foo
//	  - "bar_*"
type dynamicListDoc struct {
	Patterns []string `yaml:"patterns"`
}

// LoadDynamicList parses a --dynamic-list file in the YAML form
// SPEC_FULL.md's DOMAIN STACK section adds alongside the traditional
// "{ foo; bar_*; };" linker-script form. This package has no parser for
// that linker-script form of a dynamic list; ApplyDynamicList takes the
// pattern list directly.
func LoadDynamicList(r io.Reader) ([]string, error) {
	var doc dynamicListDoc
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	return doc.Patterns, nil
}

// ApplyDynamicList marks every envelope matching any of patterns as
// export-dynamic, per spec.md §4.6's "--dynamic-list" pass. Patterns
// are matched with symtab.Index.Glob, so both exact names and
// '*'/'?'/'[...]' wildcards work.
func ApplyDynamicList(idx *symtab.Index, patterns []string) {
	for _, pattern := range patterns {
		for _, env := range idx.Glob(pattern) {
			env.ExportDynamic = true
		}
	}
}
