package policy

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pkujhd/golink/objabi/version"
	"github.com/pkujhd/golink/objabi/visibility"
	"github.com/pkujhd/golink/resolve"
	"github.com/pkujhd/golink/symtab"
)

// VersionNode is one "tag { global: pat; local: pat; };" block of a
// version script, spec.md §4.5.
type VersionNode struct {
	Tag    string
	Global []string
	Local  []string
}

// ParseVersionScript hand-parses the traditional linker-script
// version-script grammar: one or more
//
//	TAG {
//	  global: pattern, pattern;
//	  local: pattern;
//	};
//
// blocks. This is not a general linker-script parser (spec.md §1 keeps
// "a full toolchain" out of scope) — just enough of the version-node
// grammar to drive resolve.Engine.DeclareVersion and the
// global/local visibility split of spec.md §4.5.
func ParseVersionScript(r io.Reader) ([]VersionNode, error) {
	toks, err := tokenizeVersionScript(r)
	if err != nil {
		return nil, err
	}

	var nodes []VersionNode
	i := 0
	for i < len(toks) {
		tag := toks[i]
		i++
		if i >= len(toks) || toks[i] != "{" {
			return nil, fmt.Errorf("policy: version script: expected '{' after %q", tag)
		}
		i++
		node := VersionNode{Tag: tag}
		section := ""
		for i < len(toks) && toks[i] != "}" {
			tok := toks[i]
			switch {
			case tok == "global:":
				section = "global"
			case tok == "local:":
				section = "local"
			case tok == ",":
				// separator between patterns on one line; ignore
			default:
				switch section {
				case "global":
					node.Global = append(node.Global, tok)
				case "local":
					node.Local = append(node.Local, tok)
				default:
					return nil, fmt.Errorf("policy: version script: pattern %q outside global:/local:", tok)
				}
			}
			i++
		}
		if i >= len(toks) {
			return nil, fmt.Errorf("policy: version script: unterminated block for %q", tag)
		}
		i++ // consume '}'
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// tokenizeVersionScript splits on whitespace, ';', ',', '{', '}',
// dropping comments ("# ..." to end of line, matching the grammar's
// shell-style comments).
func tokenizeVersionScript(r io.Reader) ([]string, error) {
	var toks []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		var cur strings.Builder
		flush := func() {
			if cur.Len() > 0 {
				toks = append(toks, cur.String())
				cur.Reset()
			}
		}
		for _, r := range line {
			switch r {
			case '{', '}', ';':
				flush()
				toks = append(toks, string(r))
			case ',':
				flush()
				toks = append(toks, ",")
			case ' ', '\t':
				flush()
			default:
				cur.WriteRune(r)
			}
		}
		flush()
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	// Semicolons are statement terminators only; drop them once tokens
	// are split.
	out := toks[:0]
	for _, t := range toks {
		if t == ";" {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// versionScriptDoc is the structured YAML alternative to the
// traditional grammar, for machine-generated version scripts, per
// SPEC_FULL.md's DOMAIN STACK section.
type versionScriptDoc struct {
	Versions []VersionNode `yaml:"versions"`
}

// LoadVersionScriptYAML parses the YAML form of a version script.
func LoadVersionScriptYAML(r io.Reader) ([]VersionNode, error) {
	var doc versionScriptDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	return doc.Versions, nil
}

// ApplyVersionScript declares every node's tag as a version on e and
// applies its global/local pattern lists, per spec.md §4.5: global
// patterns are exported and tagged with the declared version id; local
// patterns are hidden from the dynamic symbol table. Local patterns are
// applied after every node's globals and skip names a global pattern
// matched, so a bare "*" in local: (the common "everything else is
// local" catch-all) does not override explicit global patterns.
func ApplyVersionScript(e *resolve.Engine, idx *symtab.Index, nodes []VersionNode) {
	matchedGlobal := make(map[*symtab.Envelope]bool)
	for _, node := range nodes {
		// An untagged block (spec.md §4.5 scenario 7, "declares no
		// versions but lists globals") is not a script-declared version;
		// its globals get VER_NDX_GLOBAL, never a UserBase id.
		var id version.ID
		if node.Tag == "" {
			id = version.Global
		} else {
			id = e.DeclareVersion(node.Tag)
		}

		for _, pattern := range node.Global {
			for _, env := range idx.Glob(pattern) {
				env.ExportDynamic = true
				env.VersionID = id
				matchedGlobal[env] = true
			}
		}
	}
	for _, node := range nodes {
		for _, pattern := range node.Local {
			for _, env := range idx.Glob(pattern) {
				if matchedGlobal[env] {
					continue
				}
				env.Visibility = visibility.Merge(env.Visibility, visibility.Hidden)
			}
		}
	}
}
