package analyzer

import (
	"sort"

	"github.com/stratametrics/strata/pkg/node"
)

// Preproc lists what the C/C++ preprocessor layer of a translation unit
// declares and pulls in. Macro knowledge can be fed back into later calls
// through Options.Preproc when analyzing headers out of order.
type Preproc struct {
	Includes []string `json:"includes,omitempty" toon:"includes,omitempty"`
	Macros   []string `json:"macros,omitempty" toon:"macros,omitempty"`
}

// extractPreproc scans the parse tree for include directives and macro
// definitions. seed, when non-nil, contributes macros known from other
// units; the result is sorted and de-duplicated.
func extractPreproc(root node.Node, source []byte, seed *Preproc) *Preproc {
	includes := map[string]struct{}{}
	macros := map[string]struct{}{}
	if seed != nil {
		for _, m := range seed.Macros {
			macros[m] = struct{}{}
		}
	}

	var scan func(n node.Node)
	scan = func(n node.Node) {
		if !n.Valid() {
			return
		}
		switch n.Kind() {
		case "preproc_include":
			if path := n.ChildByField("path"); path.Valid() {
				includes[trimIncludePath(path.Text(source))] = struct{}{}
			}
		case "preproc_def", "preproc_function_def":
			if name := n.ChildByField("name"); name.Valid() {
				macros[name.Text(source)] = struct{}{}
			}
		}
		for i := 0; i < n.ChildCount(); i++ {
			scan(n.Child(i))
		}
	}
	scan(root)

	return &Preproc{
		Includes: sortedKeys(includes),
		Macros:   sortedKeys(macros),
	}
}

// trimIncludePath strips the quoting from `"x.h"` and `<x.h>` forms.
func trimIncludePath(s string) string {
	if len(s) >= 2 {
		switch {
		case s[0] == '"' && s[len(s)-1] == '"',
			s[0] == '<' && s[len(s)-1] == '>':
			return s[1 : len(s)-1]
		}
	}
	return s
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
