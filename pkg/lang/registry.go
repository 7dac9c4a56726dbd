package lang

import (
	"fmt"
	"sync"
)

// builders maps each language to its table constructor. The map itself is
// never written after package init.
var builders = map[Language]func() *Table{
	C:          tableC,
	CPP:        tableCPP,
	CSharp:     tableCSharp,
	Go:         tableGo,
	Java:       tableJava,
	JavaScript: tableJavaScript,
	Python:     tablePython,
	Ruby:       tableRuby,
	Rust:       tableRust,
	TSX:        tableTSX,
	TypeScript: tableTypeScript,
}

var (
	tablesMu sync.RWMutex
	tables   = make(map[Language]*Table, len(builders))
)

// TableFor returns the classification table for a language, building it on
// first use. Construction is guarded so concurrent first lookups build the
// table exactly once; every later lookup is a read-only map hit.
func TableFor(l Language) (*Table, error) {
	tablesMu.RLock()
	t, ok := tables[l]
	tablesMu.RUnlock()
	if ok {
		return t, nil
	}

	build, ok := builders[l]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, l)
	}

	tablesMu.Lock()
	defer tablesMu.Unlock()
	if t, ok := tables[l]; ok {
		return t, nil
	}
	t = build()
	t.Lang = l
	tables[l] = t
	return t, nil
}

// Supported reports whether a classification table exists for the language.
func Supported(l Language) bool {
	_, ok := builders[l]
	return ok
}
