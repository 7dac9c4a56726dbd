// Package lang defines the supported languages and their classification
// tables. A classification table maps a grammar's concrete node kinds to the
// small semantic vocabulary the metric collectors understand, so everything
// language-specific stays confined to this package.
package lang

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/ruby"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Language identifies a supported programming language.
type Language string

const (
	C          Language = "c"
	CPP        Language = "cpp"
	CSharp     Language = "csharp"
	Go         Language = "go"
	Java       Language = "java"
	JavaScript Language = "javascript"
	Python     Language = "python"
	Ruby       Language = "ruby"
	Rust       Language = "rust"
	TSX        Language = "tsx"
	TypeScript Language = "typescript"
	Unknown    Language = "unknown"
)

// ErrUnsupported is returned when a language has no classification table.
var ErrUnsupported = errors.New("unsupported language")

// All returns every supported language in stable order.
func All() []Language {
	return []Language{C, CPP, CSharp, Go, Java, JavaScript, Python, Ruby, Rust, TSX, TypeScript}
}

// FromString maps a case-insensitive language name to a Language.
// Both canonical names ("cpp") and common aliases ("c++", "golang") match.
func FromString(s string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c":
		return C, true
	case "cpp", "c++", "cxx":
		return CPP, true
	case "csharp", "c#", "cs":
		return CSharp, true
	case "go", "golang":
		return Go, true
	case "java":
		return Java, true
	case "javascript", "js":
		return JavaScript, true
	case "python", "py":
		return Python, true
	case "ruby", "rb":
		return Ruby, true
	case "rust", "rs":
		return Rust, true
	case "tsx":
		return TSX, true
	case "typescript", "ts":
		return TypeScript, true
	}
	return Unknown, false
}

// Detect determines the language from a file path by extension.
func Detect(path string) Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".c", ".h":
		return C
	case ".cpp", ".cc", ".cxx", ".hpp", ".hxx", ".hh":
		return CPP
	case ".cs":
		return CSharp
	case ".go":
		return Go
	case ".java":
		return Java
	case ".js", ".mjs", ".cjs":
		return JavaScript
	case ".py", ".pyw", ".pyi":
		return Python
	case ".rb":
		return Ruby
	case ".rs":
		return Rust
	case ".tsx", ".jsx":
		return TSX
	case ".ts":
		return TypeScript
	default:
		return Unknown
	}
}

// Grammar returns the tree-sitter grammar for a language.
func Grammar(l Language) (*sitter.Language, error) {
	switch l {
	case C:
		return c.GetLanguage(), nil
	case CPP:
		return cpp.GetLanguage(), nil
	case CSharp:
		return csharp.GetLanguage(), nil
	case Go:
		return golang.GetLanguage(), nil
	case Java:
		return java.GetLanguage(), nil
	case JavaScript:
		return javascript.GetLanguage(), nil
	case Python:
		return python.GetLanguage(), nil
	case Ruby:
		return ruby.GetLanguage(), nil
	case Rust:
		return rust.GetLanguage(), nil
	case TSX:
		return tsx.GetLanguage(), nil
	case TypeScript:
		return typescript.GetLanguage(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, l)
	}
}
