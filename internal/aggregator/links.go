package aggregator

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

var scriptImportPattern = regexp.MustCompile(`(?m)^\s*import\s+(?:[^'"\n]*?\s*from\s*)?['"]([^'"\n]+)['"]`)

// StyleLinks returns the paths imported by the master stylesheet, in order.
func (p *Patcher) StyleLinks() ([]string, error) {
	path, err := p.StylePath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return parseStyleImports(data), nil
}

// ScriptLinks returns the module specifiers imported by the master script.
func (p *Patcher) ScriptLinks() ([]string, error) {
	path, err := p.ScriptPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return parseScriptImports(data), nil
}

// parseStyleImports lexes a stylesheet and collects the targets of @import
// rules, both quoted and url() forms.
func parseStyleImports(data []byte) []string {
	lexer := css.NewLexer(parse.NewInput(bytes.NewReader(data)))

	var imports []string
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			break
		}
		if tt != css.AtKeywordToken || !strings.EqualFold(string(text), "@import") {
			continue
		}
		if target, ok := nextImportTarget(lexer); ok {
			imports = append(imports, target)
		}
	}
	return imports
}

func nextImportTarget(lexer *css.Lexer) (string, bool) {
	for {
		tt, text := lexer.Next()
		switch tt {
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.StringToken:
			return unquote(string(text)), true
		case css.URLToken:
			return unquote(strings.TrimSuffix(strings.TrimPrefix(string(text), "url("), ")")), true
		default:
			return "", false
		}
	}
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func parseScriptImports(data []byte) []string {
	var imports []string
	for _, m := range scriptImportPattern.FindAllSubmatch(data, -1) {
		imports = append(imports, string(m[1]))
	}
	return imports
}
