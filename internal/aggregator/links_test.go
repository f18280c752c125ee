package aggregator

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyleImports(t *testing.T) {
	src := `@import 'base/reset';
body { color: red; }
/* @import 'commented-out'; */
@import "../components/Foo/style.scss";
@IMPORT url(../pages/About/style.css);
@media screen { .a { margin: 0 } }
`
	got := parseStyleImports([]byte(src))
	assert.Equal(t, []string{
		"base/reset",
		"../components/Foo/style.scss",
		"../pages/About/style.css",
	}, got)
}

func TestParseStyleImportsEmpty(t *testing.T) {
	assert.Empty(t, parseStyleImports(nil))
	assert.Empty(t, parseStyleImports([]byte("body{}")))
}

func TestParseScriptImports(t *testing.T) {
	src := `import './base.js';
import * from '@components/Foo/index.js';
import { a, b } from "@pages/About/index.js";
const x = 'import nothing';
`
	got := parseScriptImports([]byte(src))
	assert.Equal(t, []string{
		"./base.js",
		"@components/Foo/index.js",
		"@pages/About/index.js",
	}, got)
}

func TestStyleAndScriptLinksRoundTrip(t *testing.T) {
	p := newPatcher(t)
	write(t, filepath.Join(p.UtilsDir, "main.scss"), "body{}")
	write(t, filepath.Join(p.UtilsDir, "main.js"), "")

	card := elementDir(p, "components", "Card")
	_, err := p.LinkStyle(card, "scss")
	require.NoError(t, err)
	_, err = p.LinkScript("components", "Card")
	require.NoError(t, err)

	styles, err := p.StyleLinks()
	require.NoError(t, err)
	assert.Equal(t, []string{StyleImportPath(p.UtilsDir, card, "scss")}, styles)

	scripts, err := p.ScriptLinks()
	require.NoError(t, err)
	assert.Equal(t, []string{ScriptImportPath("components", "Card")}, scripts)
}
