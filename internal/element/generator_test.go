package element

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitepug/vitepug/internal/prompt"
	"github.com/vitepug/vitepug/internal/ui"
)

type fixture struct {
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

// newProject creates a project tree matching the default layout.
func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"node_modules", "src/components", "src/pages", "src/utils"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0755))
	}
	writeFile(t, filepath.Join(root, "src/utils/main.scss"), "body{}")
	writeFile(t, filepath.Join(root, "src/utils/main.js"), "")
	return root
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func newGenerator(input string) (*Generator, *fixture) {
	f := &fixture{out: &bytes.Buffer{}, errOut: &bytes.Buffer{}}
	g := &Generator{
		Prompter: prompt.NewLinePrompter(strings.NewReader(input), f.out),
		Console:  ui.New(f.out, f.errOut),
	}
	return g, f
}

func TestGenerateComponentWithAllFiles(t *testing.T) {
	root := newProject(t)
	g, f := newGenerator("")

	result, err := g.Generate(context.Background(), Spec{
		Kind:     Component,
		Name:     "Foo",
		StartDir: filepath.Join(root, "src"),
		Options:  &Options{Style: true, StyleFormat: SCSS, Script: true},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Issues)

	dir := filepath.Join(root, "src/components/Foo")
	assert.Equal(t, dir, result.Dir)
	assert.Equal(t, []string{"index.js", "index.pug", "style.scss"}, listDir(t, dir))
	assert.Equal(t, "h1 Foo\n", readFile(t, filepath.Join(dir, "index.pug")))
	assert.Empty(t, readFile(t, filepath.Join(dir, "style.scss")))

	assert.Equal(t, "body{}\n@import '../components/Foo/style.scss';\n", readFile(t, filepath.Join(root, "src/utils/main.scss")))
	assert.Equal(t, "\nimport * from '@components/Foo/index.js';\n", readFile(t, filepath.Join(root, "src/utils/main.js")))
	assert.Len(t, result.Linked, 2)
	assert.Contains(t, f.out.String(), "Successfully created Foo component.")
}

func TestGenerateComponentMarkupOnly(t *testing.T) {
	root := newProject(t)
	g, _ := newGenerator("")

	_, err := g.Generate(context.Background(), Spec{
		Kind:     Component,
		Name:     "Bare",
		StartDir: root,
		Options:  &Options{},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"index.pug"}, listDir(t, filepath.Join(root, "src/components/Bare")))
	assert.Equal(t, "body{}", readFile(t, filepath.Join(root, "src/utils/main.scss")), "aggregators untouched")
}

func TestGeneratePageInteractively(t *testing.T) {
	root := newProject(t)
	// name, options (styles + js), style format (sass)
	g, f := newGenerator("About\n1,2\n2\n")

	result, err := g.Generate(context.Background(), Spec{Kind: Page, StartDir: root})
	require.NoError(t, err)

	assert.Equal(t, Request{Kind: Page, Name: "About", CreateStyle: true, StyleFormat: SASS, CreateScript: true}, result.Request)

	dir := filepath.Join(root, "src/pages/About")
	assert.Equal(t, []string{"index.js", "index.pug", "style.sass"}, listDir(t, dir))
	markup := readFile(t, filepath.Join(dir, "index.pug"))
	assert.Contains(t, markup, "extends ../../template.pug")
	assert.Contains(t, markup, "block title")
	assert.Contains(t, markup, "block content")
	assert.Contains(t, markup, "About")

	assert.Contains(t, readFile(t, filepath.Join(root, "src/utils/main.scss")), "@import '../pages/About/style.sass';")
	assert.Contains(t, readFile(t, filepath.Join(root, "src/utils/main.js")), "import * from '@pages/About/index.js';")
	assert.Contains(t, f.out.String(), "Choose page options")
	assert.Contains(t, f.out.String(), "Successfully created About page.")
}

func TestGenerateNoOptionsSelected(t *testing.T) {
	root := newProject(t)
	g, _ := newGenerator("Card\n\n")

	result, err := g.Generate(context.Background(), Spec{Kind: Component, StartDir: root})
	require.NoError(t, err)
	assert.False(t, result.Request.CreateStyle)
	assert.False(t, result.Request.CreateScript)
	assert.Equal(t, []string{"index.pug"}, result.Files)
}

func TestGenerateExistingDirectoryAborts(t *testing.T) {
	root := newProject(t)
	dir := filepath.Join(root, "src/components/Foo")
	require.NoError(t, os.Mkdir(dir, 0755))
	writeFile(t, filepath.Join(dir, "index.pug"), "keep me")

	g, f := newGenerator("")
	_, err := g.Generate(context.Background(), Spec{
		Kind:     Component,
		Name:     "Foo",
		StartDir: root,
		Options:  &Options{Style: true, Script: true},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTargetExists)

	assert.Equal(t, "keep me", readFile(t, filepath.Join(dir, "index.pug")))
	assert.Equal(t, []string{"index.pug"}, listDir(t, dir))
	assert.Equal(t, "body{}", readFile(t, filepath.Join(root, "src/utils/main.scss")))
	assert.NotContains(t, f.out.String(), "Successfully")
}

func TestGenerateRootNotFound(t *testing.T) {
	g, _ := newGenerator("")
	g.Marker = "vitepug-missing-marker"

	_, err := g.Generate(context.Background(), Spec{Kind: Component, Name: "Foo", StartDir: t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not find project root")
}

func TestGenerateUnsupportedArchitectureDeclined(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "node_modules"), 0755))

	g, f := newGenerator("n\n")
	_, err := g.Generate(context.Background(), Spec{Kind: Component, Name: "Foo", StartDir: root})
	assert.ErrorIs(t, err, ErrArchitectureDeclined)
	assert.Contains(t, f.errOut.String(), "does not exist")

	_, statErr := os.Stat(filepath.Join(root, "src"))
	assert.True(t, os.IsNotExist(statErr), "nothing is created when declined")
}

func TestGenerateUnsupportedArchitectureConfirmed(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "node_modules"), 0755))

	g, f := newGenerator("y\n")
	result, err := g.Generate(context.Background(), Spec{
		Kind:     Component,
		Name:     "Foo",
		StartDir: root,
		Options:  &Options{Style: true, StyleFormat: CSS, Script: true},
	})
	require.NoError(t, err)

	// Files are still written; both links fail because there are no aggregators.
	assert.Equal(t, []string{"index.js", "index.pug", "style.css"}, listDir(t, result.Dir))
	require.Len(t, result.Issues, 2)
	assert.Equal(t, "style-link", result.Issues[0].Step)
	assert.Equal(t, "script-link", result.Issues[1].Step)
	assert.Contains(t, f.errOut.String(), "Failed to link styles for your component Foo")
	assert.Contains(t, f.errOut.String(), "Failed to link js for your component Foo")
	assert.Contains(t, f.out.String(), "Successfully created Foo component.")
}

func TestGenerateAssumeYesSkipsConfirmation(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "node_modules"), 0755))

	g, _ := newGenerator("")
	g.AssumeYes = true
	_, err := g.Generate(context.Background(), Spec{Kind: Page, Name: "Home", StartDir: root, Options: &Options{}})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "src/pages/Home/index.pug"))
}

func TestGenerateMissingStyleAggregatorIsNonFatal(t *testing.T) {
	root := newProject(t)
	require.NoError(t, os.Remove(filepath.Join(root, "src/utils/main.scss")))

	g, _ := newGenerator("")
	result, err := g.Generate(context.Background(), Spec{
		Kind:     Component,
		Name:     "Foo",
		StartDir: root,
		Options:  &Options{Style: true, Script: true},
	})
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, "style-link", result.Issues[0].Step)
	assert.NoFileExists(t, filepath.Join(root, "src/utils/main.scss"))
	assert.Contains(t, readFile(t, filepath.Join(root, "src/utils/main.js")), "@components/Foo/index.js")
	assert.Equal(t, SCSS, result.Request.StyleFormat, "format falls back to the default")
}

func TestGenerateUnwritableScriptAggregatorIsNonFatal(t *testing.T) {
	if _, err := os.Stat("/proc/version"); err != nil {
		t.Skip("/proc/version not available")
	}
	root := newProject(t)
	mainJS := filepath.Join(root, "src/utils/main.js")
	require.NoError(t, os.Remove(mainJS))
	require.NoError(t, os.Symlink("/proc/version", mainJS))

	g, f := newGenerator("")
	result, err := g.Generate(context.Background(), Spec{
		Kind:     Component,
		Name:     "Foo",
		StartDir: root,
		Options:  &Options{Script: true},
	})
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, "script-link", result.Issues[0].Step)
	assert.Equal(t, mainJS, result.Issues[0].File)
	assert.Empty(t, result.Linked)
	assert.FileExists(t, filepath.Join(root, "src/components/Foo/index.js"))
	assert.Contains(t, f.errOut.String(), "Failed to link js for your component Foo")
	assert.Contains(t, f.out.String(), "Successfully created Foo component.")
}

func TestGenerateFailedStyleWriteSkipsLink(t *testing.T) {
	root := newProject(t)
	// The markup file takes the stylesheet's name, so the stylesheet cannot
	// be created.
	writeFile(t, filepath.Join(root, ".vitepug.yaml"), "markup: style.scss\n")

	g, f := newGenerator("")
	result, err := g.Generate(context.Background(), Spec{
		Kind:     Component,
		Name:     "Foo",
		StartDir: root,
		Options:  &Options{Style: true, StyleFormat: SCSS, Script: true},
	})
	require.NoError(t, err)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, "style", result.Issues[0].Step)
	assert.ErrorIs(t, result.Issues[0], os.ErrExist)
	assert.Equal(t, "h1 Foo\n", readFile(t, filepath.Join(root, "src/components/Foo/style.scss")), "markup is not overwritten")
	assert.Equal(t, "body{}", readFile(t, filepath.Join(root, "src/utils/main.scss")), "style link is skipped")
	assert.Contains(t, readFile(t, filepath.Join(root, "src/utils/main.js")), "@components/Foo/index.js")
	assert.Contains(t, f.errOut.String(), "Failed to create style.scss for component Foo")
	assert.Contains(t, f.out.String(), "Successfully created Foo component.")
}

func TestGenerateNestedUtilsLinksResolve(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"node_modules", "src/components", "src/assets/utils"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0755))
	}
	writeFile(t, filepath.Join(root, ".vitepug.yaml"), "utils: assets/utils\n")
	utils := filepath.Join(root, "src/assets/utils")
	writeFile(t, filepath.Join(utils, "main.scss"), "")

	g, _ := newGenerator("")
	_, err := g.Generate(context.Background(), Spec{
		Kind:     Component,
		Name:     "Foo",
		StartDir: root,
		Options:  &Options{Style: true, StyleFormat: SCSS},
	})
	require.NoError(t, err)

	assert.Equal(t, "\n@import '../../components/Foo/style.scss';\n", readFile(t, filepath.Join(utils, "main.scss")))
	assert.FileExists(t, filepath.Join(utils, "../../components/Foo/style.scss"))
}

func TestGenerateUsesProjectLayout(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"node_modules", "app/blocks", "app/shared"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0755))
	}
	writeFile(t, filepath.Join(root, ".vitepug.yaml"), "src: app\ncomponents: blocks\nutils: shared\naggregators:\n  style: [index.scss]\n")
	writeFile(t, filepath.Join(root, "app/shared/index.scss"), "")

	g, _ := newGenerator("")
	result, err := g.Generate(context.Background(), Spec{
		Kind:     Component,
		Name:     "Nav",
		StartDir: root,
		Options:  &Options{Style: true},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Issues)
	assert.Equal(t, filepath.Join(root, "app/blocks/Nav"), result.Dir)
	assert.Contains(t, readFile(t, filepath.Join(root, "app/shared/index.scss")), "@import '../blocks/Nav/style.scss';")
}

func TestGenerateCancelledPromptIsFatal(t *testing.T) {
	root := newProject(t)
	g, _ := newGenerator("Foo\n")

	_, err := g.Generate(context.Background(), Spec{Kind: Component, StartDir: root})
	assert.ErrorIs(t, err, prompt.ErrCancelled)
}

func TestGenerateCancelledContext(t *testing.T) {
	root := newProject(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g, _ := newGenerator("")
	_, err := g.Generate(ctx, Spec{Kind: Component, Name: "Foo", StartDir: root, Options: &Options{}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoDirExists(t, filepath.Join(root, "src/components/Foo"))
}
