//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir      string // VITEPUG_HOME, user settings
	WorkDir      string // where projects are created
	TemplateRepo string // file:// URL of a local template repository
}

// setupTestEnv creates isolated temp directories and a local template
// repository. Tests are skipped when git is not installed.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}
	t.Setenv("VITEPUG_HOME", env.HomeDir)

	repo := setupTemplateRepo(t)
	env.TemplateRepo = "file://" + filepath.ToSlash(repo)
	return env
}

// setupTemplateRepo commits a minimal project template into a new git
// repository and returns its path.
func setupTemplateRepo(t *testing.T) string {
	t.Helper()

	repo := t.TempDir()
	files := map[string]string{
		"package.json":            `{"name":"template","private":true}`,
		"src/template.pug":        "doctype html\nhtml\n\thead\n\t\tblock title\n\tbody\n\t\tblock content\n",
		"src/components/.gitkeep": "",
		"src/pages/index.js":      "",
		"src/pages/index.pug":     "extends ../template.pug\n",
		"src/pages/pages.json":    "[]",
		"src/utils/main.scss":     "body { margin: 0; }\n",
		"src/utils/main.js":       "",
	}
	for path, content := range files {
		writeFile(t, filepath.Join(repo, path), content)
	}

	git(t, repo, "init", "-q")
	git(t, repo, "add", ".")
	git(t, repo, "-c", "user.name=test", "-c", "user.email=test@example.com", "commit", "-q", "-m", "template")
	return repo
}

// git runs a git command in dir and fails the test on error.
func git(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
	}
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
