package bootstrap

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// PagesConfigFile is read by the pages plugin of the project template.
const PagesConfigFile = "pagesconfig.json"

// indexPageFiles are the template's generated index page, removed when the
// index page is disabled.
var indexPageFiles = []string{"index.js", "index.pug", "pages.json"}

type pagesConfig struct {
	EnableIndexPage bool `json:"enableIndexPage"`
}

// ConfigurePages writes pagesconfig.json into the project and, when the index
// page is disabled, removes the template's index page files.
func ConfigurePages(projectDir string, enableIndexPage bool) error {
	if !enableIndexPage {
		pagesDir := filepath.Join(projectDir, "src", "pages")
		for _, name := range indexPageFiles {
			err := os.Remove(filepath.Join(pagesDir, name))
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("removing index page file %s: %w", name, err)
			}
		}
	}

	data, err := json.Marshal(pagesConfig{EnableIndexPage: enableIndexPage})
	if err != nil {
		return fmt.Errorf("marshaling pages config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(projectDir, PagesConfigFile), data, 0644); err != nil {
		return fmt.Errorf("failed to configure pages plugin: %w", err)
	}
	return nil
}
