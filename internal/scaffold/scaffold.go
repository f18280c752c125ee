package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// PageLayout is the shared layout a page extends, relative to the page directory.
const PageLayout = "../../template.pug"

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// MarkupData holds the variables available to markup templates.
type MarkupData struct {
	Name   string
	Layout string
}

// RenderMarkup returns the markup for an element. It is a pure function of
// name and isPage.
func RenderMarkup(name string, isPage bool) (string, error) {
	tmplName := "component.pug.tmpl"
	if isPage {
		tmplName = "page.pug.tmpl"
	}
	return renderTemplate(tmplName, MarkupData{Name: name, Layout: PageLayout})
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
