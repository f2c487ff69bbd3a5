package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"h2f/config"
	"h2f/design"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	Title      string
	SourceFile string
	Framework  string
	Nodes      int
	Date       string
}

func expandTemplate(name config.TemplateFieldName, field, title string, root *design.Node, src string) (string, error) {
	funcMap := sprig.FuncMap()

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		Title:      title,
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Framework:  root.Framework.String(),
		Nodes:      root.Count(),
		Date:       time.Now().Format("2006-01-02"),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
