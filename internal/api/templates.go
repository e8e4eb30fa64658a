package api

import (
	"embed"
	"html/template"
	"strconv"
)

//go:embed templates/*
var templateFS embed.FS

// newTemplates creates and parses the HTML templates with custom functions.
func newTemplates() *template.Template {
	funcs := template.FuncMap{
		"pct": func(n int) template.CSS {
			return template.CSS(strconv.Itoa(n) + "%")
		},
		"ms": func(n int) template.CSS {
			return template.CSS(strconv.Itoa(n) + "ms")
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
