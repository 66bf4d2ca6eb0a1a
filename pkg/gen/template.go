package gen

import (
	"strconv"
	"strings"
	"text/template"
)

var builderTemplate = template.Must(template.New("file").Funcs(template.FuncMap{
	"quote": strconv.Quote,
	"join":  strings.Join,
}).Parse(fileTemplate))

const fileTemplate = `
{{- range .Header}}{{if .}}// {{.}}{{else}}//{{end}}
{{end}}{{if .Header}}
{{end}}// Code generated by validgen. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	{{quote .}}
{{- end}}

	"github.com/dmitrymomot/vanilla/pkg/record"
	"github.com/dmitrymomot/vanilla/pkg/validator"
)
{{range .Records}}{{template "record" .}}{{end}}
{{- define "record"}}
// {{.Builder}} collects one validator per field of {{.Draft}} and builds a
// validator producing {{.Target}}.
type {{.Builder}}[E any] struct {
	b *record.Builder[{{.Draft}}, {{.Target}}, E]
}

// New{{.Builder}} returns a builder with no rules set.
func New{{.Builder}}[E any]() *{{.Builder}}[E] {
	b := record.NewBuilder[{{.Draft}}, {{.Target}}, E](
{{- range .Fields}}
		{{quote .Name}},
{{- end}}
	)
{{- range .Fields}}{{if .DependsOn}}
	b.DependsOn({{quote .Name}}{{range .DependsOn}}, {{quote .}}{{end}})
{{- end}}{{end}}
	return &{{.Builder}}[E]{b: b}
}
{{range .Fields}}
// {{.GoName}} sets the rule for {{$.Draft}}.{{.GoName}}{{if .DependsOn}}, which depends on {{join .DependsOn ", "}}{{end}}.
func (vb *{{$.Builder}}[E]) {{.GoName}}(v validator.Validator[{{.Type}}, {{.TargetType}}, E]) *{{$.Builder}}[E] {
	record.Field(vb.b, {{quote .Name}},
		func(d {{$.Draft}}) {{.Type}} { return d.{{.GoName}} },
		func(out *{{$.Target}}, x {{.TargetType}}) { out.{{.Target}} = x },
		v,
	)
	return vb
}
{{end}}
// Missing returns the fields that have no rule yet.
func (vb *{{.Builder}}[E]) Missing() []string {
	return vb.b.Missing()
}

// {{.BuildName}} returns the {{.Draft}} validator. It panics when a rule is missing.
func (vb *{{.Builder}}[E]) {{.BuildName}}({{.Params}}) validator.Validator[{{.Draft}}, {{.Target}}, {{.ErrorType}}] {
	return vb.b.{{.BuildMethod}}({{if .Extra}}func(out *{{.Target}}) {
{{- range .Extra}}
		out.{{.Field}} = {{.Name}}
{{- end}}
	}{{end}})
}
{{end}}`
