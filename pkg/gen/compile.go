package gen

import (
	"errors"
	"fmt"
	"go/token"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/vanilla/pkg/record"
	"github.com/dmitrymomot/vanilla/pkg/result"
	"github.com/dmitrymomot/vanilla/pkg/rules"
	"github.com/dmitrymomot/vanilla/pkg/validator"
)

type issue = rules.ValidationError

// file is the validated form of a Definition fed to the template.
type file struct {
	Header  []string
	Package string
	Imports []string
	Records []recordModel
}

type recordModel struct {
	Draft  string
	Target string
	Style  ErrorStyle
	Fields []fieldModel
	Extra  []extraModel
}

type fieldModel struct {
	Name       string
	GoName     string
	Type       string
	Target     string
	TargetType string
	DependsOn  []string
}

type extraModel struct {
	Name  string
	Field string
	Type  string
}

func (r recordModel) Builder() string { return r.Draft + "ValidatorBuilder" }

func (r recordModel) BuildName() string {
	if len(r.Extra) > 0 {
		return "BuildWith"
	}
	return "Build"
}

func (r recordModel) BuildMethod() string {
	if r.Style == StyleFields {
		return "BuildFieldErrors"
	}
	return "Build"
}

func (r recordModel) ErrorType() string {
	if r.Style == StyleFields {
		return "record.FieldErrors[E]"
	}
	return "E"
}

func (r recordModel) Params() string {
	params := make([]string, len(r.Extra))
	for i, x := range r.Extra {
		params[i] = x.Name + " " + x.Type
	}
	return strings.Join(params, ", ")
}

var (
	// Methods every generated builder declares.
	reservedMethods = []string{"Missing", "Build", "BuildWith"}
	// Identifiers used inside generated method bodies.
	reservedParams = []string{"vb", "out"}
)

// Validate checks a definition and returns an error wrapping
// ErrInvalidDefinition and rules.ValidationErrors listing every problem.
func Validate(def Definition) error {
	_, err := compile(def)
	return err
}

func compile(def Definition) (file, error) {
	r := definitionRules().Validate(def)
	f, ok := r.Value()
	if !ok {
		return file{}, errors.Join(ErrInvalidDefinition, rules.AsError(r))
	}
	return f, nil
}

var definitionRules = sync.OnceValue(func() validator.Validator[Definition, file, issue] {
	b := record.NewBuilder[Definition, file, issue]("package", "imports", "records")
	record.Field(b, "package",
		func(d Definition) string { return d.Package },
		func(f *file, pkg string) { f.Package = pkg },
		identifier("package"),
	)
	record.Field(b, "imports",
		func(d Definition) []string { return d.Imports },
		func(f *file, imports []string) { f.Imports = imports },
		validator.EachElement(importPath("imports")),
	)
	record.Field(b, "records",
		func(d Definition) []RecordDef { return d.Records },
		func(f *file, records []recordModel) { f.Records = records },
		validator.Then(
			validator.Compose(rules.RequiredSlice[RecordDef]("records")),
			indexed("records", recordRules()),
		).AndThen(validator.Func[[]recordModel, []recordModel, issue](checkRecordSet)).Build(),
	)
	return b.Build()
})

func recordRules() validator.Validator[RecordDef, recordModel, issue] {
	b := record.NewBuilder[RecordDef, recordModel, issue]("draft", "target", "errors", "fields", "extra")
	record.Field(b, "draft",
		func(d RecordDef) string { return d.Draft },
		func(m *recordModel, name string) { m.Draft = name },
		typeName("draft"),
	)
	record.Field(b, "target",
		func(d RecordDef) string { return d.Target },
		func(m *recordModel, name string) { m.Target = name },
		typeName("target"),
	)
	style := rules.OneOf("errors", StyleFlat, StyleFields)
	record.Field(b, "errors",
		func(d RecordDef) ErrorStyle { return d.Errors },
		func(m *recordModel, s ErrorStyle) { m.Style = s },
		validator.Func[ErrorStyle, ErrorStyle, issue](func(s ErrorStyle) result.Result[ErrorStyle, issue] {
			if s == "" {
				return result.Ok[ErrorStyle, issue](StyleFlat)
			}
			return style.Validate(s)
		}),
	)
	record.Field(b, "fields",
		func(d RecordDef) []FieldDef { return d.Fields },
		func(m *recordModel, fields []fieldModel) { m.Fields = fields },
		validator.Then(
			validator.Compose(rules.RequiredSlice[FieldDef]("fields")),
			indexed("fields", fieldRules()),
		).AndThen(validator.Func[[]fieldModel, []fieldModel, issue](checkFieldSet)).Build(),
	)
	record.Field(b, "extra",
		func(d RecordDef) []ExtraDef { return d.Extra },
		func(m *recordModel, extra []extraModel) { m.Extra = extra },
		indexed("extra", extraRules()),
	)
	return validator.AndThen(b.Build(), validator.Func[recordModel, recordModel, issue](checkExtras))
}

func fieldRules() validator.Validator[FieldDef, fieldModel, issue] {
	b := record.NewBuilder[FieldDef, fieldModel, issue]("name", "type", "target", "target_type", "depends_on")
	record.Field(b, "name",
		func(d FieldDef) string { return d.Name },
		func(m *fieldModel, name string) { m.Name, m.GoName = name, exportName(name) },
		exportable("name"),
	)
	record.Field(b, "type",
		func(d FieldDef) string { return d.Type },
		func(m *fieldModel, t string) { m.Type = t },
		goType("type"),
	)
	record.Field(b, "target",
		func(d FieldDef) FieldDef { return d },
		func(m *fieldModel, name string) { m.Target = name },
		orDefault(
			func(d FieldDef) string { return d.Target },
			func(d FieldDef) string { return exportName(d.Name) },
			identifier("target"),
		),
	)
	record.Field(b, "target_type",
		func(d FieldDef) FieldDef { return d },
		func(m *fieldModel, t string) { m.TargetType = t },
		orDefault(
			func(d FieldDef) string { return d.TargetType },
			func(d FieldDef) string { return d.Type },
			goType("target_type"),
		),
	)
	record.Field(b, "depends_on",
		func(d FieldDef) []string { return d.DependsOn },
		func(m *fieldModel, deps []string) { m.DependsOn = deps },
		validator.EachElement(identifier("depends_on")),
	)
	b.DependsOn("target", "name").DependsOn("target_type", "type")
	return b.Build()
}

func extraRules() validator.Validator[ExtraDef, extraModel, issue] {
	b := record.NewBuilder[ExtraDef, extraModel, issue]("name", "type")
	record.Field(b, "name",
		func(d ExtraDef) string { return d.Name },
		func(m *extraModel, name string) { m.Name, m.Field = name, exportName(name) },
		identifier("name"),
	)
	record.Field(b, "type",
		func(d ExtraDef) string { return d.Type },
		func(m *extraModel, t string) { m.Type = t },
		goType("type"),
	)
	return b.Build()
}

func checkRecordSet(records []recordModel) result.Result[[]recordModel, issue] {
	var errs []issue
	seen := make(map[string]bool, len(records))
	for i, r := range records {
		if seen[r.Draft] {
			errs = append(errs, newIssue(fmt.Sprintf("records[%d].draft", i), "gen.duplicate",
				fmt.Sprintf("draft %q is declared twice", r.Draft)))
		}
		seen[r.Draft] = true
	}
	if len(errs) > 0 {
		return result.Fail[[]recordModel](errs...)
	}
	return result.Ok[[]recordModel, issue](records)
}

func checkFieldSet(fields []fieldModel) result.Result[[]fieldModel, issue] {
	var errs []issue
	names := make(map[string]bool, len(fields))
	goNames := make(map[string]bool, len(fields))
	targets := make(map[string]bool, len(fields))
	for i, f := range fields {
		path := fmt.Sprintf("fields[%d]", i)
		switch {
		case names[f.Name]:
			errs = append(errs, newIssue(path+".name", "gen.duplicate", fmt.Sprintf("field %q is declared twice", f.Name)))
		case goNames[f.GoName]:
			errs = append(errs, newIssue(path+".name", "gen.duplicate", fmt.Sprintf("Go name %s is declared twice", f.GoName)))
		case slices.Contains(reservedMethods, f.GoName):
			errs = append(errs, newIssue(path+".name", "gen.reserved", fmt.Sprintf("%s clashes with a generated method", f.GoName)))
		}
		if targets[f.Target] {
			errs = append(errs, newIssue(path+".target", "gen.duplicate", fmt.Sprintf("target field %s is assigned twice", f.Target)))
		}
		names[f.Name], goNames[f.GoName], targets[f.Target] = true, true, true
	}

	for i, f := range fields {
		path := fmt.Sprintf("fields[%d].depends_on", i)
		for _, dep := range f.DependsOn {
			switch {
			case dep == f.Name:
				errs = append(errs, newIssue(path, "gen.dependency", fmt.Sprintf("field %q cannot depend on itself", f.Name)))
			case !names[dep]:
				errs = append(errs, newIssue(path, "gen.dependency", fmt.Sprintf("unknown field %q", dep)))
			}
		}
	}

	if len(errs) > 0 {
		return result.Fail[[]fieldModel](errs...)
	}
	return result.Ok[[]fieldModel, issue](fields)
}

func checkExtras(r recordModel) result.Result[recordModel, issue] {
	var errs []issue
	targets := make(map[string]string, len(r.Fields))
	for _, f := range r.Fields {
		targets[f.Target] = f.Name
	}
	seen := make(map[string]bool, len(r.Extra))
	for i, x := range r.Extra {
		path := fmt.Sprintf("extra[%d].name", i)
		switch {
		case slices.Contains(reservedParams, x.Name):
			errs = append(errs, newIssue(path, "gen.reserved", fmt.Sprintf("%q is used by generated code", x.Name)))
		case seen[x.Name]:
			errs = append(errs, newIssue(path, "gen.duplicate", fmt.Sprintf("extra field %q is declared twice", x.Name)))
		}
		if from, ok := targets[x.Field]; ok {
			errs = append(errs, newIssue(path, "gen.duplicate", fmt.Sprintf("target field %s is already set from %q", x.Field, from)))
		}
		seen[x.Name] = true
	}
	if len(errs) > 0 {
		return result.Fail[recordModel](errs...)
	}
	return result.Ok[recordModel, issue](r)
}

func newIssue(field, key, message string) issue {
	return issue{
		Field:             field,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: map[string]any{"field": field},
	}
}

// identifier accepts Go identifiers that are not keywords.
func identifier(field string) validator.Validator[string, string, issue] {
	return validator.AndThen(
		rules.Required(field),
		validator.PredicateWith(token.IsIdentifier, func(s string) issue {
			return newIssue(field, "gen.identifier", fmt.Sprintf("%q is not a Go identifier", s))
		}),
	)
}

// exportable accepts names whose exported form is an exported Go identifier.
// Keywords such as "type" qualify since only the exported form reaches code.
func exportable(field string) validator.Validator[string, string, issue] {
	return validator.AndThen(
		rules.Required(field),
		validator.PredicateWith(func(s string) bool {
			name := exportName(s)
			return token.IsIdentifier(name) && isExported(name)
		}, func(s string) issue {
			return newIssue(field, "gen.exported", fmt.Sprintf("%q cannot be exported", s))
		}),
	)
}

// typeName accepts identifiers usable as the draft or target type. E is
// the type parameter of generated builders; record and validator are the
// package names every generated file imports.
func typeName(field string) validator.Validator[string, string, issue] {
	return validator.AndThen(
		identifier(field),
		rules.NoneOf(field, "E", "record", "validator"),
	)
}

func goType(field string) validator.Validator[string, string, issue] {
	return validator.AndThen(
		rules.Required(field),
		validator.PredicateWith(isTypeExpr, func(s string) issue {
			return newIssue(field, "gen.type", fmt.Sprintf("%q is not a Go type", s))
		}),
	)
}

func importPath(field string) validator.Validator[string, string, issue] {
	return validator.AndThen(
		rules.Required(field),
		validator.PredicateWith(func(s string) bool { return !strings.ContainsAny(s, " \t\r\n\"`\\") }, func(s string) issue {
			return newIssue(field, "gen.import", fmt.Sprintf("%q is not an import path", s))
		}),
	)
}

// orDefault validates the value read by get, or yields fallback when that
// value is empty.
func orDefault[D any](get, fallback func(D) string, v validator.Validator[string, string, issue]) validator.Validator[D, string, issue] {
	return validator.Func[D, string, issue](func(d D) result.Result[string, issue] {
		if s := get(d); s != "" {
			return v.Validate(s)
		}
		return result.Ok[string, issue](fallback(d))
	})
}

// indexed validates every element with v and prefixes error fields with
// name[i].
func indexed[I, O any](name string, v validator.Validator[I, O, issue]) validator.Validator[[]I, []O, issue] {
	return validator.Func[[]I, []O, issue](func(in []I) result.Result[[]O, issue] {
		results := make([]result.Result[O, issue], len(in))
		for i, item := range in {
			prefix := fmt.Sprintf("%s[%d]", name, i)
			results[i] = result.MapErrors(v.Validate(item), func(e issue) issue { return nested(prefix, e) })
		}
		return result.Collect(results...)
	})
}

func nested(prefix string, e issue) issue {
	e.Field = prefix + "." + e.Field
	e.TranslationValues = maps.Clone(e.TranslationValues)
	if e.TranslationValues == nil {
		e.TranslationValues = make(map[string]any, 1)
	}
	e.TranslationValues["field"] = e.Field
	return e
}
