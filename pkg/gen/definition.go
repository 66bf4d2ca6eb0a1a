package gen

import (
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrorStyle selects how a generated validator reports failures.
type ErrorStyle string

const (
	// StyleFlat reports a flat error list in field order.
	StyleFlat ErrorStyle = "flat"
	// StyleFields reports one record.FieldErrors value.
	StyleFields ErrorStyle = "fields"
)

// Definition describes the builders to generate for one Go package.
type Definition struct {
	Package string      `yaml:"package"`
	Imports []string    `yaml:"imports"`
	Records []RecordDef `yaml:"records"`
}

// RecordDef maps a draft struct onto its validated target struct.
type RecordDef struct {
	Draft  string     `yaml:"draft"`
	Target string     `yaml:"target"`
	Errors ErrorStyle `yaml:"errors"`
	Fields []FieldDef `yaml:"fields"`
	Extra  []ExtraDef `yaml:"extra"`
}

// FieldDef is one draft field. Name is the property name used in error
// reports; the Go field is its exported form. Target and TargetType
// default to the draft field name and type.
type FieldDef struct {
	Name       string   `yaml:"name"`
	Type       string   `yaml:"type"`
	Target     string   `yaml:"target"`
	TargetType string   `yaml:"target_type"`
	DependsOn  []string `yaml:"depends_on"`
}

// ExtraDef is a target field with no draft counterpart. It becomes a
// parameter of the generated BuildWith method.
type ExtraDef struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Load decodes a YAML definition. Unknown keys are rejected.
func Load(r io.Reader) (Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return Definition{}, errors.Join(ErrDecodeDefinition, err)
	}
	return def, nil
}
