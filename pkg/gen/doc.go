// Package gen renders typed record validator builders from a YAML
// definition.
//
// A definition lists, per draft struct, the fields to validate with their
// draft and target types, and the target-only fields supplied when the
// validator is built:
//
//	package: sample
//	records:
//	  - draft: PersonDraft
//	    target: Person
//	    fields:
//	      - name: firstName
//	        type: "*string"
//	        target_type: string
//	      - name: age
//	        type: "*string"
//	        target_type: int
//	        depends_on: [firstName]
//	    extra:
//	      - name: districtNameID
//	        type: "*string"
//
// For every record the generated file declares <Draft>ValidatorBuilder[E]
// with one setter per field, Missing, and Build (or BuildWith taking the
// extra fields). The builder wraps record.Builder, so a missing rule panics
// at Build time with record.ErrMissingRules.
//
// # Usage
//
//	def, err := gen.Load(f)
//	if err != nil {
//	    return err
//	}
//	return gen.Render(out, def, gen.WithHeader("Copyright 2026 Acme"))
//
// # Error Handling
//
// Load wraps decoding problems, including unknown keys, in
// ErrDecodeDefinition. Validate, Source and Render report every problem of
// a definition at once as rules.ValidationErrors joined with
// ErrInvalidDefinition; error fields are paths such as
// "records[0].fields[2].type".
package gen
