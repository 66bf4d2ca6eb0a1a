// Package record assembles per-field validators into a validator for a
// whole struct.
//
// A record validator turns a draft struct D, whose fields are typically
// pointers or raw strings still awaiting validation, into a target struct T
// holding validated values. Each target field gets exactly one validator
// reading the corresponding draft field. Every field validator runs on every
// call and all errors are accumulated, so a single Validate reports every
// problem of the record at once.
//
// # Architecture
//
// Builder is the runtime half of the builder protocol. Code produced by
// cmd/validgen wraps it with one typed setter per field, so users never
// call Field directly:
//
//	type PersonDraftValidatorBuilder[E any] struct {
//	    b *record.Builder[PersonDraft, Person, E]
//	}
//
//	func (pb *PersonDraftValidatorBuilder[E]) FirstName(v validator.Validator[*string, string, E]) *PersonDraftValidatorBuilder[E] {
//	    record.Field(pb.b, "firstName",
//	        func(d PersonDraft) *string { return d.FirstName },
//	        func(p *Person, v string) { p.FirstName = v },
//	        v)
//	    return pb
//	}
//
// A Builder starts with every declared field missing. Setting a field
// removes it from the missing set; setting it again replaces the previous
// validator. Build refuses to produce a validator while any field is
// missing.
//
// Builders are mutable and meant for a single goroutine. The validators
// they build keep a snapshot of the configured fields and are safe for
// concurrent use.
//
// # Error Handling
//
// Two reporting styles are available. Build reports a flat list of errors
// in field declaration order. BuildFieldErrors reports one FieldErrors
// value holding an entry per field, with nil errors for fields that passed.
//
// Calling Build with missing fields, or referencing a field that was not
// declared, is a programming error and panics with an error wrapping
// ErrMissingRules or ErrUnknownField.
package record
