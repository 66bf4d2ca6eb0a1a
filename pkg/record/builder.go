package record

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/vanilla/pkg/result"
	"github.com/dmitrymomot/vanilla/pkg/validator"
)

// slot validates one draft field and writes the output into the target.
// It returns nil on success.
type slot[D, T, E any] func(input D, target *T) []E

// Builder collects one validator per declared field of a draft struct D
// and builds a validator producing the target struct T.
type Builder[D, T, E any] struct {
	fields    []string
	index     map[string]int
	slots     []slot[D, T, E]
	dependsOn map[string][]string
}

// NewBuilder declares the fields of the record in order. The order is used
// for error reporting. It panics on empty or duplicate names.
func NewBuilder[D, T, E any](fields ...string) *Builder[D, T, E] {
	index := make(map[string]int, len(fields))
	for i, name := range fields {
		if name == "" {
			panic(fmt.Errorf("%w at position %d", ErrEmptyField, i))
		}
		if _, ok := index[name]; ok {
			panic(fmt.Errorf("%w %q", ErrDuplicateField, name))
		}
		index[name] = i
	}
	return &Builder[D, T, E]{
		fields:    slices.Clone(fields),
		index:     index,
		slots:     make([]slot[D, T, E], len(fields)),
		dependsOn: make(map[string][]string),
	}
}

// Field sets the validator of the named field. get reads the draft value,
// set stores the validated value into the target. Calling Field again for
// the same name replaces the previous validator.
func Field[D, T, FI, FO, E any](
	b *Builder[D, T, E],
	name string,
	get func(D) FI,
	set func(*T, FO),
	v validator.Validator[FI, FO, E],
) *Builder[D, T, E] {
	i := b.mustIndex(name)
	if v == nil {
		panic(fmt.Errorf("%w for field %q", ErrNilValidator, name))
	}
	b.slots[i] = func(input D, target *T) []E {
		r := v.Validate(get(input))
		out, ok := r.Value()
		if !ok {
			return r.Errors()
		}
		set(target, out)
		return nil
	}
	return b
}

// DependsOn records that field relies on the listed sibling fields.
// The hint is informational: validators still run independently.
func (b *Builder[D, T, E]) DependsOn(field string, deps ...string) *Builder[D, T, E] {
	b.mustIndex(field)
	for _, d := range deps {
		b.mustIndex(d)
	}
	b.dependsOn[field] = slices.Clone(deps)
	return b
}

// Dependencies returns the dependency hint recorded for field.
func (b *Builder[D, T, E]) Dependencies(field string) []string {
	return slices.Clone(b.dependsOn[field])
}

// Fields returns the declared field names in order.
func (b *Builder[D, T, E]) Fields() []string {
	return slices.Clone(b.fields)
}

// Missing returns the fields without a validator, in declaration order.
func (b *Builder[D, T, E]) Missing() []string {
	var missing []string
	for i, s := range b.slots {
		if s == nil {
			missing = append(missing, b.fields[i])
		}
	}
	return missing
}

// Ready reports whether every field has a validator.
func (b *Builder[D, T, E]) Ready() bool {
	return len(b.Missing()) == 0
}

// Build returns a validator running every field validator and reporting
// all errors as a flat list in field declaration order. The target is only
// constructed when every field passes; defaults then fill target-only
// fields. Build panics with ErrMissingRules when a field has no validator.
func (b *Builder[D, T, E]) Build(defaults ...func(*T)) validator.Validator[D, T, E] {
	run := b.assemble(defaults)
	return validator.Func[D, T, E](func(input D) result.Result[T, E] {
		target, report := run(input)
		if !report.failed() {
			return result.Ok[T, E](target)
		}
		return result.Fail[T](report.Flatten()...)
	})
}

// BuildFieldErrors is Build with structured errors: a failure carries one
// FieldErrors value holding an entry for every field.
func (b *Builder[D, T, E]) BuildFieldErrors(defaults ...func(*T)) validator.Validator[D, T, FieldErrors[E]] {
	run := b.assemble(defaults)
	return validator.Func[D, T, FieldErrors[E]](func(input D) result.Result[T, FieldErrors[E]] {
		target, report := run(input)
		if !report.failed() {
			return result.Ok[T, FieldErrors[E]](target)
		}
		return result.Fail[T](report)
	})
}

func (b *Builder[D, T, E]) assemble(defaults []func(*T)) func(D) (T, FieldErrors[E]) {
	b.checkMissingRules()

	fields := slices.Clone(b.fields)
	slots := slices.Clone(b.slots)
	defaults = slices.Clone(defaults)

	return func(input D) (T, FieldErrors[E]) {
		var target T
		report := make(FieldErrors[E], len(slots))
		for i, s := range slots {
			report[i] = FieldError[E]{Field: fields[i], Errors: s(input, &target)}
		}
		if report.failed() {
			var zero T
			return zero, report
		}
		for _, d := range defaults {
			if d != nil {
				d(&target)
			}
		}
		return target, report
	}
}

func (b *Builder[D, T, E]) checkMissingRules() {
	missing := b.Missing()
	if len(missing) == 0 {
		return
	}
	quoted := make([]string, len(missing))
	for i, name := range missing {
		quoted[i] = `"` + name + `"`
	}
	panic(fmt.Errorf("%w for properties: %s", ErrMissingRules, strings.Join(quoted, ", ")))
}

func (b *Builder[D, T, E]) mustIndex(name string) int {
	i, ok := b.index[name]
	if !ok {
		panic(fmt.Errorf("%w %q, declared fields: %s", ErrUnknownField, name, strings.Join(b.fields, ", ")))
	}
	return i
}
