package record_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vanilla/pkg/record"
	"github.com/dmitrymomot/vanilla/pkg/result"
	"github.com/dmitrymomot/vanilla/pkg/validator"
)

type userDraft struct {
	FirstName *string
	Age       *string
	Nickname  *string
}

type user struct {
	FirstName string
	Age       int
	Nickname  *string
	Source    string
}

// userBuilder mirrors the shape of a generated builder.
type userBuilder struct {
	b *record.Builder[userDraft, user, string]
}

func newUserBuilder() *userBuilder {
	return &userBuilder{b: record.NewBuilder[userDraft, user, string]("firstName", "age", "nickname")}
}

func (ub *userBuilder) FirstName(v validator.Validator[*string, string, string]) *userBuilder {
	record.Field(ub.b, "firstName",
		func(d userDraft) *string { return d.FirstName },
		func(u *user, v string) { u.FirstName = v },
		v)
	return ub
}

func (ub *userBuilder) Age(v validator.Validator[*string, int, string]) *userBuilder {
	record.Field(ub.b, "age",
		func(d userDraft) *string { return d.Age },
		func(u *user, v int) { u.Age = v },
		v)
	return ub
}

func (ub *userBuilder) Nickname(v validator.Validator[*string, *string, string]) *userBuilder {
	record.Field(ub.b, "nickname",
		func(d userDraft) *string { return d.Nickname },
		func(u *user, v *string) { u.Nickname = v },
		v)
	return ub
}

func (ub *userBuilder) BuildWith(source string) validator.Validator[userDraft, user, string] {
	return ub.b.Build(func(u *user) { u.Source = source })
}

func ptr[T any](v T) *T {
	return &v
}

func ageRule() validator.Validator[*string, int, string] {
	return validator.AndThen(validator.IsNotNull[string]("a-err"), validator.ParseInt("parse-err"))
}

func TestBuilder_MissingRules(t *testing.T) {
	t.Run("lists every field when nothing is configured", func(t *testing.T) {
		assert.PanicsWithError(t,
			`missing validation rules for properties: "firstName", "age", "nickname"`,
			func() { newUserBuilder().BuildWith("x") },
		)
	})

	t.Run("configuring a field removes exactly that name", func(t *testing.T) {
		ub := newUserBuilder().Age(ageRule())

		assert.Equal(t, []string{"firstName", "nickname"}, ub.b.Missing())
		assert.PanicsWithError(t,
			`missing validation rules for properties: "firstName", "nickname"`,
			func() { ub.BuildWith("x") },
		)
	})

	t.Run("panic value wraps the sentinel", func(t *testing.T) {
		defer func() {
			err, ok := recover().(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, record.ErrMissingRules)
		}()
		newUserBuilder().FirstName(validator.IsNotNull[string]("f")).BuildWith("x")
	})

	t.Run("ready once every field is set", func(t *testing.T) {
		ub := newUserBuilder()
		assert.False(t, ub.b.Ready())

		ub.FirstName(validator.IsNotNull[string]("f")).
			Age(ageRule()).
			Nickname(validator.IsNullOr(validator.OK[string, string]()))

		assert.True(t, ub.b.Ready())
		assert.Empty(t, ub.b.Missing())
	})
}

func TestBuilder_Validate(t *testing.T) {
	newValidator := func() validator.Validator[userDraft, user, string] {
		return newUserBuilder().
			FirstName(validator.IsNotNull[string]("f-err")).
			Age(ageRule()).
			Nickname(validator.IsNullOr(validator.HasLengthLessThan(10, "nick-err"))).
			BuildWith("signup")
	}

	t.Run("constructs target when every field passes", func(t *testing.T) {
		r := newValidator().Validate(userDraft{FirstName: ptr("Fiodor"), Age: ptr("33")})

		assert.Equal(t, result.Ok[user, string](user{FirstName: "Fiodor", Age: 33, Source: "signup"}), r)
	})

	t.Run("accumulates errors across fields", func(t *testing.T) {
		r := newValidator().Validate(userDraft{FirstName: nil, Age: ptr("abc")})

		assert.Equal(t, []string{"f-err", "parse-err"}, r.Errors())
	})

	t.Run("chain inside a field still short-circuits", func(t *testing.T) {
		r := newValidator().Validate(userDraft{FirstName: ptr("a"), Age: nil})

		assert.Equal(t, []string{"a-err"}, r.Errors())
	})

	t.Run("reports errors in declaration order", func(t *testing.T) {
		r := newValidator().Validate(userDraft{Nickname: ptr("much too long"), Age: ptr("x")})

		assert.Equal(t, []string{"f-err", "parse-err", "nick-err"}, r.Errors())
	})

	t.Run("preserves nil optional fields", func(t *testing.T) {
		r := newValidator().Validate(userDraft{FirstName: ptr("a"), Age: ptr("1")})

		require.True(t, r.IsOk())
		assert.Nil(t, r.MustValue().Nickname)
	})

	t.Run("built validator is safe for concurrent use", func(t *testing.T) {
		v := newValidator()
		var wg sync.WaitGroup
		for i := range 16 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if i%2 == 0 {
					assert.True(t, v.Validate(userDraft{FirstName: ptr("a"), Age: ptr("1")}).IsOk())
				} else {
					assert.Len(t, v.Validate(userDraft{}).Errors(), 2)
				}
			}()
		}
		wg.Wait()
	})
}

func TestBuilder_EveryFieldRuns(t *testing.T) {
	var calls []string
	track := func(name string, ok bool) validator.Validator[*string, string, string] {
		return validator.Func[*string, string, string](func(*string) result.Result[string, string] {
			calls = append(calls, name)
			if ok {
				return result.Ok[string, string](name)
			}
			return result.Fail[string](name + " failed")
		})
	}

	b := record.NewBuilder[userDraft, user, string]("firstName", "age", "nickname")
	set := func(*user, string) {}
	get := func(userDraft) *string { return nil }
	record.Field(b, "firstName", get, set, track("firstName", false))
	record.Field(b, "age", get, set, track("age", true))
	record.Field(b, "nickname", get, set, track("nickname", false))

	r := b.Build().Validate(userDraft{})

	assert.Equal(t, []string{"firstName", "age", "nickname"}, calls)
	assert.Equal(t, []string{"firstName failed", "nickname failed"}, r.Errors())
}

func TestBuilder_LastWriteWins(t *testing.T) {
	v := newUserBuilder().
		FirstName(validator.IsNotNull[string]("first")).
		FirstName(validator.Just[*string, string, string]("override")).
		Age(validator.Just[*string, int, string](1)).
		Nickname(validator.Just[*string, *string, string](nil)).
		BuildWith("")

	r := v.Validate(userDraft{})
	require.True(t, r.IsOk())
	assert.Equal(t, "override", r.MustValue().FirstName)
}

func TestBuilder_SnapshotAtBuild(t *testing.T) {
	ub := newUserBuilder().
		FirstName(validator.IsNotNull[string]("f-err")).
		Age(validator.Just[*string, int, string](1)).
		Nickname(validator.Just[*string, *string, string](nil))
	v := ub.BuildWith("")

	ub.FirstName(validator.Just[*string, string, string]("later"))

	assert.Equal(t, []string{"f-err"}, v.Validate(userDraft{}).Errors())
}

func TestBuilder_BuildFieldErrors(t *testing.T) {
	b := record.NewBuilder[userDraft, user, string]("firstName", "age")
	record.Field(b, "firstName",
		func(d userDraft) *string { return d.FirstName },
		func(u *user, v string) { u.FirstName = v },
		validator.IsNotNull[string]("f-err"))
	record.Field(b, "age",
		func(d userDraft) *string { return d.Age },
		func(u *user, v int) { u.Age = v },
		ageRule())
	v := b.BuildFieldErrors()

	t.Run("one entry per field", func(t *testing.T) {
		r := v.Validate(userDraft{FirstName: ptr("ok"), Age: ptr("abc")})

		errs := r.Errors()
		require.Len(t, errs, 1)
		report := errs[0]

		_, failed := report.Get("firstName")
		assert.False(t, failed)
		ageErrs, failed := report.Get("age")
		assert.True(t, failed)
		assert.Equal(t, []string{"parse-err"}, ageErrs)
		assert.Equal(t, []string{"age"}, report.Failed())
		assert.Equal(t, record.FieldErrors[string]{
			{Field: "firstName"},
			{Field: "age", Errors: []string{"parse-err"}},
		}, report)
		assert.EqualError(t, report, "validation failed: age: parse-err")
	})

	t.Run("success", func(t *testing.T) {
		r := v.Validate(userDraft{FirstName: ptr("ok"), Age: ptr("3")})
		assert.Equal(t, result.Ok[user, record.FieldErrors[string]](user{FirstName: "ok", Age: 3}), r)
	})

	t.Run("flatten matches the flat style", func(t *testing.T) {
		flat := b.Build()
		input := userDraft{}

		assert.Equal(t, flat.Validate(input).Errors(), v.Validate(input).Errors()[0].Flatten())
	})
}

func TestNewBuilder_Guards(t *testing.T) {
	assert.PanicsWithError(t, `duplicate field "a"`, func() {
		record.NewBuilder[userDraft, user, string]("a", "b", "a")
	})
	assert.PanicsWithError(t, "empty field name at position 1", func() {
		record.NewBuilder[userDraft, user, string]("a", "")
	})
}

func TestField_Guards(t *testing.T) {
	b := record.NewBuilder[userDraft, user, string]("firstName")

	assert.PanicsWithError(t, `unknown field "lastName", declared fields: firstName`, func() {
		record.Field(b, "lastName",
			func(d userDraft) *string { return d.FirstName },
			func(u *user, v string) { u.FirstName = v },
			validator.IsNotNull[string]("e"))
	})

	assert.PanicsWithError(t, `nil validator for field "firstName"`, func() {
		record.Field[userDraft, user, *string, string, string](b, "firstName",
			func(d userDraft) *string { return d.FirstName },
			func(u *user, v string) { u.FirstName = v },
			nil)
	})
}

func TestBuilder_DependsOn(t *testing.T) {
	b := record.NewBuilder[userDraft, user, string]("firstName", "age", "nickname")
	b.DependsOn("nickname", "firstName", "age")

	assert.Equal(t, []string{"firstName", "age"}, b.Dependencies("nickname"))
	assert.Empty(t, b.Dependencies("age"))
	assert.Equal(t, []string{"firstName", "age", "nickname"}, b.Fields())
	assert.Panics(t, func() { b.DependsOn("nickname", "unknown") })
}

func TestBuilder_ZeroResultRule(t *testing.T) {
	v := newUserBuilder().
		FirstName(validator.Func[*string, string, string](func(*string) result.Result[string, string] {
			return result.Result[string, string]{}
		})).
		Age(ageRule()).
		Nickname(validator.IsNullOr(validator.OK[string, string]())).
		BuildWith("import")

	assert.PanicsWithValue(t, result.ErrEmptyFailure, func() {
		v.Validate(userDraft{Age: ptr("3")})
	})
}
