package sample_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vanilla/internal/sample"
	"github.com/dmitrymomot/vanilla/pkg/record"
	"github.com/dmitrymomot/vanilla/pkg/result"
	"github.com/dmitrymomot/vanilla/pkg/validator"
)

func ptr[T any](v T) *T {
	return &v
}

func succeed[I, O any](out O, trace *[]string, name string) validator.Validator[I, O, string] {
	return validator.Func[I, O, string](func(I) result.Result[O, string] {
		if trace != nil {
			*trace = append(*trace, name)
		}
		return result.Ok[O, string](out)
	})
}

func fail[I, O any](trace *[]string, name string, errs ...string) validator.Validator[I, O, string] {
	return validator.Func[I, O, string](func(I) result.Result[O, string] {
		if trace != nil {
			*trace = append(*trace, name)
		}
		return result.Fail[O](errs...)
	})
}

func validDraft() sample.PersonDraft {
	return sample.PersonDraft{
		FirstName: ptr("Fiodor"),
		LastName:  ptr("Dostoyevsky"),
		Age:       ptr("33"),
		Addr: &sample.AddressDraft{
			City:      ptr("Moscow"),
			Street:    ptr("Tverskaya"),
			House:     ptr(3),
			ExtraData: map[string]int{},
		},
		PhoneNumbers: []sample.PhoneNumberDraft{{Type: ptr(sample.HomePhone), Number: ptr("334455")}},
		Friends:      map[string]sample.AddressDraft{},
		ExtraUnused1: 3,
		ExtraUnused2: ptr("none"),
	}
}

var (
	moscow       = sample.Address{City: "Moscow", Street: "Tverskaya", House: 3}
	homePhones   = []sample.PhoneNumber{{Type: sample.HomePhone, Number: "334455"}}
	emptyFriends = map[string]sample.Address{}
)

func TestPersonValidator_MissingRules(t *testing.T) {
	t.Run("lists every field without a rule", func(t *testing.T) {
		assert.PanicsWithError(t,
			`missing validation rules for properties: "firstName", "lastName", "age", "addr", "phoneNumbers", "friends"`,
			func() { sample.NewPersonDraftValidatorBuilder[string]().Build() },
		)
	})

	t.Run("lists only the fields still missing", func(t *testing.T) {
		b := sample.NewPersonDraftValidatorBuilder[string]().
			Addr(succeed[*sample.AddressDraft](moscow, nil, "addr"))

		assert.Equal(t, []string{"firstName", "lastName", "age", "phoneNumbers", "friends"}, b.Missing())
		assert.PanicsWithError(t,
			`missing validation rules for properties: "firstName", "lastName", "age", "phoneNumbers", "friends"`,
			func() { b.Build() },
		)
	})
}

func TestPersonValidator_Validate(t *testing.T) {
	t.Run("parses and validates a valid draft", func(t *testing.T) {
		v := sample.NewPersonDraftValidatorBuilder[string]().
			FirstName(validator.IsNotNull[string]("first name is null")).
			LastName(validator.IsNotNull[string]("last name is null")).
			Age(succeed[*string](33, nil, "age")).
			Addr(succeed[*sample.AddressDraft](moscow, nil, "addr")).
			PhoneNumbers(succeed[[]sample.PhoneNumberDraft](homePhones, nil, "phones")).
			Friends(succeed[map[string]sample.AddressDraft](emptyFriends, nil, "friends")).
			Build()

		want := sample.Person{
			FirstName:    "Fiodor",
			LastName:     "Dostoyevsky",
			Age:          33,
			Address:      moscow,
			PhoneNumbers: homePhones,
			Friends:      emptyFriends,
		}
		assert.Equal(t, result.Ok[sample.Person, string](want), v.Validate(validDraft()))
	})

	t.Run("reports every error in field order", func(t *testing.T) {
		v := sample.NewPersonDraftValidatorBuilder[string]().
			FirstName(succeed[*string]("Fiodor", nil, "first")).
			LastName(fail[*string, string](nil, "last", "lastName error")).
			Age(fail[*string, int](nil, "age", "age error 1", "age error 2")).
			Addr(fail[*sample.AddressDraft, sample.Address](nil, "addr", "addr error")).
			PhoneNumbers(fail[[]sample.PhoneNumberDraft, []sample.PhoneNumber](nil, "phones", "phoneNumbers error")).
			Friends(fail[map[string]sample.AddressDraft, map[string]sample.Address](nil, "friends", "friends error 1", "friends error 2")).
			Build()

		r := v.Validate(sample.PersonDraft{FirstName: ptr("Fiodor")})
		assert.Equal(t, []string{
			"lastName error", "age error 1", "age error 2", "addr error",
			"phoneNumbers error", "friends error 1", "friends error 2",
		}, r.Errors())
	})
}

func TestPersonValidator_Composer(t *testing.T) {
	rest := func(b *sample.PersonDraftValidatorBuilder[string]) *sample.PersonDraftValidatorBuilder[string] {
		return b.
			LastName(validator.IsNotNull[string]("expected not null")).
			Addr(succeed[*sample.AddressDraft](moscow, nil, "addr")).
			PhoneNumbers(succeed[[]sample.PhoneNumberDraft](homePhones, nil, "phones")).
			Friends(succeed[map[string]sample.AddressDraft](emptyFriends, nil, "friends"))
	}

	t.Run("chains rules in order", func(t *testing.T) {
		var trace []string
		firstName := validator.Compose(succeed[*string]("Fiodor", &trace, "first")).
			AndThen(succeed[string]("Fiodor2", &trace, "second")).
			AndThen(succeed[string]("Fiodor3", &trace, "third")).
			Build()

		v := rest(sample.NewPersonDraftValidatorBuilder[string]().FirstName(firstName).
			Age(succeed[*string](33, nil, "age"))).Build()

		r := v.Validate(validDraft())
		assert.Equal(t, []string{"first", "second", "third"}, trace)
		person, ok := r.Value()
		require.True(t, ok)
		assert.Equal(t, "Fiodor3", person.FirstName)
	})

	t.Run("breaks the chain on the first failure", func(t *testing.T) {
		var trace []string
		firstName := validator.Compose(succeed[*string]("Fiodor", &trace, "first")).
			AndThen(fail[string, string](&trace, "second", "error1", "error2")).
			AndThen(succeed[string]("Fiodor3", &trace, "third")).
			Build()

		v := rest(sample.NewPersonDraftValidatorBuilder[string]().FirstName(firstName).
			Age(succeed[*string](33, nil, "age"))).Build()

		r := v.Validate(validDraft())
		assert.Equal(t, []string{"first", "second"}, trace)
		assert.Equal(t, []string{"error1", "error2"}, r.Errors())
	})

	t.Run("accumulates chain and field errors", func(t *testing.T) {
		firstName := validator.Compose(succeed[*string]("Fiodor", nil, "first")).
			AndThen(fail[string, string](nil, "second", "error1", "error2")).
			AndThen(succeed[string]("Fiodor3", nil, "third")).
			Build()

		v := rest(sample.NewPersonDraftValidatorBuilder[string]().FirstName(firstName).
			Age(fail[*string, int](nil, "age", "some age error"))).Build()

		assert.Equal(t, []string{"error1", "error2", "some age error"}, v.Validate(validDraft()).Errors())
	})
}

func addressBuilder() *sample.AddressDraftValidatorBuilder[string] {
	return sample.NewAddressDraftValidatorBuilder[string]().
		City(validator.IsNotNull[string]("null city")).
		House(validator.IsNotNull[int]("null house")).
		Street(validator.IsNotNull[string]("null street"))
}

func TestAddressValidator(t *testing.T) {
	t.Run("sets target-only fields from BuildWith", func(t *testing.T) {
		v := addressBuilder().
			PoBox(validator.IsNullOr(validator.OK[string, string]())).
			BuildWith(ptr("hubba bubba"))

		r := v.Validate(sample.AddressDraft{City: ptr("fjfj"), Street: ptr("fjfj"), House: ptr(33), PoBox: ptr("33")})
		address, ok := r.Value()
		require.True(t, ok)
		require.NotNil(t, address.DistrictNameID)
		assert.Equal(t, "hubba bubba", *address.DistrictNameID)
		assert.Equal(t, "33", *address.PoBox)
	})

	t.Run("keeps a nullable field nil", func(t *testing.T) {
		v := addressBuilder().
			PoBox(validator.IsNullOr(validator.HasLengthLessThan(333, "error"))).
			BuildWith(nil)

		address, ok := v.Validate(sample.AddressDraft{City: ptr("fjfj"), Street: ptr("fjfj"), House: ptr(33)}).Value()
		require.True(t, ok)
		assert.Nil(t, address.PoBox)
		assert.Nil(t, address.DistrictNameID)
	})

	t.Run("composes a nullable field validator", func(t *testing.T) {
		city := validator.Then(
			validator.Compose(validator.IsNotNull[string]("null city")),
			validator.IsNotBlank("blank city"),
		).AndThen(validator.Just[string, string, string]("city")).Build()

		v := sample.NewAddressDraftValidatorBuilder[string]().
			City(city).
			House(validator.IsNotNull[int]("null house")).
			Street(validator.IsNotNull[string]("null street")).
			PoBox(validator.IsNullOr(validator.HasLengthLessThan(333, "error"))).
			BuildWith(ptr("hubba bubba"))

		r := v.Validate(sample.AddressDraft{Street: ptr("fjfj"), House: ptr(33)})
		assert.Equal(t, []string{"null city"}, r.Errors())

		address, ok := v.Validate(sample.AddressDraft{City: ptr("Moscow"), Street: ptr("fjfj"), House: ptr(33)}).Value()
		require.True(t, ok)
		assert.Equal(t, "city", address.City)
	})
}

func phoneValidator() validator.Validator[sample.PhoneNumberDraft, sample.PhoneNumber, record.FieldErrors[string]] {
	return sample.NewPhoneNumberDraftValidatorBuilder[string]().
		Type(validator.IsNotNullAnd(
			validator.IsInRange(sample.HomePhone, sample.OtherPhone, "unknown phone type"),
			"missing phone type",
		)).
		Number(validator.IsNotNullAnd(
			validator.Matches(`\+?[0-9]{5,15}`, "malformed number"),
			"missing number",
		)).
		Build()
}

func TestPhoneNumberValidator(t *testing.T) {
	t.Run("reports errors per field", func(t *testing.T) {
		r := phoneValidator().Validate(sample.PhoneNumberDraft{Type: ptr(sample.PhoneType(9)), Number: ptr("12")})

		require.True(t, r.IsFailure())
		require.Len(t, r.Errors(), 1)
		report := r.Errors()[0]
		assert.Equal(t, []string{"type", "number"}, report.Failed())

		errs, ok := report.Get("number")
		require.True(t, ok)
		assert.Equal(t, []string{"malformed number"}, errs)
		assert.EqualError(t, report, "validation failed: type: unknown phone type; number: malformed number")
	})

	t.Run("serves as a flat person field rule", func(t *testing.T) {
		v := sample.NewPersonDraftValidatorBuilder[string]().
			FirstName(validator.IsNotNull[string]("first name is null")).
			LastName(validator.IsNotNull[string]("last name is null")).
			Age(validator.AndThen(validator.IsNotNull[string]("age is null"), validator.ParseInt("age must be a number"))).
			Addr(succeed[*sample.AddressDraft](moscow, nil, "addr")).
			PhoneNumbers(validator.EachElement(record.Flat(phoneValidator()))).
			Friends(succeed[map[string]sample.AddressDraft](emptyFriends, nil, "friends")).
			Build()

		person, ok := v.Validate(validDraft()).Value()
		require.True(t, ok)
		assert.Equal(t, homePhones, person.PhoneNumbers)

		draft := validDraft()
		draft.PhoneNumbers = append(draft.PhoneNumbers, sample.PhoneNumberDraft{Number: ptr("x")})
		assert.Equal(t, []string{"missing phone type", "malformed number"}, v.Validate(draft).Errors())
	})
}

func TestPhoneType_String(t *testing.T) {
	assert.Equal(t, "home", sample.HomePhone.String())
	assert.Equal(t, "other", sample.OtherPhone.String())
	assert.Equal(t, "unknown", sample.PhoneType(0).String())
}
