// Package sample shows generated record validators at work on a person
// registration form.
package sample

//go:generate go run ../../cmd/validgen generate -f validators.yaml -o validators_gen.go

// PhoneType is the kind of a phone number.
type PhoneType int

const (
	HomePhone PhoneType = iota + 1
	WorkPhone
	CellPhone
	OtherPhone
)

func (t PhoneType) String() string {
	switch t {
	case HomePhone:
		return "home"
	case WorkPhone:
		return "work"
	case CellPhone:
		return "cell"
	case OtherPhone:
		return "other"
	default:
		return "unknown"
	}
}

// PersonDraft is a person as submitted, before validation.
type PersonDraft struct {
	FirstName    *string
	LastName     *string
	Age          *string
	Addr         *AddressDraft
	PhoneNumbers []PhoneNumberDraft
	Friends      map[string]AddressDraft
	ExtraUnused1 int
	ExtraUnused2 *string
}

type AddressDraft struct {
	City      *string
	Street    *string
	House     *int
	ExtraData map[string]int
	PoBox     *string
}

type PhoneNumberDraft struct {
	Type   *PhoneType
	Number *string
}

type Person struct {
	FirstName    string
	LastName     string
	Age          int
	Address      Address
	PhoneNumbers []PhoneNumber
	Friends      map[string]Address
}

// Address is a validated address. DistrictNameID has no draft
// counterpart and is supplied when the validator is built.
type Address struct {
	City           string
	Street         string
	House          int
	DistrictNameID *string
	PoBox          *string
}

type PhoneNumber struct {
	Type   PhoneType
	Number string
}
