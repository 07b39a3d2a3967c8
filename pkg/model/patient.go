package model

import "fmt"

const (
	FieldName      = "name"
	FieldAge       = "age"
	FieldGender    = "gender"
	FieldDiagnosis = "diagnosis"
)

// RawPatient is an untrusted input record. No key is guaranteed to be present
// and values keep whatever type the decoder produced.
type RawPatient map[string]any

type Patient struct {
	Name      string `json:"name" bson:"name" validate:"titlecase"`
	Age       int    `json:"age" bson:"age" validate:"minage"`
	Gender    string `json:"gender" bson:"gender"`
	Diagnosis string `json:"diagnosis" bson:"diagnosis"`
}

// IdentityKey is the triple used to detect duplicate clean records.
type IdentityKey struct {
	Name      string
	Age       int
	Diagnosis string
}

func (p Patient) Key() IdentityKey {
	return IdentityKey{
		Name:      p.Name,
		Age:       p.Age,
		Diagnosis: p.Diagnosis,
	}
}

// Raw converts a clean record back into raw form, e.g. to feed it through the
// cleaner again.
func (p Patient) Raw() RawPatient {
	return RawPatient{
		FieldName:      p.Name,
		FieldAge:       p.Age,
		FieldGender:    p.Gender,
		FieldDiagnosis: p.Diagnosis,
	}
}

func (k IdentityKey) String() string {
	return fmt.Sprintf("%s|%d|%s", k.Name, k.Age, k.Diagnosis)
}
