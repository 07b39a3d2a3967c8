package model

import "testing"

func TestPatient_Key(t *testing.T) {
	a := Patient{Name: "John Smith", Age: 32, Gender: "male", Diagnosis: "flu"}
	b := Patient{Name: "John Smith", Age: 32, Gender: "female", Diagnosis: "flu"}
	c := Patient{Name: "John Smith", Age: 33, Gender: "male", Diagnosis: "flu"}

	if a.Key() != b.Key() {
		t.Errorf("gender must not take part in identity: %v != %v", a.Key(), b.Key())
	}
	if a.Key() == c.Key() {
		t.Errorf("different ages must produce different keys")
	}
}

func TestIdentityKey_String(t *testing.T) {
	key := IdentityKey{Name: "Jane Doe", Age: 40, Diagnosis: "asthma"}
	if got := key.String(); got != "Jane Doe|40|asthma" {
		t.Errorf("String() = %q", got)
	}
}

func TestPatient_Raw(t *testing.T) {
	p := Patient{Name: "Jane Doe", Age: 40, Gender: "female", Diagnosis: "asthma"}
	raw := p.Raw()

	tests := []struct {
		field string
		want  any
	}{
		{field: FieldName, want: "Jane Doe"},
		{field: FieldAge, want: 40},
		{field: FieldGender, want: "female"},
		{field: FieldDiagnosis, want: "asthma"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if raw[tt.field] != tt.want {
				t.Errorf("raw[%q] = %v, want %v", tt.field, raw[tt.field], tt.want)
			}
		})
	}
}
