package jsonutil

import "testing"

func TestConvert_MapToStruct(t *testing.T) {
	type opts struct {
		SupportsSorbetURIs bool `json:"supportsSorbetURIs"`
	}
	in := map[string]interface{}{"supportsSorbetURIs": true, "unknownField": 1}
	out, err := Convert[opts](in)
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if !out.SupportsSorbetURIs {
		t.Fatalf("expected supportsSorbetURIs to carry over")
	}
}

func TestConvert_TypeMismatchReturnsError(t *testing.T) {
	if _, err := Convert[int]("123"); err == nil {
		t.Fatalf("expected error converting string to int")
	}
}
