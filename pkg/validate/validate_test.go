package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/mrvrecords/pkg/validate"
)

type productInput struct {
	ProductNumber      string  `json:"product_number"         validate:"required,max=50"`
	FMMOClassification *string `json:"fmmo_classification"    validate:"nullable,max=3"`
	DescriptionID      int     `json:"product_description_id" validate:"required,gt=0"`
	TypeID             *int    `json:"product_type_id"        validate:"nullable,gt=0"`
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestValidInput(t *testing.T) {
	errs := validate.Struct(productInput{
		ProductNumber:      "WM-3.25",
		FMMOClassification: strPtr("I"),
		DescriptionID:      4,
		TypeID:             intPtr(2),
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(productInput{})
	if _, ok := errs["product_number"]; !ok {
		t.Error("expected product_number to be required")
	}
	if _, ok := errs["product_description_id"]; !ok {
		t.Error("expected product_description_id to be required")
	}
	if _, ok := errs["product_type_id"]; ok {
		t.Error("nil nullable pointer must pass")
	}
	if _, ok := errs["fmmo_classification"]; ok {
		t.Error("nil nullable string must pass")
	}
}

func TestBlankStringIsEmpty(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"required"`
	}
	errs := validate.Struct(in{Name: "   "})
	if errs["name"] != "The name field is required." {
		t.Errorf("unexpected message: %q", errs["name"])
	}
}

func TestPointerRulesDereference(t *testing.T) {
	errs := validate.Struct(productInput{
		ProductNumber:      "A",
		DescriptionID:      1,
		TypeID:             intPtr(-3),
		FMMOClassification: strPtr("IIII"),
	})
	if _, ok := errs["product_type_id"]; !ok {
		t.Error("expected negative type id to fail gt=0")
	}
	if _, ok := errs["fmmo_classification"]; !ok {
		t.Error("expected 4-char classification to fail max=3")
	}
}

func TestGreaterThan(t *testing.T) {
	type in struct {
		ID int `json:"id" validate:"gt=0"`
	}
	if errs := validate.Struct(in{ID: -1}); errs["id"] != "The id must be greater than 0." {
		t.Errorf("unexpected message: %q", errs["id"])
	}
	if errs := validate.Struct(in{ID: 1}); validate.HasErrors(errs) {
		t.Errorf("expected 1 to pass: %v", errs)
	}
}

func TestMaxLength(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"required,max=5"`
	}
	if errs := validate.Struct(in{Name: "abcdef"}); !validate.HasErrors(errs) {
		t.Error("expected 6 chars to fail max=5")
	}
	if errs := validate.Struct(in{Name: "2% ÿ"}); validate.HasErrors(errs) {
		t.Errorf("rune length should be used: %v", errs)
	}
}

func TestMaxValue(t *testing.T) {
	type in struct {
		Count int `json:"count" validate:"max=10"`
	}
	if errs := validate.Struct(in{Count: 11}); !validate.HasErrors(errs) {
		t.Error("expected 11 to fail max=10")
	}
}
