package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFieldTypeKnown(t *testing.T) {
	cases := map[FieldType]bool{
		FieldTypeText:     true,
		FieldTypeNumber:   true,
		FieldTypeSelect:   true,
		FieldTypeCheckbox: true,
		"date":            false,
		"":                false,
		"Text":            false,
	}
	for typ, want := range cases {
		if got := typ.Known(); got != want {
			t.Errorf("FieldType(%q).Known() = %v, want %v", typ, got, want)
		}
	}
}

func TestFieldDescriptorValidate(t *testing.T) {
	if err := (FieldDescriptor{Name: "age", Type: "date"}).Validate(); err != nil {
		t.Fatalf("unexpected error for unknown type: %v", err)
	}
	if err := (FieldDescriptor{Name: "  "}).Validate(); err != nil {
		t.Fatalf("whitespace name should be accepted: %v", err)
	}
	if err := (FieldDescriptor{Type: FieldTypeText}).Validate(); err == nil {
		t.Fatal("expected error for empty name")
	}
}

func TestCloneFieldsDetachesOptions(t *testing.T) {
	src := []FieldDescriptor{{Name: "color", Type: FieldTypeSelect, Options: []string{"red", "blue"}}}
	cloned := CloneFields(src)
	src[0].Options[0] = "green"

	if diff := cmp.Diff([]string{"red", "blue"}, cloned[0].Options); diff != "" {
		t.Fatalf("clone shares options (-want +got):\n%s", diff)
	}
}

func TestCloneFieldsEmpty(t *testing.T) {
	got := CloneFields(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
