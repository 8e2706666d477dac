package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidLoginName(t *testing.T) {
	valid := []string{"jahed", "Admin", "abu bakr", "j.k-2_x", "ab"}
	invalid := []string{"", "a", "user@name", "name!", "имя"}
	for _, name := range valid {
		if !IsValidLoginName(name) {
			t.Errorf("IsValidLoginName(%q) = false, want true", name)
		}
	}
	for _, name := range invalid {
		if IsValidLoginName(name) {
			t.Errorf("IsValidLoginName(%q) = true, want false", name)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-05-20"); !ok {
		t.Error("IsValidDate(2024-05-20) = false, want true")
	}
	for _, bad := range []string{"20-05-2024", "2024-13-01", "not a date", ""} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "amount", Message: "must be non-negative"},
		{Field: "vendor", Message: "is required"},
	}
	m := errs.ToMap()
	if len(m) != 2 || m["amount"] != "must be non-negative" || m["vendor"] != "is required" {
		t.Errorf("ToMap() = %v", m)
	}
	if errs.Error() != "amount: must be non-negative; vendor: is required" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
