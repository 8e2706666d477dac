package transaction

import "testing"

func TestNormalizeCategory(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Welding Materials", "Welding Materials"},
		{"welding materials", "Welding Materials"},
		{"VEHICLE/FUEL", "Vehicle/Fuel"},
		{"Safety Equipment - gloves and masks", "Safety Equipment"},
		{"tools", "Industrial Tools"},
		{"Groceries", "Others"},
		{"", "Others"},
		{"   ", "Others"},
	}
	for _, c := range cases {
		if got := NormalizeCategory(c.input); got != c.want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}
