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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567e89b12d3a456426614174000",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",                                     // empty
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-03-15"); !ok {
		t.Error("IsValidDate(2024-03-15) = false, want true")
	}
	for _, s := range []string{"2024-13-01", "2024-03-32", "15-03-2024", "2024-03", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	if _, ok := IsValidMonth("2024-03"); !ok {
		t.Error("IsValidMonth(2024-03) = false, want true")
	}
	for _, s := range []string{"2024-13", "2024-03-15", "03-2024", ""} {
		if _, ok := IsValidMonth(s); ok {
			t.Errorf("IsValidMonth(%q) = true, want false", s)
		}
	}
}

func TestIsValidHHMM(t *testing.T) {
	valid := []string{"00:00", "08:30", "23:59", "172:30"}
	invalid := []string{"8:30", "08:60", "08:3", "0830", "", "08-30"}
	for _, s := range valid {
		if !IsValidHHMM(s) {
			t.Errorf("IsValidHHMM(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidHHMM(s) {
			t.Errorf("IsValidHHMM(%q) = true, want false", s)
		}
	}
}
