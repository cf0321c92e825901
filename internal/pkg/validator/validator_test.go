package validator

import (
	"testing"
	"time"
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

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestDateIn(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	parsed, ok := IsValidDate("2024-03-05")
	if !ok {
		t.Fatalf("IsValidDate(2024-03-05) = false, want true")
	}
	got := DateIn(parsed, loc)
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("DateIn() = %v, want %v", got, want)
	}
	if got.Location() != loc {
		t.Errorf("DateIn() location = %v, want %v", got.Location(), loc)
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date_from", Message: "invalid"},
		{Field: "date_to", Message: "required"},
	}
	got := errs.Error()
	want := "date_from: invalid; date_to: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date_from", Message: "invalid"},
		{Field: "date_to", Message: "required"},
	}
	got := errs.ToMap()
	want := map[string]string{"date_from": "invalid", "date_to": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}
