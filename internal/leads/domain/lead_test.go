package domain

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"new", StatusNew},
		{"contacted", StatusContacted},
		{"converted", StatusConverted},
		{"CONVERTED", StatusConverted},
		{"  contacted  ", StatusContacted},
		{"", StatusNew},
		{"bogus", StatusNew},
		{"qualified", StatusNew},
	}

	for _, tt := range tests {
		if got := ParseStatus(tt.raw); got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses {
		if !s.Valid() {
			t.Errorf("Status(%q).Valid() = false", s)
		}
	}
	if Status("bogus").Valid() {
		t.Error("Status(bogus).Valid() = true")
	}
	if Status("").Valid() {
		t.Error("empty status reported valid")
	}
}

func TestField(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name    string
		value   *string
		want    string
		present bool
	}{
		{"nil is absent", nil, "", false},
		{"empty is absent", str(""), "", false},
		{"whitespace is absent", str("  \t "), "", false},
		{"value is trimmed", str("  Acme  "), "Acme", true},
		{"plain value", str("x"), "x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, present := Field(tt.value)
			if got != tt.want || present != tt.present {
				t.Errorf("Field() = (%q, %v), want (%q, %v)", got, present, tt.want, tt.present)
			}
		})
	}
}
