package units

import "testing"

func TestNewSet_CopiesUnits(t *testing.T) {
	in := []Unit{{Symbol: "cm", Name: "centimetre", Quantity: "length"}}
	s := NewSet("CGS", in)

	in[0].Symbol = "mutated"

	got := s.Units()
	if got[0].Symbol != "cm" {
		t.Fatalf("Units()[0].Symbol = %q, want %q", got[0].Symbol, "cm")
	}
}

func TestSet_UnitsReturnsCopy(t *testing.T) {
	s := NewSet("CGS", []Unit{{Symbol: "g", Name: "gram"}})

	got := s.Units()
	got[0].Name = "kilogram"

	if u, _ := s.Unit("g"); u.Name != "gram" {
		t.Fatalf("Unit(g).Name = %q, want %q", u.Name, "gram")
	}
}

func TestSet_Unit(t *testing.T) {
	s := NewSet("Imperial", []Unit{
		{Symbol: "yd", Name: "yard", Quantity: "length"},
		{Symbol: "lb", Name: "pound", Quantity: "mass"},
	})

	tests := []struct {
		symbol string
		want   string
		ok     bool
	}{
		{"yd", "yard", true},
		{"lb", "pound", true},
		{"LB", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			u, ok := s.Unit(tt.symbol)
			if ok != tt.ok {
				t.Fatalf("Unit(%q) ok = %v, want %v", tt.symbol, ok, tt.ok)
			}
			if u.Name != tt.want {
				t.Errorf("Unit(%q).Name = %q, want %q", tt.symbol, u.Name, tt.want)
			}
		})
	}
}

func TestSet_NameAndLen(t *testing.T) {
	s := NewSet("United States Customary Units", make([]Unit, 3))
	if s.Name() != "United States Customary Units" {
		t.Errorf("Name() = %q", s.Name())
	}
	if s.String() != s.Name() {
		t.Errorf("String() = %q, want %q", s.String(), s.Name())
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

type valueSystem struct{}

func (valueSystem) Name() string  { return "value" }
func (valueSystem) Units() []Unit { return nil }

func TestIsNil(t *testing.T) {
	tests := []struct {
		name string
		sys  System
		want bool
	}{
		{name: "untyped nil", sys: nil, want: true},
		{name: "typed nil set", sys: (*Set)(nil), want: true},
		{name: "set", sys: NewSet("SI", nil), want: false},
		{name: "zero set", sys: &Set{}, want: false},
		{name: "value receiver", sys: valueSystem{}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNil(tt.sys); got != tt.want {
				t.Errorf("IsNil(%#v) = %v, want %v", tt.sys, got, tt.want)
			}
		})
	}
}
