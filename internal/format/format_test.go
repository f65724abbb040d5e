package format

import (
	"testing"

	"github.com/blueset/calc-sub004/internal/config"
	"github.com/blueset/calc-sub004/internal/refdata"
	"github.com/blueset/calc-sub004/internal/value"
)

func TestRenderNumber(t *testing.T) {
	idx := refdata.DefaultIndex()
	s := config.Default()

	tests := []struct {
		name string
		v    value.Value
		want string
	}{
		{"unitless whole", value.Number{X: 2}, "2"},
		{"auto precision small", value.Number{X: 0.5}, "0.5"},
		{"auto precision mid", value.Number{X: 12.5}, "12.5"},
		{"with unit", value.Number{X: 5, Unit: "meter"}, "5 m"},
		{"boolean true", value.Boolean{B: true}, "true"},
		{"error", value.Errorf(value.DivisionByZero, value.Span{}, "division by zero"), "Error: division by zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.v, idx, s)
			if got != tt.want {
				t.Errorf("Render(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestRenderPresentedBase(t *testing.T) {
	idx := refdata.DefaultIndex()
	s := config.Default()
	p := value.Presented{Inner: value.Number{X: 255}, Format: "hex"}
	if got := Render(p, idx, s); got != "0xFF" {
		t.Errorf("hex(255) = %q, want 0xFF", got)
	}
}
