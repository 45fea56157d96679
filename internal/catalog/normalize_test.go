package catalog

import (
	"reflect"
	"testing"
)

func TestCoerceCost(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"plain integer", "2500", 2500},
		{"decimal", "149.99", 149.99},
		{"surrounding whitespace", "  800 ", 800},
		{"zero", "0", 0},
		{"negative clamps to zero", "-40", 0},
		{"empty", "", 0},
		{"garbage", "about $100", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceCost(tt.raw); got != tt.want {
				t.Errorf("CoerceCost(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCoerceDays(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"plain integer", "3", 3},
		{"surrounding whitespace", " 2 ", 2},
		{"zero falls back to one", "0", 1},
		{"negative falls back to one", "-5", 1},
		{"empty", "", 1},
		{"fractional is invalid", "1.5", 1},
		{"garbage", "two", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceDays(tt.raw); got != tt.want {
				t.Errorf("CoerceDays(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestSplitTrades(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"single trade", "Plumber", []string{"Plumber"}},
		{"multiple trades", "Plumber, Electrician", []string{"Plumber", "Electrician"}},
		{"whitespace trimmed", "  Framer ,  Drywaller  ", []string{"Framer", "Drywaller"}},
		{"empty segments dropped", "Plumber,,", []string{"Plumber"}},
		{"empty input", "", nil},
		{"only commas", ",,,", nil},
		{"duplicates kept", "Plumber, Plumber", []string{"Plumber", "Plumber"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitTrades(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitTrades(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
