package format

import "testing"

func TestMoney(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"zero", 0, "$0"},
		{"small whole", 800, "$800"},
		{"thousands separator", 4500, "$4,500"},
		{"full project budget", 100600, "$100,600"},
		{"cents kept", 4854.17, "$4,854.17"},
		{"cents padded", 2150.5, "$2,150.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Money(tt.v); got != tt.want {
				t.Errorf("Money(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestSignedMoney(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"over budget", 1354, "+$1,354"},
		{"under budget", -254, "-$254"},
		{"zero is positive", 0, "+$0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SignedMoney(tt.v); got != tt.want {
				t.Errorf("SignedMoney(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestDays(t *testing.T) {
	if got := Days(16); got != "16d" {
		t.Errorf("Days(16) = %q, want \"16d\"", got)
	}
}
