package main

import "testing"

func TestFormatCents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cents int64
		want  string
	}{
		{cents: 0, want: "R$ 0,00"},
		{cents: 100, want: "R$ 1,00"},
		{cents: 10990, want: "R$ 109,90"},
		{cents: 5, want: "R$ 0,05"},
		{cents: -250, want: "-R$ 2,50"},
	}
	for _, tt := range tests {
		if got := formatCents(tt.cents); got != tt.want {
			t.Errorf("formatCents(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}
