package tui

import "testing"

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks    int
		tickRate int
		expected string
	}{
		{600, 60, "10.0s"},
		{90, 60, "1.5s"},
		{600, 30, "20.0s"},
		{45, 30, "1.5s"},
		{120, 0, "2.0s"}, // unset rate falls back to 60
	}

	for _, tc := range tests {
		if got := formatTicks(tc.ticks, tc.tickRate); got != tc.expected {
			t.Errorf("formatTicks(%d, %d) = %q, expected %q", tc.ticks, tc.tickRate, got, tc.expected)
		}
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	if cfg.TickRate != 60 {
		t.Errorf("default tick rate = %d, expected 60", cfg.TickRate)
	}
	if cfg.Address != ":23234" {
		t.Errorf("default address = %q, expected :23234", cfg.Address)
	}
}
