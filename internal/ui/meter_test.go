package ui

import "testing"

func TestNewMeter(t *testing.T) {
	cases := []struct {
		name                     string
		fraction, left, cooldown float64
		fill, reload             float64
		ready, armed             bool
	}{
		{"rest", 0.1, 0, 1, 0.1, 0, true, false},
		{"at threshold", 0.8, 0, 1, 0.8, 0, true, false},
		{"armed", 0.9, 0, 1, 0.9, 0, true, true},
		{"reloading", 1, 0.25, 1, 1, 0.25, false, true},
		{"clamped", 3, 5, 1, 1, 1, false, true},
		{"no cooldown", 0.5, 2, 0, 0.5, 0, true, false},
	}
	for _, c := range cases {
		m := NewMeter(c.fraction, 0.8, c.left, c.cooldown)
		if m.Fill != c.fill || m.Reload != c.reload || m.Ready() != c.ready || m.Armed() != c.armed {
			t.Errorf("%s: got %+v ready=%v armed=%v", c.name, m, m.Ready(), m.Armed())
		}
	}
}
