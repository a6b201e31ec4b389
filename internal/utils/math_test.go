package utils

import (
	"math"
	"testing"
)

func TestDistancePythagoreanTriple(t *testing.T) {
	if d := Distance(320, 240, 335, 260); d != 25 {
		t.Fatalf("Distance = %v, want exactly 25", d)
	}
}

func TestNormalize(t *testing.T) {
	x, y, ok := Normalize(0, 90)
	if !ok || x != 0 || y != 1 {
		t.Fatalf("Normalize(0,90) = (%v,%v,%v), want (0,1,true)", x, y, ok)
	}
	if _, _, ok := Normalize(0, 0); ok {
		t.Fatalf("Normalize(0,0) must report !ok")
	}
	if _, _, ok := Normalize(math.Inf(1), 0); ok {
		t.Fatalf("Normalize(+Inf,0) must report !ok")
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ v, want float64 }{{-1, 0}, {0.5, 0.5}, {3, 1}}
	for _, c := range cases {
		if got := Clamp(c.v, 0, 1); got != c.want {
			t.Errorf("Clamp(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}
