package mutil

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name string
		a, b float64
		eps  float64
		want bool
	}{
		{"exact", 1.5, 1.5, Epsilon, true},
		{"within eps", 1.0, 1.0 + 1e-13, Epsilon, true},
		{"outside eps", 1.0, 1.0 + 1e-9, Epsilon, false},
		{"custom eps", 1.0, 1.05, 0.1, true},
		{"positive infinities", inf, inf, Epsilon, true},
		{"negative infinities", -inf, -inf, Epsilon, true},
		{"mixed infinities", inf, -inf, Epsilon, false},
		{"nan", math.NaN(), math.NaN(), Epsilon, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearlyEqual(tt.a, tt.b, tt.eps); got != tt.want {
				t.Errorf("NearlyEqual(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.eps, got, tt.want)
			}
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		x      float64
		digits int
		want   float64
	}{
		{2.5, 0, 3},
		{-2.5, 0, -3},
		{0.5, 0, 1},
		{-0.5, 0, -1},
		{1.4, 0, 1},
		{1.25, 1, 1.3},
		{-1.25, 1, -1.3},
		{3.14159, 2, 3.14},
		{12.999999999999998, 12, 13},
		{0, 3, 0},
	}
	for _, tt := range tests {
		if got := Round(tt.x, tt.digits); got != tt.want {
			t.Errorf("Round(%v, %d) = %v, want %v", tt.x, tt.digits, got, tt.want)
		}
	}
}

func TestIntegral(t *testing.T) {
	if !Integral[int]() || !Integral[uint8]() || !Integral[int64]() {
		t.Error("integer types should be integral")
	}
	if Integral[float64]() || Integral[float32]() {
		t.Error("float types should not be integral")
	}
	type meters float64
	if Integral[meters]() {
		t.Error("named float type should not be integral")
	}
}

func TestEqual(t *testing.T) {
	if !Equal(0.1+0.2, 0.3) {
		t.Error("0.1+0.2 should equal 0.3 within epsilon")
	}
	if Equal(1, 2) {
		t.Error("1 should not equal 2")
	}
	var big int64 = 1 << 60
	if Equal(big, big+1) {
		t.Error("large integers must compare exactly")
	}
}

func TestMinMax(t *testing.T) {
	nan := math.NaN()
	if got := Min(3, -2); got != -2 {
		t.Errorf("Min(3, -2) = %v", got)
	}
	if got := Max(3, -2); got != 3 {
		t.Errorf("Max(3, -2) = %v", got)
	}
	if got := Min(nan, 1.0); got != 1 {
		t.Errorf("Min(NaN, 1) = %v, want 1", got)
	}
	if got := Max(1.0, nan); got != 1 {
		t.Errorf("Max(1, NaN) = %v, want 1", got)
	}
	if got := Min(nan, nan); !math.IsNaN(got) {
		t.Errorf("Min(NaN, NaN) = %v, want NaN", got)
	}
	if got := Max[uint](0, 7); got != 7 {
		t.Errorf("Max[uint](0, 7) = %v", got)
	}
}
