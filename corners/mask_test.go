package corners

import "testing"

func TestMaskExclude(t *testing.T) {
	mask := AllowAll(100, 100)
	mask.Exclude(50, 50, 10)

	cases := []struct {
		x, y    float32
		allowed bool
	}{
		{50, 50, false},
		{40, 50, false},
		{60, 60, false},
		{39, 50, true},
		{50, 61, true},
		{0, 0, true},
	}
	for _, c := range cases {
		if got := mask.Allowed(c.x, c.y); got != c.allowed {
			t.Errorf("Allowed(%.0f, %.0f) = %v, want %v", c.x, c.y, got, c.allowed)
		}
	}
}

func TestMaskExcludeClampsAtBorders(t *testing.T) {
	mask := AllowAll(20, 20)
	// Exclusion regions crossing every border must clamp, not panic.
	mask.Exclude(0, 0, 5)
	mask.Exclude(19, 19, 5)
	mask.Exclude(-3, 10, 5)
	mask.Exclude(10, 25, 5)

	if mask.Allowed(0, 0) {
		t.Error("corner pixel should be excluded")
	}
	if mask.Allowed(19, 19) {
		t.Error("opposite corner pixel should be excluded")
	}
	if !mask.Allowed(10, 10) {
		t.Error("center pixel should stay allowed")
	}
}

func TestMaskDeniesOutOfBounds(t *testing.T) {
	mask := AllowAll(10, 10)
	if mask.Allowed(-1, 5) || mask.Allowed(5, -1) || mask.Allowed(10, 5) || mask.Allowed(5, 10) {
		t.Error("out-of-bounds points must be denied")
	}
}
