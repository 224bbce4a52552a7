package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "same center",
			a:        NewBox(400, 300, 10, 10),
			b:        NewBox(400, 300, 10, 10),
			expected: true,
		},
		{
			name:     "far away",
			a:        NewBox(400, 300, 10, 10),
			b:        NewBox(1000, 1000, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges count",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: true,
		},
		{
			name:     "just apart horizontal",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10.01, 0, 10, 10),
			expected: false,
		},
		{
			name:     "just apart vertical",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 10.01, 10, 10),
			expected: false,
		},
		{
			name:     "different sizes",
			a:        NewBox(100, 100, 300, 300),
			b:        NewBox(245, 245, 20, 20),
			expected: true,
		},
		{
			name:     "aligned on x only",
			a:        NewBox(50, 50, 20, 20),
			b:        NewBox(50, 90, 20, 20),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Overlaps(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestBoxContains(t *testing.T) {
	b := NewBox(100, 100, 20, 10)

	tests := []struct {
		name     string
		p        Vec
		expected bool
	}{
		{"center", Vec{100, 100}, true},
		{"inside near corner", Vec{109, 104}, true},
		{"on left edge (exclusive)", Vec{90, 100}, false},
		{"outside right", Vec{111, 100}, false},
		{"inside x, outside y", Vec{100, 106}, false},
		{"outside x, inside y", Vec{80, 100}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(50, 40, 20, 10)

	if b.Left() != 40 || b.Right() != 60 {
		t.Errorf("Left/Right = %f/%f, expected 40/60", b.Left(), b.Right())
	}
	if b.Top() != 35 || b.Bottom() != 45 {
		t.Errorf("Top/Bottom = %f/%f, expected 35/45", b.Top(), b.Bottom())
	}
}

func TestBoundsContains(t *testing.T) {
	r := Bounds{MinX: 20, MinY: 20, MaxX: 570, MaxY: 570}

	if !r.Contains(Vec{20, 570}) {
		t.Error("edges should be inside bounds")
	}
	if r.Contains(Vec{19.9, 100}) {
		t.Error("point left of MinX should be outside")
	}
	if r.Contains(Vec{100, 571}) {
		t.Error("point below MaxY should be outside")
	}
}

func TestVecOps(t *testing.T) {
	v := Vec{1, 2}.Add(Vec{3, 4})
	if v != (Vec{4, 6}) {
		t.Errorf("Add = %v, expected {4 6}", v)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
