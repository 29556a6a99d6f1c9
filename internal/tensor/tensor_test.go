package tensor

import "testing"

func TestShapeNumElements(t *testing.T) {
	cases := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{4}, 4},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}

	for _, c := range cases {
		if got := c.shape.NumElements(); got != c.want {
			t.Errorf("Shape%v.NumElements() = %d, want %d", c.shape, got, c.want)
		}
	}
}

func TestShapeEqual(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("equal shapes reported unequal")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("different shapes reported equal")
	}
	if (Shape{2, 3}).Equal(Shape{2, 3, 1}) {
		t.Error("shapes of different rank reported equal")
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("zero dimension accepted")
	}
	if err := (Shape{-1}).Validate(); err == nil {
		t.Error("negative dimension accepted")
	}
}

func TestZeros(t *testing.T) {
	z := Zeros(Shape{2, 3})

	if !z.Shape().Equal(Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", z.Shape())
	}
	if z.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", z.NumElements())
	}
	for i, v := range z.Data() {
		if v != 0 {
			t.Errorf("Data()[%d] = %f, want 0", i, v)
		}
	}
}

func TestFromSlice(t *testing.T) {
	x, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	if x.Data()[4] != 5 {
		t.Errorf("Data()[4] = %f, want 5", x.Data()[4])
	}

	// Length mismatch is an error.
	if _, err := FromSlice([]float64{1, 2, 3}, Shape{2, 3}); err == nil {
		t.Error("FromSlice accepted mismatched length")
	}

	// Invalid shape is an error.
	if _, err := FromSlice(nil, Shape{0}); err == nil {
		t.Error("FromSlice accepted invalid shape")
	}
}

func TestFromSliceCopies(t *testing.T) {
	src := []float64{1, 2}
	x, err := FromSlice(src, Shape{2})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	src[0] = 99
	if x.Data()[0] != 1 {
		t.Error("FromSlice should copy the input slice")
	}
}

func TestClone(t *testing.T) {
	x, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	y := x.Clone()

	y.Data()[0] = 42
	if x.Data()[0] != 1 {
		t.Error("Clone should not share backing data")
	}
	if !y.Shape().Equal(x.Shape()) {
		t.Errorf("clone shape %v, want %v", y.Shape(), x.Shape())
	}
}

func TestDataIsLive(t *testing.T) {
	x := Full(Shape{2}, 1.5)

	// In-place mutation through Data is the optimizer's update path.
	x.Data()[1] += 0.5
	if x.Data()[1] != 2.0 {
		t.Errorf("Data()[1] = %f, want 2.0", x.Data()[1])
	}
}
