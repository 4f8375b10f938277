package matrix

import (
	"errors"
	"math"
	"testing"
)

func closeTo(a, b, rel, abs float64) bool {
	diff := math.Abs(a - b)
	if diff <= abs {
		return true
	}
	return diff <= math.Max(math.Abs(a), math.Abs(b))*rel
}

func requireMatrixClose(t *testing.T, got, want Matrix3x3, rel, abs float64) {
	t.Helper()
	for i := range got {
		if !closeTo(got[i], want[i], rel, abs) {
			t.Fatalf("element %d: got %.12g, want %.12g\ngot:\n%v\nwant:\n%v", i, got[i], want[i], got, want)
		}
	}
}

func TestInverse3x3Known(t *testing.T) {
	m := Matrix3x3{
		1, 4, 7,
		2, 5, 2,
		7, 4, 1,
	}
	want := Matrix3x3{
		1.0 / 48, -1.0 / 6, 3.0 / 16,
		-1.0 / 12, 1.0 / 3, -1.0 / 12,
		3.0 / 16, -1.0 / 6, 1.0 / 48,
	}
	got := Inverse3x3(m)
	if !got.AlmostEqual(want, 1e-12) {
		t.Fatalf("Inverse3x3 mismatch:\n%v\nwant:\n%v", got, want)
	}
}

func TestInverseRoundTrip(t *testing.T) {
	cases := []Matrix3x3{
		{1, 4, 7, 2, 5, 2, 7, 4, 1},
		{2, 0, 0, 0, 3, 0, 0, 0, 4},
		{0.4124, 0.3576, 0.1805, 0.2126, 0.7152, 0.0722, 0.0193, 0.1192, 0.9505},
		{1.0478112, 0.0228866, -0.0501270, 0.0295424, 0.9904844, -0.0170491, -0.0092345, 0.0150436, 0.7521316},
	}
	for _, m := range cases {
		inv := Inverse3x3(m)
		requireMatrixClose(t, Multiply3x3(m, inv), Identity3x3(), 1e-12, 1e-12)
		requireMatrixClose(t, Multiply3x3(inv, m), Identity3x3(), 1e-12, 1e-12)
		requireMatrixClose(t, Inverse3x3(inv), m, 1e-12, 1e-12)
	}
}

func TestMultiply3x3Known(t *testing.T) {
	a := Matrix3x3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	b := Matrix3x3{
		9, 8, 7,
		6, 5, 4,
		3, 2, 1,
	}
	want := Matrix3x3{
		30, 24, 18,
		84, 69, 54,
		138, 114, 90,
	}
	if got := Multiply3x3(a, b); got != want {
		t.Fatalf("Multiply3x3 = %v, want %v", got, want)
	}
	if got := a.Multiply(b); got != want {
		t.Fatalf("Multiply = %v, want %v", got, want)
	}
	if Multiply3x3(b, a) == want {
		t.Fatal("multiplication should not commute for these inputs")
	}
}

func TestMultiplyComposesRightToLeft(t *testing.T) {
	scale := Diagonal3x3(Vector3{2, 3, 4})
	swap := Matrix3x3{
		0, 1, 0,
		1, 0, 0,
		0, 0, 1,
	}
	v := Vector3{1, 10, 100}
	// 先 swap 再 scale
	composed := Multiply3x3(scale, swap)
	want := scale.Apply(swap.Apply(v))
	if got := composed.Apply(v); got != want {
		t.Fatalf("composed.Apply = %v, want %v", got, want)
	}
}

func TestTransform(t *testing.T) {
	rotate := Matrix3x3{
		0, 1, 0,
		0, 0, 1,
		1, 0, 0,
	}
	if got := Transform(rotate, Vector3{1, 2, 3}); got != (Vector3{2, 3, 1}) {
		t.Fatalf("rotate = %v, want [2 3 1]", got)
	}

	scale := Matrix3x3{
		5, 0, 0,
		0, 5, 0,
		0, 0, 5,
	}
	if got := Transform(scale, Vector3{2, 3, 4}); got != (Vector3{10, 15, 20}) {
		t.Fatalf("scale = %v, want [10 15 20]", got)
	}
}

func TestTransformLinearity(t *testing.T) {
	for _, k := range []float64{-3, 0, 0.5, 2, 1e6} {
		for _, v := range []Vector3{{1, 2, 3}, {-0.25, 0, 7}, {1e-3, 1e3, -1}} {
			got := Transform(Diagonal3x3(Vector3{k, k, k}), v)
			if got != v.Scale(k) {
				t.Fatalf("k=%v v=%v: got %v, want %v", k, v, got, v.Scale(k))
			}
		}
	}
}

func TestInverseSingular(t *testing.T) {
	singular := Matrix3x3{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	}
	if singular.Determinant() != 0 {
		t.Fatalf("determinant = %v, want 0", singular.Determinant())
	}
	if Inverse3x3(singular).IsFinite() {
		t.Fatal("unchecked inverse of a singular matrix should be non-finite")
	}
	if _, err := singular.Inverse(); !errors.Is(err, ErrSingular) {
		t.Fatalf("Inverse error = %v, want ErrSingular", err)
	}

	inv, err := Identity3x3().Inverse()
	if err != nil {
		t.Fatalf("Inverse(I): %v", err)
	}
	if inv != Identity3x3() {
		t.Fatalf("Inverse(I) = %v", inv)
	}
}

func TestTransposeRowColumn(t *testing.T) {
	m := Matrix3x3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	tr := m.Transpose()
	for i := 0; i < 3; i++ {
		if m.Row(i) != tr.Column(i) {
			t.Fatalf("row %d = %v, transposed column = %v", i, m.Row(i), tr.Column(i))
		}
	}
	if tr.Transpose() != m {
		t.Fatal("double transpose should be identity")
	}
}

func TestAlmostEqual(t *testing.T) {
	if !AlmostEqual(1, 1+Epsilon, Epsilon) {
		t.Fatal("1 and 1+eps should compare equal")
	}
	if AlmostEqual(1, 1.001, 1e-6) {
		t.Fatal("1 and 1.001 should differ at 1e-6")
	}
	if !AlmostEqual(0, 0, Epsilon) {
		t.Fatal("zero should equal zero")
	}
	if AlmostEqual(0, 1e-30, Epsilon) {
		t.Fatal("relative comparison against zero only accepts exact zero")
	}
	if AlmostEqual(math.NaN(), math.NaN(), 1) {
		t.Fatal("NaN never compares equal")
	}
}

func TestVectorHelpers(t *testing.T) {
	v := Vector3{1, -2, 3}
	if got := v.Add(Vector3{1, 1, 1}); got != (Vector3{2, -1, 4}) {
		t.Fatalf("Add = %v", got)
	}
	if got := v.ComponentMul(Vector3{2, 2, 0}); got != (Vector3{2, -4, 0}) {
		t.Fatalf("ComponentMul = %v", got)
	}
	if got := v.Clamp(0, 2); got != (Vector3{1, 0, 2}) {
		t.Fatalf("Clamp = %v", got)
	}
	if !v.IsFinite() || (Vector3{math.Inf(1), 0, 0}).IsFinite() {
		t.Fatal("IsFinite mismatch")
	}
}

func TestMaxAbsDiff(t *testing.T) {
	a := Identity3x3()
	b := a
	b[4] = 1.5
	b[8] = 0.75
	if got := MaxAbsDiff(a, b); got != 0.5 {
		t.Fatalf("MaxAbsDiff = %v, want 0.5", got)
	}
}
