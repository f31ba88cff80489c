package optional

import "testing"

func TestSome(t *testing.T) {
	o := Some(42)

	if !o.IsSome() {
		t.Error("Some should be present")
	}

	if o.IsNone() {
		t.Error("Some should not be none")
	}

	v, ok := o.Get()
	if !ok || v != 42 {
		t.Errorf("Get() = (%d, %v), want (42, true)", v, ok)
	}
}

func TestNone(t *testing.T) {
	o := None[string]()

	if o.IsSome() {
		t.Error("None should not be present")
	}

	if _, ok := o.Get(); ok {
		t.Error("Get on None should report absence")
	}
}

func TestZeroValueIsNone(t *testing.T) {
	var o Option[int]

	if !o.IsNone() {
		t.Error("zero Option should be None")
	}
}

func TestUnwrap(t *testing.T) {
	if got := Some("blue").Unwrap(); got != "blue" {
		t.Errorf("expected 'blue', got %q", got)
	}
}

func TestUnwrapNonePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Unwrap on None should panic")
		}
	}()

	None[int]().Unwrap()
}

func TestUnwrapOr(t *testing.T) {
	if got := Some(7).UnwrapOr(0); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}

	if got := None[int]().UnwrapOr(9); got != 9 {
		t.Errorf("expected default 9, got %d", got)
	}
}

func TestString(t *testing.T) {
	if got := Some(43).String(); got != "Some(43)" {
		t.Errorf("expected 'Some(43)', got %q", got)
	}

	if got := None[int]().String(); got != "None" {
		t.Errorf("expected 'None', got %q", got)
	}
}

func TestMap(t *testing.T) {
	double := func(n int) int { return n * 2 }

	if got := Map(Some(21), double); got.Unwrap() != 42 {
		t.Errorf("expected Some(42), got %v", got)
	}

	if got := Map(None[int](), double); !got.IsNone() {
		t.Errorf("expected None, got %v", got)
	}
}

var fruits = []string{"apple", "banana", "cherry", "date", "elderberry"}

func TestAtInBounds(t *testing.T) {
	fruit, ok := At(fruits, 1).Get()
	if !ok {
		t.Fatal("index 1 of a 5-element slice should be present")
	}

	if fruit != "banana" {
		t.Errorf("expected 'banana', got %q", fruit)
	}
}

func TestAtOutOfBounds(t *testing.T) {
	if At(fruits, 20).IsSome() {
		t.Error("index 20 of a 5-element slice should be absent")
	}

	if At(fruits, -1).IsSome() {
		t.Error("negative index should be absent")
	}
}

func TestAtPresentIffInBounds(t *testing.T) {
	for n := 0; n <= 6; n++ {
		s := make([]int, n)
		for i := range s {
			s[i] = i
		}

		for i := -2; i <= n+2; i++ {
			got := At(s, i)
			want := i >= 0 && i < n

			if got.IsSome() != want {
				t.Errorf("At(len %d, %d).IsSome() = %v, want %v",
					n, i, got.IsSome(), want)
			}

			if want && got.Unwrap() != i {
				t.Errorf("At(len %d, %d) = %v, want Some(%d)", n, i, got, i)
			}
		}
	}
}

func TestFirstAndLast(t *testing.T) {
	if got := First(fruits).Unwrap(); got != "apple" {
		t.Errorf("expected 'apple', got %q", got)
	}

	if got := Last(fruits).Unwrap(); got != "elderberry" {
		t.Errorf("expected 'elderberry', got %q", got)
	}

	if First([]int{}).IsSome() || Last([]int{}).IsSome() {
		t.Error("First/Last of an empty slice should be absent")
	}
}
