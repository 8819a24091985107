package normalize

import "testing"

func TestCapacity(t *testing.T) {
	SetLogger(nil)
	cases := map[int]int{-5: 0, -1: 0, 0: 0, 1: 1, 1024: 1024}
	for in, want := range cases {
		if got := Capacity(in); got != want {
			t.Errorf("Capacity(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{-1: 1, 0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 1000: 1024, 1025: 2048}
	for in, want := range cases {
		if got := NextPowerOfTwo(in); got != want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestSpanInRange(t *testing.T) {
	if !SpanInRange(0, 0, 0) {
		t.Error("empty span over empty range should be valid")
	}
	if !SpanInRange(1, 3, 3) {
		t.Error("span [1,3) over 3 should be valid")
	}
	if SpanInRange(-1, 2, 3) || SpanInRange(0, 4, 3) || SpanInRange(2, 1, 3) {
		t.Error("invalid spans accepted")
	}
}
