package ring

import (
	"errors"
	"slices"
	"testing"
)

func TestPushPopOrder(t *testing.T) {
	rb := NewBuffer[int](3)
	for i := 1; i <= 3; i++ {
		if rb.Push(i) {
			t.Fatalf("push %d dropped an item", i)
		}
	}
	if !rb.Push(4) {
		t.Fatal("push onto a full buffer should drop the oldest")
	}
	if rb.Len() != 3 {
		t.Fatalf("len = %d, want 3", rb.Len())
	}
	for _, want := range []int{2, 3, 4} {
		got, ok := rb.Pop()
		if !ok || got != want {
			t.Fatalf("pop = %d %v, want %d", got, ok, want)
		}
	}
	if _, ok := rb.Pop(); ok {
		t.Fatal("pop on empty buffer")
	}
}

func TestWrapAround(t *testing.T) {
	rb := NewBuffer[string](2)
	var got []string
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		rb.Push(s)
		if s == "c" {
			v, _ := rb.Pop()
			got = append(got, v)
		}
	}
	_ = rb.Drain(func(s string) error {
		got = append(got, s)
		return nil
	})
	if !slices.Equal(got, []string{"b", "d", "e"}) {
		t.Fatalf("got %v", got)
	}
}

func TestDrain(t *testing.T) {
	rb := NewBuffer[int](8)
	for i := range 5 {
		rb.Push(i)
	}
	var seen []int
	stop := errors.New("stop")
	err := rb.Drain(func(v int) error {
		seen = append(seen, v)
		if v == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("err = %v", err)
	}
	if !slices.Equal(seen, []int{0, 1, 2}) || rb.Len() != 2 {
		t.Fatalf("seen = %v, left = %d", seen, rb.Len())
	}
	if err := rb.Drain(func(int) error { return nil }); err != nil || rb.Len() != 0 {
		t.Fatalf("drain rest: %v, left %d", err, rb.Len())
	}
}
