package compose

import (
	"reflect"
	"testing"
)

func TestEachProduct(t *testing.T) {
	lists := [][]Keys{
		{"a", "b"},
		{"x"},
		{"1", "2"},
	}
	var got []string
	eachProduct(lists, func(tuple []Keys) {
		s := ""
		for _, k := range tuple {
			s += string(k)
		}
		got = append(got, s)
	})
	want := []string{"ax1", "ax2", "bx1", "bx2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("eachProduct = %v, want %v", got, want)
	}
}

func TestEachProductEmptyList(t *testing.T) {
	lists := [][]Keys{{"a"}, {}}
	calls := 0
	eachProduct(lists, func([]Keys) { calls++ })
	if calls != 0 {
		t.Errorf("product over an empty list yielded %d tuples", calls)
	}
}

func TestEachProductZeroLists(t *testing.T) {
	calls := 0
	eachProduct(nil, func(tuple []Keys) {
		calls++
		if len(tuple) != 0 {
			t.Errorf("empty product tuple not empty: %v", tuple)
		}
	})
	if calls != 1 {
		t.Errorf("empty product yielded %d tuples, want 1", calls)
	}
}

func TestProductBufferReuse(t *testing.T) {
	b1 := borrowProductBuffer(3)
	b1.releaseIntoPool()
	b2 := borrowProductBuffer(5)
	defer b2.releaseIntoPool()
	if len(b2.idx) != 5 || len(b2.tuple) != 0 {
		t.Errorf("borrowed buffer not reset: idx=%d tuple=%d", len(b2.idx), len(b2.tuple))
	}
	for _, i := range b2.idx {
		if i != 0 {
			t.Errorf("odometer not zeroed: %v", b2.idx)
		}
	}
}
