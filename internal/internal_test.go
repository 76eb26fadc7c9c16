package internal_test

import (
	"fmt"
	"testing"

	"github.com/graxinc/arraylist/internal"
)

func TestNextCap(t *testing.T) {
	t.Parallel()

	cases := []struct {
		c    int
		want int
	}{
		{0, 1},
		{1, 2},
		{2, 4},
		{3, 6},
		{8, 16},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("c=%v", c.c), func(t *testing.T) {
			if got := internal.NextCap(c.c); got != c.want {
				t.Fatal(got, c.want)
			}
		})
	}
}

func TestAlloc(t *testing.T) {
	t.Parallel()

	cases := []struct {
		v        []byte
		count    int
		capacity int
	}{
		{nil, 0, 0},
		{nil, 0, 4},
		{[]byte{1, 2, 3}, 0, 3},
		{[]byte{1, 2, 3}, 2, 6},
		{[]byte{1, 2, 3}, 3, 6},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("v=%v,count=%v,capacity=%v", c.v, c.count, c.capacity), func(t *testing.T) {
			got := internal.Alloc(c.v, c.count, c.capacity)
			if len(got) != c.capacity || cap(got) != c.capacity {
				t.Fatal(len(got), cap(got))
			}
			for i := range c.count {
				if got[i] != c.v[i] {
					t.Fatal(got, c.v)
				}
			}
			for i := c.count; i < c.capacity; i++ {
				if got[i] != 0 {
					t.Fatal(got)
				}
			}
		})
	}

	t.Run("old_untouched", func(t *testing.T) {
		v := []byte{1, 2}
		got := internal.Alloc(v, 2, 4)
		got[0] = 9
		if v[0] != 1 || v[1] != 2 {
			t.Fatal(v)
		}
	})
}
