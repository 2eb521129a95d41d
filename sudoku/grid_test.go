package sudoku

import (
	"errors"
	"testing"
)

func TestNewGridSizes(t *testing.T) {
	cases := []struct {
		size int
		ok   bool
	}{
		{1, true},
		{4, true},
		{9, true},
		{16, true},
		{0, false},
		{-9, false},
		{2, false},
		{8, false},
		{12, false},
	}

	for _, tc := range cases {
		g, err := NewGrid(tc.size)
		if tc.ok {
			if err != nil {
				t.Errorf("NewGrid(%d) failed: %v", tc.size, err)
				continue
			}
			if g.Size() != tc.size {
				t.Errorf("NewGrid(%d).Size() = %d", tc.size, g.Size())
			}
		} else if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewGrid(%d) err = %v, want ErrInvalidSize", tc.size, err)
		}
	}
}

func TestGridClone(t *testing.T) {
	g, err := NewGrid(9)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	g[3][4] = 7

	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone differs from original")
	}
	c[3][4] = 2
	if g[3][4] != 7 {
		t.Fatal("mutating the clone changed the original")
	}
}

func TestGridCountZeros(t *testing.T) {
	g, err := NewGrid(4)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	if got := g.CountZeros(); got != 16 {
		t.Fatalf("empty 4×4 grid has %d zeros, want 16", got)
	}
	g[0][0] = 1
	g[3][3] = 4
	if got := g.CountZeros(); got != 14 {
		t.Fatalf("got %d zeros, want 14", got)
	}
}
